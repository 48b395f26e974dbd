package mod

import (
	"math/bits"
)

// This file contains the limb-level kernels that every operation of the
// package is built from. All of them sweep their operands with a fixed
// iteration order and a fixed memory-access pattern: the only values that
// may influence control flow are slice lengths, which are public.
//
// Unless stated otherwise, all slices must have the same length and the
// output may alias any input.

// Mask expands a 0/1 flag into an all-zeros/all-ones limb.
// For any other flag value the result is meaningless but memory-safe.
func Mask(flag uint64) uint64 {
	return -flag
}

// AddVec evaluates x = a + b over the limb width of the operands and
// returns the outgoing carry.
func AddVec(x, a, b []uint64) (carry uint64) {
	_ = x[len(a)-1]
	for i := range a {
		x[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return
}

// SubVec evaluates x = a - b over the limb width of the operands and
// returns the outgoing borrow.
func SubVec(x, a, b []uint64) (borrow uint64) {
	_ = x[len(a)-1]
	for i := range a {
		x[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return
}

// CondAddVec evaluates x += a if flag = 1 and leaves x unchanged if
// flag = 0, returning the outgoing carry. The limbs of a are masked rather
// than the loop being skipped, so the sweep is identical for both flag
// values.
func CondAddVec(x, a []uint64, flag uint64) (carry uint64) {
	m := Mask(flag)
	_ = x[len(a)-1]
	for i := range a {
		x[i], carry = bits.Add64(x[i], a[i]&m, carry)
	}
	return
}

// CondAssignVec evaluates x = a if flag = 1 and leaves x unchanged if
// flag = 0.
func CondAssignVec(x, a []uint64, flag uint64) {
	m := Mask(flag)
	_ = x[len(a)-1]
	for i := range a {
		x[i] ^= m & (x[i] ^ a[i])
	}
}

// CondSwapVec exchanges x and y if flag = 1 and leaves both unchanged if
// flag = 0. x and y must not overlap.
func CondSwapVec(x, y []uint64, flag uint64) {
	m := Mask(flag)
	_ = x[len(y)-1]
	for i := range y {
		t := m & (x[i] ^ y[i])
		x[i] ^= t
		y[i] ^= t
	}
}

// GeqVec returns 1 if a >= b and 0 otherwise, via the borrow of a trial
// subtraction.
func GeqVec(a, b []uint64) uint64 {
	var borrow uint64
	for i := range a {
		_, borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return 1 - borrow
}

// ZeroVec returns 1 if a = 0 and 0 otherwise.
func ZeroVec(a []uint64) uint64 {
	var acc uint64
	for i := range a {
		acc |= a[i]
	}
	// acc == 0 iff neither acc nor -acc has the top bit set.
	return 1 - (acc|-acc)>>63
}
