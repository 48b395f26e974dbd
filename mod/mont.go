package mod

import (
	"fmt"
	"math/bits"
)

// MontMulWorkingLimbs returns the number of limbs of working memory that
// [MontMulVec] and the Montgomery methods of [Modulus] built on it require
// for operands and modulus of width L. The relationship is fixed but
// implementation-defined; callers must size their scratch with this function
// rather than assume a layout.
func MontMulWorkingLimbs(L int) int {
	return L
}

// MontMulVec evaluates x = a * b * 2^{-64*L} mod n, with L = len(n) and
// mredconstant = -n[0]^{-1} mod 2^{64}. a and b must be smaller than n.
// t is working memory of at least [MontMulWorkingLimbs] limbs; it must not
// overlap any other operand and its final content is sensitive residue.
// The product accumulates in t and x is only written by the final
// correction sweep, so x may alias a and/or b.
//
// The accumulation interleaves the a[i]*b and q*n rows of the schoolbook
// product so that intermediate state never exceeds L+1 limbs. Limbs are
// fully saturated, so the running carry spans two words.
func MontMulVec(x, a, b, n []uint64, mredconstant uint64, t []uint64) {

	L := len(n)
	d := t[:L]
	for i := range d {
		d[i] = 0
	}

	var dh uint64
	for i := 0; i < L; i++ {

		ai := a[i]
		q := (d[0] + ai*b[0]) * mredconstant

		// (c1, c0) is the two-word carry of the interleaved rows.
		var c0, c1 uint64
		for j := 0; j < L; j++ {
			hi, lo := bits.Mul64(ai, b[j])
			z0, cc := bits.Add64(d[j], lo, 0)
			z1, _ := bits.Add64(hi, 0, cc)

			hi, lo = bits.Mul64(q, n[j])
			z0, cc = bits.Add64(z0, lo, 0)
			z1, e1 := bits.Add64(z1, hi, cc)

			z0, cc = bits.Add64(z0, c0, 0)
			z1, e2 := bits.Add64(z1, c1, cc)

			if j > 0 {
				d[j-1] = z0
			}
			c0, c1 = z1, e1+e2
		}

		z0, cc := bits.Add64(dh, c0, 0)
		d[L-1] = z0
		dh = c1 + cc
	}

	// The result is dh*2^{64*L} + d < 2n, so a single trial subtraction of
	// n suffices; as in Add, the add-back happens exactly when the top bit
	// and the borrow disagree.
	borrow := SubVec(x[:L], d, n)
	CondAddVec(x, n, borrow^dh)
}

// MontRedVec evaluates x = x * 2^{-64*L} mod n in place, with L = len(n)
// and mredconstant = -n[0]^{-1} mod 2^{64}. x must be smaller than n.
//
// L word-reduction rounds each fold the low limb into a multiple of n and
// shift the value down one limb. For x < n every intermediate value stays
// below n, so no working memory and no final correction are needed.
func MontRedVec(x, n []uint64, mredconstant uint64) {

	L := len(n)
	x = x[:L]

	for i := 0; i < L; i++ {

		q := x[0] * mredconstant

		// x + q*n has a zero low limb; accumulate the upper limbs shifted
		// down by one. The per-step total fits two words, so the carry c0
		// stays a single word.
		hi, lo := bits.Mul64(q, n[0])
		_, cc := bits.Add64(x[0], lo, 0)
		c0 := hi + cc

		for j := 1; j < L; j++ {
			hi, lo = bits.Mul64(q, n[j])
			z0, cc := bits.Add64(x[j], lo, 0)
			z1, _ := bits.Add64(hi, 0, cc)
			z0, cc = bits.Add64(z0, c0, 0)
			z1 += cc
			x[j-1] = z0
			c0 = z1
		}

		x[L-1] = c0
	}
}

// MulMont evaluates x = a * b * 2^{-64*L} mod N. With a and b in Montgomery
// form the result is the Montgomery form of the product. a and b must be
// smaller than N; x may alias a and/or b. t is caller-owned working memory
// of at least [MontMulWorkingLimbs] limbs under the contract documented on
// [MontMulVec].
func (m *Modulus) MulMont(x, a, b, t []uint64) error {
	if err := m.montCapable(); err != nil {
		return err
	}
	L := len(m.Limbs)
	if len(t) < MontMulWorkingLimbs(L) {
		return fmt.Errorf("%w: working memory needs %d limbs, has %d", ErrBufferTooSmall, MontMulWorkingLimbs(L), len(t))
	}
	MontMulVec(x, a, b, m.Limbs, m.MRedConstant, t)
	return nil
}

// MForm replaces x, in place, with its Montgomery form x * 2^{64*L} mod N,
// by Montgomery-multiplying it with the precomputed RR constant of the
// receiver. t is caller-owned working memory as for [Modulus.MulMont].
// Reported failures are limited to a modulus that cannot carry Montgomery
// arithmetic and undersized working memory; the value of x never influences
// the outcome.
func (m *Modulus) MForm(x, t []uint64) error {
	if err := m.montCapable(); err != nil {
		return err
	}
	return m.MulMont(x, x, m.RR, t)
}

// IMForm is the inverse of [Modulus.MForm]: it replaces Montgomery-form x,
// in place, with its plain value. The multiplier is 1, which reduces to
// [MontRedVec] and needs no working memory.
func (m *Modulus) IMForm(x []uint64) error {
	if err := m.montCapable(); err != nil {
		return err
	}
	MontRedVec(x[:len(m.Limbs)], m.Limbs, m.MRedConstant)
	return nil
}
