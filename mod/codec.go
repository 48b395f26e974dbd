package mod

import (
	"fmt"
)

// ByteOrder selects the endianness of the external byte representation used
// by [Modulus.Read] and [Modulus.Write].
type ByteOrder int

const (
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
)

// String implements fmt.Stringer.
func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return "Invalid"
	}
}

// Read parses input, an unsigned integer of len(input) bytes in the given
// byte order, into the width-L value x. The input may carry any number of
// leading (big-endian) or trailing (little-endian) zero bytes.
//
// It returns [ErrBufferTooSmall] if the significant bytes of input exceed
// the 8*L bytes x can hold, and [ErrBadInputData] if the decoded value is
// not smaller than N or the modulus representation is invalid. On success x
// holds the decoded value in plain form, zero-padded to full width.
func (m *Modulus) Read(x []uint64, input []byte, order ByteOrder) error {

	L := len(m.Limbs)
	if L == 0 {
		return fmt.Errorf("%w: modulus has no limbs", ErrBadInputData)
	}

	x = x[:L]
	for i := range x {
		x[i] = 0
	}

	for i, b := range input {
		k := i
		if order == BigEndian {
			k = len(input) - 1 - i
		}
		if k>>3 >= L {
			if b != 0 {
				return fmt.Errorf("%w: input value exceeds %d limbs", ErrBufferTooSmall, L)
			}
			continue
		}
		x[k>>3] |= uint64(b) << (8 * (k & 7))
	}

	if GeqVec(x, m.Limbs) == 1 {
		return fmt.Errorf("%w: decoded value is not smaller than the modulus", ErrBadInputData)
	}

	return nil
}

// Write serializes the plain-form value a, which must be smaller than N,
// into exactly len(output) bytes in the given byte order, zero-padding the
// most significant bytes.
//
// It returns [ErrBufferTooSmall] if len(output) is smaller than [Modulus.Size],
// and [ErrBadInputData] if the modulus representation is invalid. The length
// check depends only on the public modulus, so no information about a leaks
// beyond what the output length already reveals.
func (m *Modulus) Write(a []uint64, output []byte, order ByteOrder) error {

	L := len(m.Limbs)
	if L == 0 {
		return fmt.Errorf("%w: modulus has no limbs", ErrBadInputData)
	}

	if len(output) < m.Size() {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, m.Size(), len(output))
	}

	for i := range output {
		k := i
		if order == BigEndian {
			k = len(output) - 1 - i
		}
		if k>>3 >= L {
			output[i] = 0
			continue
		}
		output[i] = byte(a[k>>3] >> (8 * (k & 7)))
	}

	return nil
}
