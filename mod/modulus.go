// Package mod implements fixed-width arithmetic modulo N over saturated
// little-endian uint64 limbs, designed as the arithmetic substrate of
// elliptic-curve and other cryptographic protocol layers.
//
// The package is a low-level, trust-assumed interface: every operand buffer
// must have exactly the limb width of the modulus passed in the same call,
// and the two error values [ErrBufferTooSmall] and [ErrBadInputData] are the
// only reported failures. Other precondition violations (mismatched widths,
// forbidden aliasing, flags outside {0, 1}, a composite modulus given to
// [Modulus.InvPrime]) produce indeterminate but memory-safe results.
//
// All operations execute an instruction sequence and memory-access pattern
// that depend only on the limb width, never on operand values, with the
// exception of setup ([NewModulus]) and of the external-representation
// codec's handling of its public length arguments.
package mod

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/Pro7ech/modarith/utils/structs"
	"github.com/google/go-cmp/cmp"
)

// Modulus stores a fixed-width modulus N along with the precomputed
// constants required by the operations of this package. A Modulus is
// immutable once constructed and can be shared by any number of concurrent
// operations.
type Modulus struct {
	// Limbs is the little-endian representation of N. Its length fixes
	// the limb width of every operand used with this Modulus.
	Limbs []uint64

	// RR is the Montgomery residue 2^{128*len(Limbs)} mod N.
	// Nil if N is even.
	RR []uint64

	// MRedConstant is -N[0]^{-1} mod 2^{64}. Zero if N is even.
	MRedConstant uint64

	// one is the Montgomery form of 1, i.e. 2^{64*len(Limbs)} mod N.
	// Nil if N is even.
	one []uint64

	bitLen int
}

// NewModulus instantiates a new [Modulus] from the little-endian limbs of N.
// The limbs are copied. N must be greater than 1; if N is odd the Montgomery
// constants are precomputed, otherwise only the additive and codec
// operations are available.
func NewModulus(limbs []uint64) (m *Modulus, err error) {

	if len(limbs) == 0 {
		return nil, fmt.Errorf("%w: modulus has no limbs", ErrBadInputData)
	}

	m = &Modulus{Limbs: structs.Vector[uint64](limbs).Clone()}

	i := len(limbs) - 1
	for i > 0 && limbs[i] == 0 {
		i--
	}
	m.bitLen = 64*i + bits.Len64(limbs[i])

	if m.bitLen <= 1 {
		return nil, fmt.Errorf("%w: modulus must be greater than 1", ErrBadInputData)
	}

	if limbs[0]&1 == 1 {
		m.MRedConstant = GetMRedConstant(limbs[0])
		m.RR = montConstant(limbs, 2*len(limbs))
		m.one = montConstant(limbs, len(limbs))
	}

	return m, nil
}

// NewModulusFromBigInt instantiates a new [Modulus] of width limbs limbs
// from the value of n.
func NewModulusFromBigInt(n *big.Int, limbs int) (*Modulus, error) {
	if n.Sign() <= 0 || n.BitLen() > 64*limbs {
		return nil, fmt.Errorf("%w: modulus does not fit %d limbs", ErrBadInputData, limbs)
	}
	p := make([]uint64, limbs)
	for i, w := 0, new(big.Int).Set(n); i < limbs; i++ {
		p[i] = w.Uint64()
		w.Rsh(w, 64)
	}
	return NewModulus(p)
}

// GetMRedConstant returns -n0^{-1} mod 2^{64} for odd n0, the constant
// folded into every Montgomery reduction with respect to a modulus whose
// least significant limb is n0.
func GetMRedConstant(n0 uint64) uint64 {
	// Newton iteration doubles the number of correct low-order bits of the
	// inverse each round; five rounds lift the three trivially correct bits
	// past 64.
	y := n0
	for i := 0; i < 5; i++ {
		y = y * (2 - n0*y)
	}
	return -y
}

// montConstant returns 2^{64*words} mod n, the Montgomery residues RR
// (words = 2L) and one (words = L). The modulus is public, so the
// variable-time big.Int arithmetic is confined to this setup path.
func montConstant(n []uint64, words int) (c []uint64) {
	N := limbsToBigInt(n)
	R := new(big.Int).Lsh(big.NewInt(1), uint(64*words))
	R.Mod(R, N)
	c = make([]uint64, len(n))
	for i := range c {
		c[i] = R.Uint64()
		R.Rsh(R, 64)
	}
	return
}

// Level of indirection shared by BigInt and montConstant.
func limbsToBigInt(p []uint64) (v *big.Int) {
	v = new(big.Int)
	w := new(big.Int)
	for i := len(p) - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, w.SetUint64(p[i]))
	}
	return
}

// BitLen returns the bit length of N.
func (m *Modulus) BitLen() int {
	return m.bitLen
}

// Size returns the byte length of the canonical external representation of
// a value reduced modulo N.
func (m *Modulus) Size() int {
	return (m.bitLen + 7) / 8
}

// BigInt returns the value of N as a new *big.Int.
func (m *Modulus) BigInt() *big.Int {
	return limbsToBigInt(m.Limbs)
}

// Clone returns a deep copy of the receiver.
func (m *Modulus) Clone() *Modulus {
	return &Modulus{
		Limbs:        structs.Vector[uint64](m.Limbs).Clone(),
		RR:           structs.Vector[uint64](m.RR).Clone(),
		MRedConstant: m.MRedConstant,
		one:          structs.Vector[uint64](m.one).Clone(),
		bitLen:       m.bitLen,
	}
}

// Equal reports whether the receiver and other describe the same modulus.
// The comparison is not constant-time; moduli are public values.
func (m *Modulus) Equal(other *Modulus) bool {
	return cmp.Equal(m.Limbs, other.Limbs)
}

// montCapable returns an error if the receiver cannot support Montgomery
// arithmetic, i.e. if it was built from an even modulus or assembled by
// hand with missing constants.
func (m *Modulus) montCapable() error {
	if m.MRedConstant == 0 || len(m.RR) != len(m.Limbs) || len(m.one) != len(m.Limbs) {
		return fmt.Errorf("%w: modulus is not odd or Montgomery constants are missing", ErrBadInputData)
	}
	return nil
}
