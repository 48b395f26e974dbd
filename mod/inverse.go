package mod

import (
	"fmt"
	"math/bits"

	"github.com/Pro7ech/modarith/utils/concurrency"
)

// InvPrimeWorkingLimbs returns the number of limbs of working memory that
// [Modulus.InvPrime] requires for operands and modulus of width L. The
// relationship is fixed but implementation-defined; callers must size their
// scratch with this function rather than assume a layout.
func InvPrimeWorkingLimbs(L int) int {
	// Exponent N-2, base copy, accumulator, multiplier working memory.
	return 3*L + MontMulWorkingLimbs(L)
}

// InvPrime evaluates x = a^{-1} mod N for a prime N, with a and x both in
// Montgomery form, via the Fermat identity a^{-1} = a^{N-2} mod N.
//
// a must be nonzero and smaller than N; primality of N is not verified and a
// composite N silently yields a meaningless result. t is caller-owned
// scratch of at least [InvPrimeWorkingLimbs] limbs; it must not overlap any
// other operand, its initial content is ignored, and its final content is
// sensitive residue the caller must erase. x may alias a.
//
// The square-and-multiply ladder branches only on the bits of the exponent
// N-2, which derive from the public modulus; the memory-access pattern is
// independent of a and of every intermediate power.
func (m *Modulus) InvPrime(x, a, t []uint64) error {

	if err := m.montCapable(); err != nil {
		return err
	}

	L := len(m.Limbs)
	if len(t) < InvPrimeWorkingLimbs(L) {
		return fmt.Errorf("%w: working memory needs %d limbs, has %d", ErrBufferTooSmall, InvPrimeWorkingLimbs(L), len(t))
	}

	var (
		e    = t[0*L : 1*L] // exponent N-2
		base = t[1*L : 2*L] // copy of a, so that x may alias a
		acc  = t[2*L : 3*L] // running power, Montgomery form of 1 initially
		tm   = t[3*L:]      // multiplier working memory
	)

	// e = N - 2. N is odd and greater than 1, so the borrow dies out.
	var borrow uint64
	e[0], borrow = bits.Sub64(m.Limbs[0], 2, 0)
	for i := 1; i < L; i++ {
		e[i], borrow = bits.Sub64(m.Limbs[i], 0, borrow)
	}

	copy(base, a[:L])
	copy(acc, m.one)

	for i := 64*L - 1; i >= 0; i-- {
		MontMulVec(acc, acc, acc, m.Limbs, m.MRedConstant, tm)
		if (e[i>>6]>>(i&63))&1 == 1 {
			MontMulVec(acc, acc, base, m.Limbs, m.MRedConstant, tm)
		}
	}

	copy(x[:L], acc)
	return nil
}

// Inverse evaluates x = a^{-1} mod N for a prime N, with a and x both in
// Montgomery form, allocating the working memory of [Modulus.InvPrime]
// itself and erasing it before returning, on every path.
func (m *Modulus) Inverse(x, a []uint64) error {
	t := make([]uint64, InvPrimeWorkingLimbs(len(m.Limbs)))
	defer clear(t)
	return m.InvPrime(x, a, t)
}

// InverseBatch evaluates xs[i] = as[i]^{-1} mod N for each i, with all
// values in Montgomery form, spreading the independent inversions over the
// given number of workers. Each worker owns one scratch buffer for its
// lifetime; all scratch is erased before the call returns.
//
// xs[i] may alias as[i]. The batch shape is public; the constant-time
// guarantees of [Modulus.InvPrime] hold per element.
func (m *Modulus) InverseBatch(xs, as [][]uint64, workers int) error {

	if len(xs) != len(as) {
		return fmt.Errorf("%w: batch size mismatch: %d outputs, %d inputs", ErrBadInputData, len(xs), len(as))
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(as) {
		workers = len(as)
	}

	scratch := make([][]uint64, workers)
	for i := range scratch {
		scratch[i] = make([]uint64, InvPrimeWorkingLimbs(len(m.Limbs)))
	}
	defer func() {
		for i := range scratch {
			clear(scratch[i])
		}
	}()

	rm := concurrency.NewResourceManager(scratch)
	for i := range as {
		x, a := xs[i], as[i]
		rm.Run(func(t []uint64) error {
			return m.InvPrime(x, a, t)
		})
	}

	return rm.Wait()
}
