package mod

import (
	"math/big"
	"testing"

	"github.com/Pro7ech/modarith/utils/sampling"
	"github.com/stretchr/testify/require"
)

func TestMontgomery(t *testing.T) {

	source := sampling.NewSource([32]byte{0xc0})

	for _, tc := range testModuli {

		m := newTestModulus(t, tc.value, tc.limbs)
		tm := make([]uint64, MontMulWorkingLimbs(tc.limbs))

		if m.Limbs[0]&1 == 0 {
			t.Run(testString("EvenModulus", m), func(t *testing.T) {
				x := make([]uint64, tc.limbs)
				require.ErrorIs(t, m.MForm(x, tm), ErrBadInputData)
				require.ErrorIs(t, m.IMForm(x), ErrBadInputData)
				require.ErrorIs(t, m.MulMont(x, x, x, tm), ErrBadInputData)
			})
			continue
		}

		N := m.BigInt()

		t.Run(testString("RoundTrip", m), func(t *testing.T) {
			for i := 0; i < 64; i++ {
				a := randValue(t, m, source)
				x := append([]uint64(nil), a...)

				require.NoError(t, m.MForm(x, tm))
				require.NoError(t, m.IMForm(x))
				require.Equal(t, a, x)
			}
		})

		t.Run(testString("MFormValue", m), func(t *testing.T) {
			// MForm(a) = a * 2^{64L} mod N.
			a := randValue(t, m, source)
			x := append([]uint64(nil), a...)
			require.NoError(t, m.MForm(x, tm))

			want := new(big.Int).Lsh(vecToBig(a), uint(64*tc.limbs))
			want.Mod(want, N)
			require.Equal(t, want, vecToBig(x))
		})

		t.Run(testString("MulMont", m), func(t *testing.T) {
			for i := 0; i < 64; i++ {
				a := randValue(t, m, source)
				b := randValue(t, m, source)

				am := append([]uint64(nil), a...)
				bm := append([]uint64(nil), b...)
				require.NoError(t, m.MForm(am, tm))
				require.NoError(t, m.MForm(bm, tm))

				x := make([]uint64, tc.limbs)
				require.NoError(t, m.MulMont(x, am, bm, tm))
				require.NoError(t, m.IMForm(x))

				want := new(big.Int).Mul(vecToBig(a), vecToBig(b))
				want.Mod(want, N)
				require.Equal(t, want, vecToBig(x))
			}
		})

		t.Run(testString("MulMontAliasing", m), func(t *testing.T) {
			a := randValue(t, m, source)
			am := append([]uint64(nil), a...)
			require.NoError(t, m.MForm(am, tm))

			// x aliases both operands: squaring in place.
			x := append([]uint64(nil), am...)
			require.NoError(t, m.MulMont(x, x, x, tm))
			require.NoError(t, m.IMForm(x))

			want := new(big.Int).Mul(vecToBig(a), vecToBig(a))
			want.Mod(want, N)
			require.Equal(t, want, vecToBig(x))
		})

		t.Run(testString("ScratchTooSmall", m), func(t *testing.T) {
			x := randValue(t, m, source)
			short := make([]uint64, MontMulWorkingLimbs(tc.limbs)-1)
			require.ErrorIs(t, m.MForm(x, short), ErrBufferTooSmall)
			require.ErrorIs(t, m.MulMont(x, x, x, short), ErrBufferTooSmall)
		})
	}

	t.Run("Scenario/q=7", func(t *testing.T) {
		m := newTestModulus(t, "7", 1)
		x := []uint64{3}
		require.NoError(t, m.MForm(x, []uint64{0}))
		require.NoError(t, m.IMForm(x))
		require.Equal(t, []uint64{3}, x)
	})
}

func TestElement(t *testing.T) {

	source := sampling.NewSource([32]byte{0xc1})

	m := newTestModulus(t, testModuli[2].value, testModuli[2].limbs)
	tm := make([]uint64, MontMulWorkingLimbs(testModuli[2].limbs))
	N := m.BigInt()

	t.Run("ToMontFromMont", func(t *testing.T) {
		p := Plain(randValue(t, m, source))
		want := vecToBig(p)

		v, err := m.ToMont(p, tm)
		require.NoError(t, err)

		q, err := m.FromMont(v)
		require.NoError(t, err)
		require.Equal(t, want, vecToBig(q))
	})

	t.Run("Arithmetic", func(t *testing.T) {
		a := Plain(randValue(t, m, source))
		b := Plain(randValue(t, m, source))

		x := m.NewPlain()
		m.AddPlain(x, a, b)
		m.SubPlain(x, x, b)
		require.Equal(t, vecToBig(a), vecToBig(x))

		m.NegPlain(x, x)
		m.NegPlain(x, x)
		require.Equal(t, vecToBig(a), vecToBig(x))
	})

	t.Run("MulInverse", func(t *testing.T) {
		a := Plain(randNonZero(t, m, source))
		aBig := vecToBig(a)

		am, err := m.ToMont(a, tm)
		require.NoError(t, err)

		inv := m.NewMont()
		require.NoError(t, m.InverseMontgomery(inv, am))

		prod := m.NewMont()
		require.NoError(t, m.MulMontgomery(prod, inv, am, tm))

		p, err := m.FromMont(prod)
		require.NoError(t, err)
		require.Equal(t, big.NewInt(1), vecToBig(p))

		// Cross-check against the big.Int inverse.
		invPlain, err := m.FromMont(inv)
		require.NoError(t, err)
		require.Equal(t, new(big.Int).ModInverse(aBig, N), vecToBig(invPlain))
	})
}
