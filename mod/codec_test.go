package mod

import (
	"math/big"
	"testing"

	"github.com/Pro7ech/modarith/utils/bignum"
	"github.com/Pro7ech/modarith/utils/sampling"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {

	source := sampling.NewSource([32]byte{0xb0})

	for _, tc := range testModuli {
		m := newTestModulus(t, tc.value, tc.limbs)

		for _, order := range []ByteOrder{BigEndian, LittleEndian} {

			t.Run(testString("RoundTrip/"+order.String(), m), func(t *testing.T) {
				for _, size := range []int{m.Size(), 8 * tc.limbs, 8*tc.limbs + 3} {
					a := bigToVec(bignum.RandInt(source, m.BigInt()), tc.limbs)
					out := make([]byte, size)
					require.NoError(t, m.Write(a, out, order))

					x := make([]uint64, tc.limbs)
					require.NoError(t, m.Read(x, out, order))
					require.Equal(t, a, x)
				}
			})

			t.Run(testString("ReadShortInput/"+order.String(), m), func(t *testing.T) {
				// A single byte always fits and is always below N.
				x := make([]uint64, tc.limbs)
				require.NoError(t, m.Read(x, []byte{0x05}, order))
				require.Equal(t, bignum.NewInt(5), vecToBig(x))
			})
		}

		t.Run(testString("WriteBufferTooSmall", m), func(t *testing.T) {
			a := randValue(t, m, source)
			out := make([]byte, m.Size()-1)
			require.ErrorIs(t, m.Write(a, out, BigEndian), ErrBufferTooSmall)
		})

		t.Run(testString("ReadNotBelowModulus", m), func(t *testing.T) {
			out := make([]byte, 8*tc.limbs)
			require.NoError(t, m.Write(m.Limbs, out, LittleEndian))
			x := make([]uint64, tc.limbs)
			require.ErrorIs(t, m.Read(x, out, LittleEndian), ErrBadInputData)
		})

		t.Run(testString("ReadValueTooWide", m), func(t *testing.T) {
			in := make([]byte, 8*tc.limbs+1)
			in[0] = 1 // big-endian: most significant byte
			x := make([]uint64, tc.limbs)
			require.ErrorIs(t, m.Read(x, in, BigEndian), ErrBufferTooSmall)

			in = make([]byte, 8*tc.limbs+1)
			in[len(in)-1] = 1 // little-endian: most significant byte
			require.ErrorIs(t, m.Read(x, in, LittleEndian), ErrBufferTooSmall)
		})
	}

	t.Run("Endianness", func(t *testing.T) {
		m := newTestModulus(t, "0x1234567890abcdef11", 2)

		a := bigToVec(bignum.NewInt("0x34567890abcdef11"), 2)

		be := make([]byte, m.Size())
		require.NoError(t, m.Write(a, be, BigEndian))
		require.Equal(t, []byte{0x00, 0x34, 0x56, 0x78, 0x90, 0xab, 0xcd, 0xef, 0x11}, be)

		le := make([]byte, m.Size())
		require.NoError(t, m.Write(a, le, LittleEndian))
		require.Equal(t, []byte{0x11, 0xef, 0xcd, 0xab, 0x90, 0x78, 0x56, 0x34, 0x00}, le)
	})

	t.Run("ReadLeavesPlainForm", func(t *testing.T) {
		m := newTestModulus(t, "13", 1)
		x := []uint64{0xffffffffffffffff}
		require.NoError(t, m.Read(x, []byte{0x0c}, BigEndian))
		require.Equal(t, big.NewInt(12), vecToBig(x))
	})
}
