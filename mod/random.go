package mod

import (
	"fmt"
	"math/bits"

	"github.com/Pro7ech/modarith/utils/sampling"
)

// Random sets x to a value drawn uniformly at random from [min, N), in
// plain form, reading entropy from source. min is typically 0, or 1 when
// the value feeds an inversion. It returns [ErrBadInputData] if min is not
// below N.
//
// Candidates are sampled with the bits above [Modulus.BitLen] masked off and
// rejected while outside the range, so on average fewer than two draws are
// needed. The number of iterations depends only on the random stream, never
// on previously processed secrets; rejected candidates are discarded, so
// branching on them reveals nothing about the accepted value.
func (m *Modulus) Random(x []uint64, min uint64, source *sampling.Source) error {

	if m.bitLen <= 64 && m.Limbs[0] <= min {
		return fmt.Errorf("%w: lower bound %d is not below the modulus", ErrBadInputData, min)
	}

	L := len(m.Limbs)
	x = x[:L]

	// masks[i] keeps the bits of limb i that lie below BitLen.
	masks := make([]uint64, L)
	for i := range masks {
		switch bits := m.bitLen - 64*i; {
		case bits >= 64:
			masks[i] = ^uint64(0)
		case bits > 0:
			masks[i] = uint64(1)<<uint(bits) - 1
		}
	}

	buf := make([]byte, 8*L)
	for {
		if _, err := source.Read(buf); err != nil {
			return fmt.Errorf("sampling source: %w", err)
		}
		for i := range x {
			x[i] = 0
			for j := 0; j < 8; j++ {
				x[i] |= uint64(buf[8*i+j]) << (8 * j)
			}
			x[i] &= masks[i]
		}
		// x < min only when every limb above the first is zero and the
		// first falls short.
		_, lt := bits.Sub64(x[0], min, 0)
		if GeqVec(x, m.Limbs) == 0 && ZeroVec(x[1:])&lt == 0 {
			return nil
		}
	}
}
