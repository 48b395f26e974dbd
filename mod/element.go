package mod

// Plain is a width-L value in the plain representation, i.e. an integer in
// [0, N). Mont is the same storage shape holding the Montgomery form
// v * 2^{64*L} mod N. The two named types make the representation state,
// which the raw []uint64 API leaves to caller bookkeeping, visible to the
// type checker: [Modulus.ToMont] and [Modulus.FromMont] are the only
// conversions between them.
type Plain []uint64

// Mont is the Montgomery-form counterpart of [Plain].
type Mont []uint64

// NewPlain allocates a zero plain-form value of the receiver's width.
func (m *Modulus) NewPlain() Plain {
	return make(Plain, len(m.Limbs))
}

// NewMont allocates a zero Montgomery-form value of the receiver's width.
func (m *Modulus) NewMont() Mont {
	return make(Mont, len(m.Limbs))
}

// ToMont converts p, in place, to Montgomery form and returns the retagged
// storage. p must not be used through the Plain binding afterwards. t is
// caller-owned working memory as for [Modulus.MForm].
func (m *Modulus) ToMont(p Plain, t []uint64) (Mont, error) {
	if err := m.MForm(p, t); err != nil {
		return nil, err
	}
	return Mont(p), nil
}

// FromMont converts v, in place, back to the plain representation and
// returns the retagged storage. v must not be used through the Mont binding
// afterwards.
func (m *Modulus) FromMont(v Mont) (Plain, error) {
	if err := m.IMForm(v); err != nil {
		return nil, err
	}
	return Plain(v), nil
}

// AddPlain evaluates x = a + b (mod N) on tagged plain-form values.
// x may alias a and/or b.
func (m *Modulus) AddPlain(x, a, b Plain) {
	m.Add(x, a, b)
}

// SubPlain evaluates x = a - b (mod N) on tagged plain-form values.
// x may alias a and/or b.
func (m *Modulus) SubPlain(x, a, b Plain) {
	m.Sub(x, a, b)
}

// NegPlain evaluates x = -a (mod N) on tagged plain-form values.
// x may alias a.
func (m *Modulus) NegPlain(x, a Plain) {
	m.Neg(x, a)
}

// MulMontgomery evaluates x = a * b (mod N) on tagged Montgomery-form
// values. x may alias a and/or b; t is caller-owned working memory as for
// [Modulus.MulMont].
func (m *Modulus) MulMontgomery(x, a, b Mont, t []uint64) error {
	return m.MulMont(x, a, b, t)
}

// InverseMontgomery evaluates x = a^{-1} (mod N) on tagged Montgomery-form
// values, for a prime N and nonzero a. x may alias a.
func (m *Modulus) InverseMontgomery(x, a Mont) error {
	return m.Inverse(x, a)
}
