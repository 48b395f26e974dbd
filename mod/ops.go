package mod

// Add evaluates x = a + b (mod N). a and b must be smaller than N.
// x may alias a and/or b; no other overlap between operands is permitted.
//
// The reduction is branchless: the raw sum is unconditionally diminished by
// N, and N is added back exactly when the carry of the addition and the
// borrow of the subtraction disagree. Three cases occur: no carry and no
// borrow (the sum was in [N, 2^{64L})), where the subtraction reduced it;
// no carry and a borrow (the sum was already reduced), where the add-back
// undoes the subtraction; carry and borrow, where the two cancel. Carry
// without borrow cannot occur for inputs below N.
func (m *Modulus) Add(x, a, b []uint64) {
	carry := AddVec(x, a, b)
	borrow := SubVec(x, x, m.Limbs)
	CondAddVec(x, m.Limbs, carry^borrow)
}

// Sub evaluates x = a - b (mod N). a and b must be smaller than N.
// x may alias a and/or b; no other overlap between operands is permitted.
func (m *Modulus) Sub(x, a, b []uint64) {
	borrow := SubVec(x, a, b)
	CondAddVec(x, m.Limbs, borrow)
}

// Neg evaluates x = -a (mod N), where a may be any value up to and
// including N. x may alias a.
//
// N - a is correct for 0 < a <= N; for a = 0 it yields N, which the trial
// subtraction detects (it is the only case that does not borrow) and folds
// back to zero without branching on a.
func (m *Modulus) Neg(x, a []uint64) {
	SubVec(x, m.Limbs, a)
	borrow := SubVec(x, x, m.Limbs)
	CondAddVec(x, m.Limbs, borrow)
}

// CondAssign evaluates x = a if flag = 1 and leaves x unchanged if
// flag = 0, without revealing through timing or memory accesses which of
// the two happened. flag must be 0 or 1; any other value leaves x with an
// indeterminate (but memory-safe) content.
func (m *Modulus) CondAssign(x, a []uint64, flag uint64) {
	CondAssignVec(x[:len(m.Limbs)], a, flag)
}

// CondSwap exchanges x and y if flag = 1 and leaves both unchanged if
// flag = 0, under the same discipline and flag contract as
// [Modulus.CondAssign]. x and y must not overlap.
func (m *Modulus) CondSwap(x, y []uint64, flag uint64) {
	CondSwapVec(x[:len(m.Limbs)], y, flag)
}
