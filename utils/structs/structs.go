// Package structs provides small generic containers shared across the
// module.
package structs

import (
	"golang.org/x/exp/constraints"
)

// Vector is a slice of unsigned machine words. The methods below are
// not constant-time and must only be used on public data, such as modulus
// descriptors and test fixtures.
type Vector[T constraints.Unsigned] []T

// Size returns the number of components of the receiver.
func (v Vector[T]) Size() int {
	return len(v)
}

// Clone returns a deep copy of the receiver. A nil receiver yields nil.
func (v Vector[T]) Clone() (vcpy Vector[T]) {
	if v == nil {
		return nil
	}
	vcpy = make(Vector[T], len(v))
	copy(vcpy, v)
	return
}

// Equal reports whether the receiver and the operand have the same size and
// components.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}
