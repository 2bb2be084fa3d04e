package ordgo

import (
	"cmp"
	"fmt"
)

// Uint is the set of unsigned integer types that can back an Ordinal.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Ordinal is an ordinal number: a position such as first, second or third,
// as opposed to a cardinal number, which is a count.
//
// The position is stored 0-based. The maximum value of T is reserved at
// construction so that every ordinal has a successor and a 1-based form.
//
// Ordinals are immutable value types. They are comparable with == and can be
// used as map keys. The zero value is the first ordinal.
type Ordinal[T Uint] struct {
	v T
}

// Convenience names for the supported widths. The zero value of each is the
// first ordinal.
type (
	// O8 is an ordinal backed by uint8, covering "first" through "255th".
	O8 = Ordinal[uint8]

	// O16 is an ordinal backed by uint16, covering "first" through "65535th".
	O16 = Ordinal[uint16]

	// O32 is an ordinal backed by uint32.
	O32 = Ordinal[uint32]

	// O64 is an ordinal backed by uint64.
	O64 = Ordinal[uint64]

	// Osize is an ordinal backed by the platform word size.
	Osize = Ordinal[uint]
)

// First returns the first ordinal, the same as the zero value.
func First[T Uint]() Ordinal[T] {
	return Ordinal[T]{}
}

// From0 converts a 0-based value into an ordinal: 0 becomes the first
// ordinal, 1 the second, and so on. It fails with ErrTooLarge when n is the
// maximum of T, which is reserved.
func From0[T Uint](n T) (Ordinal[T], error) {
	if n == ^T(0) {
		return Ordinal[T]{}, fmt.Errorf("%w: %d", ErrTooLarge, n)
	}

	return Ordinal[T]{v: n}, nil
}

// From1 converts a 1-based value into an ordinal: 1 becomes the first
// ordinal, 2 the second, and so on. It fails with ErrZero when n is 0.
func From1[T Uint](n T) (Ordinal[T], error) {
	if n == 0 {
		return Ordinal[T]{}, ErrZero
	}

	return Ordinal[T]{v: n - 1}, nil
}

// MustFrom0 is like From0 but panics on error. It is intended for values
// known to be in range, such as constants.
func MustFrom0[T Uint](n T) Ordinal[T] {
	o, err := From0(n)
	if err != nil {
		panic(err)
	}

	return o
}

// MustFrom1 is like From1 but panics on error. It is intended for values
// known to be in range, such as constants.
func MustFrom1[T Uint](n T) Ordinal[T] {
	o, err := From1(n)
	if err != nil {
		panic(err)
	}

	return o
}

// Into0 returns the 0-based form of the ordinal: 0 for the first ordinal, 1
// for the second, and so on.
func (o Ordinal[T]) Into0() T {
	return o.v
}

// Into1 returns the 1-based form of the ordinal: 1 for the first ordinal, 2
// for the second, and so on. It cannot overflow since the maximum of T is
// rejected at construction.
func (o Ordinal[T]) Into1() T {
	return o.v + 1
}

// Next returns the following ordinal. It panics with ErrTooLarge when the
// successor is not representable; use Add(1) for a fallible variant.
func (o Ordinal[T]) Next() Ordinal[T] {
	return MustFrom0(o.v + 1)
}

// Add returns the ordinal delta positions after o. It fails with ErrTooLarge
// when the result is not representable.
func (o Ordinal[T]) Add(delta T) (Ordinal[T], error) {
	sum := o.v + delta
	if sum < o.v || sum == ^T(0) {
		return Ordinal[T]{}, fmt.Errorf("%w: %v + %d", ErrTooLarge, o, delta)
	}

	return Ordinal[T]{v: sum}, nil
}

// MustAdd is like Add but panics on error.
func (o Ordinal[T]) MustAdd(delta T) Ordinal[T] {
	n, err := o.Add(delta)
	if err != nil {
		panic(err)
	}

	return n
}

// Sub returns the ordinal delta positions before o. It fails with
// ErrUnderflow when the result would precede the first ordinal.
func (o Ordinal[T]) Sub(delta T) (Ordinal[T], error) {
	if delta > o.v {
		return Ordinal[T]{}, fmt.Errorf("%w: %v - %d", ErrUnderflow, o, delta)
	}

	return Ordinal[T]{v: o.v - delta}, nil
}

// MustSub is like Sub but panics on error.
func (o Ordinal[T]) MustSub(delta T) Ordinal[T] {
	n, err := o.Sub(delta)
	if err != nil {
		panic(err)
	}

	return n
}

// Diff returns the number of positions from other to o. It fails with
// ErrUnderflow when other comes after o.
func (o Ordinal[T]) Diff(other Ordinal[T]) (T, error) {
	if other.v > o.v {
		return 0, fmt.Errorf("%w: %v - %v", ErrUnderflow, o, other)
	}

	return o.v - other.v, nil
}

// MustDiff is like Diff but panics on error.
func (o Ordinal[T]) MustDiff(other Ordinal[T]) T {
	d, err := o.Diff(other)
	if err != nil {
		panic(err)
	}

	return d
}

// Compare returns -1 when o precedes other, 0 when they are the same
// position and +1 when o follows other.
func (o Ordinal[T]) Compare(other Ordinal[T]) int {
	return cmp.Compare(o.v, other.v)
}

// Less reports whether o precedes other.
func (o Ordinal[T]) Less(other Ordinal[T]) bool {
	return o.v < other.v
}

// IsFirst reports whether o is the first ordinal.
func (o Ordinal[T]) IsFirst() bool {
	return o.v == 0
}
