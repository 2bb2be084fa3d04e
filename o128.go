package ordgo

import (
	"fmt"

	"lukechampine.com/uint128"
)

// O128 is an ordinal backed by a 128-bit unsigned integer. It mirrors
// Ordinal for positions beyond the range of uint64.
//
// The position is stored 0-based and the maximum 128-bit value is reserved,
// matching the Ordinal invariant. O128 values are comparable with == and can
// be used as map keys. The zero value is the first ordinal.
type O128 struct {
	v uint128.Uint128
}

// First128 returns the first 128-bit ordinal, the same as the zero value.
func First128() O128 {
	return O128{}
}

// O128From0 converts a 0-based value into an ordinal. It fails with
// ErrTooLarge when n is the maximum 128-bit value, which is reserved.
func O128From0(n uint128.Uint128) (O128, error) {
	if n.Equals(uint128.Max) {
		return O128{}, fmt.Errorf("%w: %v", ErrTooLarge, n)
	}

	return O128{v: n}, nil
}

// O128From1 converts a 1-based value into an ordinal. It fails with ErrZero
// when n is 0.
func O128From1(n uint128.Uint128) (O128, error) {
	if n.IsZero() {
		return O128{}, ErrZero
	}

	return O128{v: n.Sub64(1)}, nil
}

// MustO128From0 is like O128From0 but panics on error.
func MustO128From0(n uint128.Uint128) O128 {
	o, err := O128From0(n)
	if err != nil {
		panic(err)
	}

	return o
}

// MustO128From1 is like O128From1 but panics on error.
func MustO128From1(n uint128.Uint128) O128 {
	o, err := O128From1(n)
	if err != nil {
		panic(err)
	}

	return o
}

// Into0 returns the 0-based form of the ordinal.
func (o O128) Into0() uint128.Uint128 {
	return o.v
}

// Into1 returns the 1-based form of the ordinal. It cannot overflow since
// the maximum value is rejected at construction.
func (o O128) Into1() uint128.Uint128 {
	return o.v.Add64(1)
}

// Next returns the following ordinal. It panics with ErrTooLarge when the
// successor is not representable; use Add for a fallible variant.
func (o O128) Next() O128 {
	return MustO128From0(o.v.Add64(1))
}

// Add returns the ordinal delta positions after o. It fails with ErrTooLarge
// when the result is not representable.
func (o O128) Add(delta uint128.Uint128) (O128, error) {
	if o.v.Cmp(uint128.Max.Sub(delta)) >= 0 {
		return O128{}, fmt.Errorf("%w: %v + %v", ErrTooLarge, o, delta)
	}

	return O128{v: o.v.Add(delta)}, nil
}

// MustAdd is like Add but panics on error.
func (o O128) MustAdd(delta uint128.Uint128) O128 {
	n, err := o.Add(delta)
	if err != nil {
		panic(err)
	}

	return n
}

// Sub returns the ordinal delta positions before o. It fails with
// ErrUnderflow when the result would precede the first ordinal.
func (o O128) Sub(delta uint128.Uint128) (O128, error) {
	if delta.Cmp(o.v) > 0 {
		return O128{}, fmt.Errorf("%w: %v - %v", ErrUnderflow, o, delta)
	}

	return O128{v: o.v.Sub(delta)}, nil
}

// MustSub is like Sub but panics on error.
func (o O128) MustSub(delta uint128.Uint128) O128 {
	n, err := o.Sub(delta)
	if err != nil {
		panic(err)
	}

	return n
}

// Diff returns the number of positions from other to o. It fails with
// ErrUnderflow when other comes after o.
func (o O128) Diff(other O128) (uint128.Uint128, error) {
	if other.v.Cmp(o.v) > 0 {
		return uint128.Zero, fmt.Errorf("%w: %v - %v", ErrUnderflow, o, other)
	}

	return o.v.Sub(other.v), nil
}

// MustDiff is like Diff but panics on error.
func (o O128) MustDiff(other O128) uint128.Uint128 {
	d, err := o.Diff(other)
	if err != nil {
		panic(err)
	}

	return d
}

// Compare returns -1 when o precedes other, 0 when they are the same
// position and +1 when o follows other.
func (o O128) Compare(other O128) int {
	return o.v.Cmp(other.v)
}

// Less reports whether o precedes other.
func (o O128) Less(other O128) bool {
	return o.v.Cmp(other.v) < 0
}

// IsFirst reports whether o is the first ordinal.
func (o O128) IsFirst() bool {
	return o.v.IsZero()
}
