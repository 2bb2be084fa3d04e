package ordgo

import (
	"errors"
	"fmt"
	"strconv"
)

// MarshalJSON encodes the ordinal as its 0-based position in a JSON number.
func (o Ordinal[T]) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(o.v), 10), nil
}

// UnmarshalJSON decodes a 0-based position. It fails with ErrTooLarge when
// the position is reserved or does not fit T, and with ErrSyntax when data
// is not an unsigned JSON number. JSON null leaves the ordinal unchanged.
func (o *Ordinal[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	return o.decodeDecimal(string(data))
}

// MarshalText encodes the ordinal as its 0-based position in decimal. It
// also makes ordinals usable as map keys in encoding/json.
func (o Ordinal[T]) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(o.v), 10), nil
}

// UnmarshalText decodes a 0-based decimal position, like UnmarshalJSON.
func (o *Ordinal[T]) UnmarshalText(text []byte) error {
	return o.decodeDecimal(string(text))
}

func (o *Ordinal[T]) decodeDecimal(s string) error {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("%w: %s", ErrTooLarge, s)
		}

		return fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	if u > uint64(^T(0)) {
		return fmt.Errorf("%w: %s", ErrTooLarge, s)
	}

	v, err := From0(T(u))
	if err != nil {
		return err
	}

	*o = v

	return nil
}

// MarshalJSON encodes the ordinal as its 0-based position in a JSON number.
// The number may exceed 64 bits; decoders that read into arbitrary
// precision types keep it exact.
func (o O128) MarshalJSON() ([]byte, error) {
	return []byte(o.v.String()), nil
}

// UnmarshalJSON decodes a 0-based position of up to 128 bits. JSON null
// leaves the ordinal unchanged.
func (o *O128) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	return o.decodeDecimal(string(data))
}

// MarshalText encodes the ordinal as its 0-based position in decimal.
func (o O128) MarshalText() ([]byte, error) {
	return []byte(o.v.String()), nil
}

// UnmarshalText decodes a 0-based decimal position, like UnmarshalJSON.
func (o *O128) UnmarshalText(text []byte) error {
	return o.decodeDecimal(string(text))
}

func (o *O128) decodeDecimal(s string) error {
	n, err := parseUint128(s)
	if err != nil {
		return err
	}

	v, err := O128From0(n)
	if err != nil {
		return err
	}

	*o = v

	return nil
}
