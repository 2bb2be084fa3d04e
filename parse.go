package ordgo

import (
	"fmt"
	"math/big"
	"strconv"

	"lukechampine.com/uint128"
)

// Parse converts an ordinal literal into an ordinal. Accepted forms are the
// words "first", "second" and "third", and a 1-based numeral followed by a
// suffix: "4th", "4-th", "4 th" or "4.". The suffix is identifier-shaped and
// is not checked against the numeral, so "4st" parses fine. A bare numeral
// is not an ordinal literal.
//
// Parse fails with ErrSyntax when s has none of these forms, with ErrZero
// for position 0 and with ErrTooLarge when the position does not fit T.
func Parse[T Uint](s string) (Ordinal[T], error) {
	digits, err := literalDigits(s)
	if err != nil {
		return Ordinal[T]{}, err
	}

	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || u > uint64(^T(0)) {
		return Ordinal[T]{}, fmt.Errorf("%w: %s", ErrTooLarge, digits)
	}

	return From1(T(u))
}

// MustParse is like Parse but panics on error. It allows compact ordinal
// constants:
//
//	day := ordgo.MustParse[uint8]("4th")
func MustParse[T Uint](s string) Ordinal[T] {
	o, err := Parse[T](s)
	if err != nil {
		panic(err)
	}

	return o
}

// Parse128 is like Parse for 128-bit ordinals.
func Parse128(s string) (O128, error) {
	digits, err := literalDigits(s)
	if err != nil {
		return O128{}, err
	}

	n, err := parseUint128(digits)
	if err != nil {
		return O128{}, err
	}

	return O128From1(n)
}

// MustParse128 is like Parse128 but panics on error.
func MustParse128(s string) O128 {
	o, err := Parse128(s)
	if err != nil {
		panic(err)
	}

	return o
}

// literalDigits reduces an ordinal literal to its 1-based decimal digits:
// the three words map to "1", "2" and "3", every other form is a numeral
// plus a suffix. A single space may separate the numeral from its suffix,
// and a dash may join them.
func literalDigits(s string) (string, error) {
	switch s {
	case "first":
		return "1", nil
	case "second":
		return "2", nil
	case "third":
		return "3", nil
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	digits, rest := s[:i], s[i:]
	if digits == "" {
		return "", fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	if len(rest) > 1 && rest[0] == ' ' {
		rest = rest[1:]
	}

	if rest == "." {
		return digits, nil
	}

	if len(rest) > 0 && rest[0] == '-' {
		rest = rest[1:]
	}

	if !isSuffix(rest) {
		return "", fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return digits, nil
}

// isSuffix reports whether s is an identifier: letters, digits and
// underscores, not starting with a digit.
func isSuffix(s string) bool {
	if s == "" {
		return false
	}

	if !isLetter(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && (s[i] < '0' || s[i] > '9') {
			return false
		}
	}

	return true
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// parseUint128 converts a string of decimal digits into a Uint128. It fails
// with ErrSyntax on anything but digits and with ErrTooLarge beyond 128
// bits.
func parseUint128(digits string) (uint128.Uint128, error) {
	if digits == "" {
		return uint128.Zero, fmt.Errorf("%w: %q", ErrSyntax, digits)
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return uint128.Zero, fmt.Errorf("%w: %q", ErrSyntax, digits)
		}
	}

	b, ok := new(big.Int).SetString(digits, 10)
	if !ok || b.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("%w: %s", ErrTooLarge, digits)
	}

	return uint128.FromBig(b), nil
}
