package ordgo

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestParse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tests := []struct {
			in   string
			want uint32 // 1-based
		}{
			{"first", 1},
			{"second", 2},
			{"third", 3},
			{"1st", 1},
			{"3rd", 3},
			{"4th", 4},
			{"4-th", 4},
			{"4 th", 4},
			{"4.", 4},
			{"4 .", 4},
			{"11th", 11},
			{"21st", 21},
			{"100th", 100},
			{"4st", 4}, // the suffix is not checked against the numeral
			{"42nd_place", 42},
		}

		for _, tt := range tests {
			t.Run(tt.in, func(t *testing.T) {
				o, err := Parse[uint32](tt.in)
				require.NoError(t, err)
				assert.Equal(t, tt.want, o.Into1())
			})
		}
	})

	t.Run("Syntax", func(t *testing.T) {
		tests := []string{
			"",
			"4", // a bare numeral is not an ordinal literal
			"four",
			"fourth",
			"4 ",
			" 4th",
			"4th ",
			"-4th",
			"4-",
			"4--th",
			"4 - th",
			"4  th",
			"4 5th",
			"4.5",
			"4,",
			"4\tth",
			"th",
		}

		for _, in := range tests {
			t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
				_, err := Parse[uint32](in)
				require.ErrorIs(t, err, ErrSyntax)
			})
		}
	})

	t.Run("Zero", func(t *testing.T) {
		_, err := Parse[uint32]("0th")
		require.ErrorIs(t, err, ErrZero)

		_, err = Parse[uint32]("0.")
		require.ErrorIs(t, err, ErrZero)
	})

	t.Run("TooLarge", func(t *testing.T) {
		_, err := Parse[uint8]("256th")
		require.ErrorIs(t, err, ErrTooLarge)

		_, err = Parse[uint64]("18446744073709551616th")
		require.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("WidthBoundary", func(t *testing.T) {
		o, err := Parse[uint8]("255th")
		require.NoError(t, err)
		assert.Equal(t, uint8(254), o.Into0())
	})
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, uint8(4), MustParse[uint8]("4th").Into1())
	assert.True(t, MustParse[uint16]("first").IsFirst())

	require.PanicsWithError(t, `malformed ordinal literal: "4"`, func() {
		MustParse[uint32]("4")
	})
}

func TestParse128(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		o, err := Parse128("first")
		require.NoError(t, err)
		assert.Equal(t, First128(), o)

		o, err = Parse128("18446744073709551616th")
		require.NoError(t, err)
		assert.Equal(t, uint128.From64(math.MaxUint64), o.Into0())

		o, err = Parse128("340282366920938463463374607431768211455th")
		require.NoError(t, err)
		assert.Equal(t, uint128.Max.Sub64(1), o.Into0())
	})

	t.Run("Zero", func(t *testing.T) {
		_, err := Parse128("0th")
		require.ErrorIs(t, err, ErrZero)
	})

	t.Run("TooLarge", func(t *testing.T) {
		_, err := Parse128("340282366920938463463374607431768211456th")
		require.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("Syntax", func(t *testing.T) {
		_, err := Parse128("12")
		require.ErrorIs(t, err, ErrSyntax)
	})
}

func TestMustParse128(t *testing.T) {
	assert.Equal(t, "second", MustParse128("2nd").String())

	require.Panics(t, func() {
		MustParse128("0th")
	})
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"first", "second", "third",
		"4th", "4-th", "4 th", "4.", "21st",
		"0th", "256th", "99999999999999999999th",
		"", "4", "four",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		o, err := Parse[uint16](s)
		if err != nil {
			return
		}

		if o.Into1() == 0 {
			t.Fatalf("parsed %q to a zero position", s)
		}

		// Rendering yields a literal that parses back to the same position.
		back, err := Parse[uint16](o.String())
		if err != nil {
			t.Fatalf("re-parse %q of %q: %v", o.String(), s, err)
		}
		if back != o {
			t.Fatalf("round trip of %q: %v != %v", s, back, o)
		}
	})
}
