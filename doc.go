// Package ordgo provides ordinal number types for Go.
//
// An ordinal number describes a position (first, second, third), as opposed
// to a cardinal number, which describes a count. Ordgo stores positions
// 0-based in plain unsigned integers and renders them the English way.
//
// # Quick Start
//
//	o := ordgo.MustFrom1[uint32](4)
//	fmt.Println(o)          // 4th
//	fmt.Println(o.Into0())  // 3
//	fmt.Println(o.Next())   // 5th
//
// Ordinal literals:
//
//	day := ordgo.MustParse[uint8]("4th")  // also "4-th", "4 th" and "4."
//	one := ordgo.MustParse[uint8]("first")
//
// # Widths
//
// Five unsigned widths share the generic Ordinal implementation:
//
//	ordgo.O8     // uint8
//	ordgo.O16    // uint16
//	ordgo.O32    // uint32
//	ordgo.O64    // uint64
//	ordgo.Osize  // uint
//
// O128 extends the same model to 128 bits on top of lukechampine.com/uint128.
//
// # Boundaries
//
// The maximum value of the backing type is reserved so that every ordinal
// has a successor and a 1-based form. Constructors report ErrTooLarge for
// the reserved value and ErrZero for a 1-based zero; panicking Must variants
// exist for values known to be in range.
//
// # Key Features
//
//   - Words for the first three positions, numeral plus suffix beyond
//   - Suffix follows the last two digits ("11th", "21st", "111th")
//   - Fallible and panicking constructors for 0-based and 1-based values
//   - Ordinal literal parsing ("first", "4th", "4-th", "4 th", "4.")
//   - JSON and text round-trips carrying the 0-based position
package ordgo
