package ordgo

import (
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// String renders the ordinal in English: "first", "second", "third", then
// "4th", "5th" and so on. The suffix follows the last two digits, so for
// example "11th", "21st" and "111th".
func (o Ordinal[T]) String() string {
	return ordinalString(strconv.FormatUint(uint64(o.v)+1, 10))
}

// String renders the ordinal in English, like Ordinal.String.
func (o O128) String() string {
	return ordinalString(o.v.Add64(1).String())
}

// ordinalString renders the decimal numeral num as an English ordinal. The
// first three positions come out as words, later ones as the numeral with
// its suffix.
func ordinalString(num string) string {
	switch num {
	case "1":
		return "first"
	case "2":
		return "second"
	case "3":
		return "third"
	}

	return num + ordinalSuffix(num)
}

// ordinalSuffix selects st, nd or rd for the decimal numeral num, falling
// back to th. The CLDR ordinal categories for English depend only on the
// trailing digits, so a bounded tail of num covers every width.
func ordinalSuffix(num string) string {
	if len(num) > 6 {
		num = num[len(num)-6:]
	}

	n, _ := strconv.Atoi(num)

	switch plural.Ordinal.MatchPlural(language.English, n, 0, 0, 0, 0) {
	case plural.One:
		return "st"
	case plural.Two:
		return "nd"
	case plural.Few:
		return "rd"
	default:
		return "th"
	}
}
