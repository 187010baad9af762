package pdflayout

import (
	"strings"

	"github.com/pkg/errors"
)

// Bounds of the standard subtractive roman numeral notation.
const (
	MinRoman = 1
	MaxRoman = 3999
)

var (
	// ErrRomanOutOfRange is returned when a value cannot be written in
	// standard roman notation.
	ErrRomanOutOfRange = errors.New("value out of roman numeral range")

	// ErrInvalidRoman is returned when a string is not a canonical roman numeral.
	ErrInvalidRoman = errors.New("invalid roman numeral")
)

type romanSymbol struct {
	value  int
	symbol string
}

// romanSymbols is ordered from the largest value down, subtractive pairs included.
var romanSymbols = []romanSymbol{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// ToRoman converts n to an uppercase roman numeral.
// Values outside [MinRoman, MaxRoman] return ErrRomanOutOfRange.
func ToRoman(n int) (string, error) {
	if n < MinRoman || n > MaxRoman {
		return "", errors.Wrapf(ErrRomanOutOfRange, "cannot convert %d", n)
	}

	var sb strings.Builder
	for _, rs := range romanSymbols {
		for n >= rs.value {
			sb.WriteString(rs.symbol)
			n -= rs.value
		}
	}
	return sb.String(), nil
}

// FromRoman parses an uppercase roman numeral. Only the canonical form
// produced by ToRoman is accepted, so "IIII" or "VX" are rejected.
func FromRoman(s string) (int, error) {
	if s == "" {
		return 0, errors.Wrap(ErrInvalidRoman, "empty string")
	}

	n := 0
	rest := s
	for _, rs := range romanSymbols {
		for strings.HasPrefix(rest, rs.symbol) {
			n += rs.value
			rest = rest[len(rs.symbol):]
		}
	}
	if rest != "" {
		return 0, errors.Wrapf(ErrInvalidRoman, "%q", s)
	}

	// Greedy parsing accepts some non-canonical inputs (e.g. "IIII", "XCX");
	// re-encoding catches them.
	canonical, err := ToRoman(n)
	if err != nil || canonical != s {
		return 0, errors.Wrapf(ErrInvalidRoman, "%q", s)
	}
	return n, nil
}
