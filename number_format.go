package pdflayout

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberFormatter converts a page number into display text. Implementations
// may fail for values they cannot represent; callers decide how to recover.
type NumberFormatter interface {
	FormatNumber(n int) (string, error)
}

// NumberFormatterFunc adapts an ordinary function to NumberFormatter.
type NumberFormatterFunc func(n int) (string, error)

// FormatNumber calls f(n).
func (f NumberFormatterFunc) FormatNumber(n int) (string, error) {
	return f(n)
}

// LocaleNumberFormatter renders integers with the digit grouping of a locale,
// e.g. "1,234" for English and "1.234" for German.
type LocaleNumberFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocaleNumberFormatter creates a formatter for the given language tag.
func NewLocaleNumberFormatter(tag language.Tag) *LocaleNumberFormatter {
	return &LocaleNumberFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Language returns the locale the formatter renders for.
func (f *LocaleNumberFormatter) Language() language.Tag {
	return f.tag
}

// FormatNumber never fails.
func (f *LocaleNumberFormatter) FormatNumber(n int) (string, error) {
	return f.printer.Sprintf("%d", n), nil
}

// RomanNumberFormatter renders roman numerals and fails outside
// [MinRoman, MaxRoman].
type RomanNumberFormatter struct {
	Lowercase bool
}

// FormatNumber converts n with ToRoman.
func (f RomanNumberFormatter) FormatNumber(n int) (string, error) {
	s, err := ToRoman(n)
	if err != nil {
		return "", err
	}
	if f.Lowercase {
		return strings.ToLower(s), nil
	}
	return s, nil
}
