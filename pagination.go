package pdflayout

import "strconv"

// FormattingErrorSentinel replaces a value that a NumberFormatter failed to render.
const FormattingErrorSentinel = "Formatting error!"

// PaginationStyle turns a page index and total page count into label text.
//
// The set of styles is closed: DefaultStyle, RomanStyle, NumberFormatStyle
// and ClosureStyle. Format never fails; problems with a single value are
// rendered visibly instead of being returned.
type PaginationStyle interface {
	// Format returns the label for page out of total.
	Format(page, total int) string

	// String returns a stable tag describing the style, for debugging and
	// snapshot comparisons only.
	String() string

	isPaginationStyle()
}

// DefaultStyle joins page and total with a dash, e.g. "1 - 3".
type DefaultStyle struct{}

// RomanStyle writes page and total as uppercase roman numerals into Template.
// Values outside [MinRoman, MaxRoman] are rendered as an empty string.
type RomanStyle struct {
	Template string
}

// NumberFormatStyle renders page and total with Formatter and writes them
// into Template.
type NumberFormatStyle struct {
	Template  string
	Formatter NumberFormatter
}

// ClosureStyle delegates formatting to Func.
type ClosureStyle struct {
	Func func(page, total int) string
}

// Default returns the "{page} - {total}" style.
func Default() PaginationStyle {
	return DefaultStyle{}
}

// Roman returns a style that fills template with roman numerals.
func Roman(template string) PaginationStyle {
	return RomanStyle{Template: template}
}

// CustomNumberFormat returns a style that fills template with numbers
// rendered by formatter.
func CustomNumberFormat(template string, formatter NumberFormatter) PaginationStyle {
	return NumberFormatStyle{Template: template, Formatter: formatter}
}

// CustomClosure returns a style that calls fn for every label.
func CustomClosure(fn func(page, total int) string) PaginationStyle {
	return ClosureStyle{Func: fn}
}

// Format renders the label for page out of total using style.
// A nil style behaves like DefaultStyle.
func Format(style PaginationStyle, page, total int) string {
	if style == nil {
		style = DefaultStyle{}
	}
	return style.Format(page, total)
}

func (DefaultStyle) Format(page, total int) string {
	return strconv.Itoa(page) + " - " + strconv.Itoa(total)
}

func (DefaultStyle) String() string { return "Default" }

func (DefaultStyle) isPaginationStyle() {}

func (s RomanStyle) Format(page, total int) string {
	return fillTemplate(s.Template, romanOrEmpty(page), romanOrEmpty(total))
}

func (s RomanStyle) String() string { return "Roman(" + s.Template + ")" }

func (RomanStyle) isPaginationStyle() {}

// romanOrEmpty renders out of range values as "".
func romanOrEmpty(n int) string {
	s, err := ToRoman(n)
	if err != nil {
		return ""
	}
	return s
}

func (s NumberFormatStyle) Format(page, total int) string {
	return fillTemplate(s.Template, s.formatValue(page), s.formatValue(total))
}

// formatValue falls back to FormattingErrorSentinel when the formatter is
// missing or fails.
func (s NumberFormatStyle) formatValue(n int) string {
	if s.Formatter == nil {
		return FormattingErrorSentinel
	}
	text, err := s.Formatter.FormatNumber(n)
	if err != nil {
		return FormattingErrorSentinel
	}
	return text
}

// String omits the formatter, which has no textual identity.
func (s NumberFormatStyle) String() string { return "CustomNumberFormat(" + s.Template + ")" }

func (NumberFormatStyle) isPaginationStyle() {}

// Format returns Func's result unmodified. Panics raised by Func are not
// recovered. A nil Func falls back to DefaultStyle.
func (s ClosureStyle) Format(page, total int) string {
	if s.Func == nil {
		return DefaultStyle{}.Format(page, total)
	}
	return s.Func(page, total)
}

// String is always "CustomClosure"; functions carry no stable identity.
func (ClosureStyle) String() string { return "CustomClosure" }

func (ClosureStyle) isPaginationStyle() {}
