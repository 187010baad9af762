package pdflayout_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanvanderbyl/pdflayout"
)

func TestFormat_Default(t *testing.T) {
	cases := []struct {
		page, total int
		want        string
	}{
		{1, 3, "1 - 3"},
		{0, 0, "0 - 0"},
		{12, 150, "12 - 150"},
		{10, 2, "10 - 2"},
		{4000, 4000, "4000 - 4000"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, pdflayout.Format(pdflayout.Default(), tc.page, tc.total))
	}
}

func TestFormat_NilStyleUsesDefault(t *testing.T) {
	require.Equal(t, "2 - 5", pdflayout.Format(nil, 2, 5))
}

func TestFormat_Roman(t *testing.T) {
	style := pdflayout.Roman("Page %s of %s")

	require.Equal(t, "Page I of III", pdflayout.Format(style, 1, 3))
	require.Equal(t, "Page XIV of MCMXCIV", pdflayout.Format(style, 14, 1994))
	// Page after total is still substituted in marker order.
	require.Equal(t, "Page X of II", pdflayout.Format(style, 10, 2))
}

func TestFormat_RomanOutOfRangeRendersEmpty(t *testing.T) {
	style := pdflayout.Roman("%s/%s")

	require.Equal(t, "/V", pdflayout.Format(style, 0, 5))
	require.Equal(t, "I/", pdflayout.Format(style, 1, 4000))
	require.Equal(t, "/", pdflayout.Format(style, -1, 5000))
}

func TestFormat_RomanPartialTemplate(t *testing.T) {
	require.Equal(t, "Page IV", pdflayout.Format(pdflayout.Roman("Page %s"), 4, 9))
	require.Equal(t, "Pages", pdflayout.Format(pdflayout.Roman("Pages"), 4, 9))
}

func TestFormat_CustomNumberFormat(t *testing.T) {
	formatter := pdflayout.NumberFormatterFunc(func(n int) (string, error) {
		return fmt.Sprintf("#%d", n), nil
	})
	style := pdflayout.CustomNumberFormat("%s of %s", formatter)

	require.Equal(t, "#3 of #10", pdflayout.Format(style, 3, 10))
}

func TestFormat_CustomNumberFormatFailureUsesSentinel(t *testing.T) {
	failOdd := pdflayout.NumberFormatterFunc(func(n int) (string, error) {
		if n%2 == 1 {
			return "", errors.New("odd numbers unsupported")
		}
		return fmt.Sprintf("%d", n), nil
	})
	style := pdflayout.CustomNumberFormat("%s - %s", failOdd)

	require.Equal(t, "Formatting error! - 10", pdflayout.Format(style, 3, 10))
	require.Equal(t, "4 - Formatting error!", pdflayout.Format(style, 4, 7))
	require.Equal(t, "Formatting error! - Formatting error!", pdflayout.Format(style, 1, 7))
}

func TestFormat_CustomNumberFormatNilFormatter(t *testing.T) {
	style := pdflayout.CustomNumberFormat("%s|%s", nil)
	require.Equal(t, pdflayout.FormattingErrorSentinel+"|"+pdflayout.FormattingErrorSentinel, style.Format(1, 2))
}

func TestFormat_CustomNumberFormatCallsFormatterOncePerValue(t *testing.T) {
	var calls []int
	formatter := pdflayout.NumberFormatterFunc(func(n int) (string, error) {
		calls = append(calls, n)
		return "x", nil
	})

	pdflayout.Format(pdflayout.CustomNumberFormat("%s %s", formatter), 6, 8)
	require.Equal(t, []int{6, 8}, calls)
}

func TestFormat_CustomClosure(t *testing.T) {
	style := pdflayout.CustomClosure(func(page, total int) string {
		return fmt.Sprintf("P%d/T%d", page, total)
	})

	require.Equal(t, "P3/T10", pdflayout.Format(style, 3, 10))
}

func TestFormat_CustomClosurePanicPropagates(t *testing.T) {
	style := pdflayout.CustomClosure(func(page, total int) string {
		panic("closure failed")
	})

	require.PanicsWithValue(t, "closure failed", func() {
		pdflayout.Format(style, 1, 1)
	})
}

func TestFormat_NilClosureUsesDefault(t *testing.T) {
	require.Equal(t, "1 - 2", pdflayout.Format(pdflayout.CustomClosure(nil), 1, 2))
}

func TestPaginationStyle_String(t *testing.T) {
	closure := func(page, total int) string { return "" }

	cases := []struct {
		style pdflayout.PaginationStyle
		want  string
	}{
		{pdflayout.Default(), "Default"},
		{pdflayout.Roman("%s of %s"), "Roman(%s of %s)"},
		{pdflayout.CustomNumberFormat("Page %s", pdflayout.RomanNumberFormatter{}), "CustomNumberFormat(Page %s)"},
		{pdflayout.CustomClosure(closure), "CustomClosure"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.style.String())
		assert.Equal(t, tc.want, tc.style.String(), "tag must be stable across calls")
	}
}

func TestFormat_ConcurrentUse(t *testing.T) {
	styles := []pdflayout.PaginationStyle{
		pdflayout.Default(),
		pdflayout.Roman("%s/%s"),
		pdflayout.CustomNumberFormat("%s/%s", pdflayout.RomanNumberFormatter{Lowercase: true}),
		pdflayout.CustomClosure(func(page, total int) string { return fmt.Sprint(page * total) }),
	}
	want := []string{"7 - 9", "VII/IX", "vii/ix", "63"}

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for _, style := range styles {
				results[g] = append(results[g], pdflayout.Format(style, 7, 9))
			}
		}(g)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
