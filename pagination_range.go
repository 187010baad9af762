package pdflayout

import (
	"slices"

	"github.com/pkg/errors"
)

// ErrInvalidRange is returned by Pagination.Validate for unusable page ranges.
var ErrInvalidRange = errors.New("invalid pagination range")

// Pagination controls which pages of a document receive a label and how the
// label is rendered. Page numbers are 1-based.
type Pagination struct {
	// Style renders each label (default: Default())
	Style PaginationStyle

	// Start is the first labelled page. 0 means the first page.
	Start int

	// End is the last labelled page. 0 means the last page.
	End int

	// Hidden pages never receive a label, e.g. a cover page.
	Hidden []int
}

// PageLabel is the label rendered for a single page.
type PageLabel struct {
	Page int
	Text string
}

// DefaultPagination labels every page with the default style.
func DefaultPagination() Pagination {
	return Pagination{
		Style: Default(),
	}
}

// Validate checks that the range is well formed.
func (p Pagination) Validate() error {
	if p.Start < 0 || p.End < 0 {
		return errors.Wrapf(ErrInvalidRange, "negative bound (start %d, end %d)", p.Start, p.End)
	}
	if p.Start > 0 && p.End > 0 && p.Start > p.End {
		return errors.Wrapf(ErrInvalidRange, "start page %d is after end page %d", p.Start, p.End)
	}
	for _, h := range p.Hidden {
		if h < 1 {
			return errors.Wrapf(ErrInvalidRange, "hidden page %d must be >= 1", h)
		}
	}
	return nil
}

// Label returns the label for page out of total, and false when the page is
// outside the configured range or hidden.
func (p Pagination) Label(page, total int) (string, bool) {
	if !p.labels(page, total) {
		return "", false
	}
	return Format(p.Style, page, total), true
}

// Labels renders the label of every labelled page of a document with total
// pages, in page order.
func (p Pagination) Labels(total int) []PageLabel {
	if total <= 0 {
		return nil
	}

	labels := make([]PageLabel, 0, total)
	for page := 1; page <= total; page++ {
		if text, ok := p.Label(page, total); ok {
			labels = append(labels, PageLabel{Page: page, Text: text})
		}
	}
	return labels
}

func (p Pagination) labels(page, total int) bool {
	start := p.Start
	if start <= 0 {
		start = 1
	}
	end := p.End
	if end <= 0 {
		end = total
	}
	if page < start || page > end {
		return false
	}
	return !slices.Contains(p.Hidden, page)
}
