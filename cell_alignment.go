package pdflayout

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CellAlignment places content inside a table cell: one of the four corners,
// the middle of an edge, or the center.
type CellAlignment int

const (
	TopLeft CellAlignment = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)

// ErrUnknownCellAlignment is returned by ParseCellAlignment for unrecognised names.
var ErrUnknownCellAlignment = errors.New("unknown cell alignment")

var cellAlignmentNames = [...]string{
	TopLeft:     "TopLeft",
	Top:         "Top",
	TopRight:    "TopRight",
	Left:        "Left",
	Center:      "Center",
	Right:       "Right",
	BottomLeft:  "BottomLeft",
	Bottom:      "Bottom",
	BottomRight: "BottomRight",
}

// CellAlignments lists every alignment in declaration order.
func CellAlignments() []CellAlignment {
	return []CellAlignment{
		TopLeft, Top, TopRight,
		Left, Center, Right,
		BottomLeft, Bottom, BottomRight,
	}
}

// IsValid reports whether a is one of the nine declared alignments.
func (a CellAlignment) IsValid() bool {
	return a >= TopLeft && a <= BottomRight
}

// IsTop reports whether content sits against the top edge.
func (a CellAlignment) IsTop() bool {
	switch a {
	case TopLeft, Top, TopRight:
		return true
	}
	return false
}

// IsBottom reports whether content sits against the bottom edge.
func (a CellAlignment) IsBottom() bool {
	switch a {
	case BottomLeft, Bottom, BottomRight:
		return true
	}
	return false
}

// IsLeft reports whether content sits against the left edge.
func (a CellAlignment) IsLeft() bool {
	switch a {
	case TopLeft, Left, BottomLeft:
		return true
	}
	return false
}

// IsRight reports whether content sits against the right edge.
func (a CellAlignment) IsRight() bool {
	switch a {
	case TopRight, Right, BottomRight:
		return true
	}
	return false
}

// Code returns the stable numeric identifier of the alignment.
func (a CellAlignment) Code() int {
	return int(a)
}

func (a CellAlignment) String() string {
	if !a.IsValid() {
		return "CellAlignment(" + strconv.Itoa(int(a)) + ")"
	}
	return cellAlignmentNames[a]
}

// Horizontal returns the horizontal component of the alignment.
func (a CellAlignment) Horizontal() Alignment {
	switch {
	case a.IsLeft():
		return AlignmentLeft
	case a.IsRight():
		return AlignmentRight
	}
	return AlignmentCenter
}

// Vertical returns the vertical component of the alignment.
func (a CellAlignment) Vertical() VerticalAlignment {
	switch {
	case a.IsTop():
		return VerticalAlignmentTop
	case a.IsBottom():
		return VerticalAlignmentBottom
	}
	return VerticalAlignmentMiddle
}

// Offset returns the top-left position of content of the given size placed
// inside cell. Content that does not fit is pinned to the cell origin on the
// overflowing axis.
func (a CellAlignment) Offset(cell Rect, width, height float64) (x, y float64) {
	freeX := clamp(cell.Width()-width, 0, cell.Width())
	freeY := clamp(cell.Height()-height, 0, cell.Height())

	x = cell.X0
	switch {
	case a.IsLeft():
	case a.IsRight():
		x += freeX
	default:
		x += freeX / 2
	}

	y = cell.Y0
	switch {
	case a.IsTop():
	case a.IsBottom():
		y += freeY
	default:
		y += freeY / 2
	}

	return x, y
}

// ParseCellAlignment looks up an alignment by name. Matching ignores case,
// dashes and underscores, so "top-left", "top_left" and "TopLeft" are equal.
func ParseCellAlignment(s string) (CellAlignment, error) {
	key := normalizeAlignmentName(s)
	for i, name := range cellAlignmentNames {
		if normalizeAlignmentName(name) == key {
			return CellAlignment(i), nil
		}
	}
	return TopLeft, errors.Wrapf(ErrUnknownCellAlignment, "%q", s)
}

func normalizeAlignmentName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
