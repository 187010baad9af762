package pdflayout

// Rect represents a bounding box in page coordinates, with Y growing downwards.
type Rect struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Alignment represents horizontal text alignment.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
	AlignmentJustified
)

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignmentLeft:
		return "left"
	case AlignmentCenter:
		return "center"
	case AlignmentRight:
		return "right"
	case AlignmentJustified:
		return "justified"
	}
	return "unknown"
}

// VerticalAlignment represents vertical placement inside a box.
type VerticalAlignment int

const (
	VerticalAlignmentTop VerticalAlignment = iota
	VerticalAlignmentMiddle
	VerticalAlignmentBottom
)

// String returns the lowercase name of the vertical alignment.
func (v VerticalAlignment) String() string {
	switch v {
	case VerticalAlignmentTop:
		return "top"
	case VerticalAlignmentMiddle:
		return "middle"
	case VerticalAlignmentBottom:
		return "bottom"
	}
	return "unknown"
}
