package component

import (
	"github.com/gdamore/tcell/v2"
)

// ShapeKind selects how an object is drawn
type ShapeKind uint8

const (
	ShapeCylinder ShapeKind = iota // Feature rods
	ShapeAxis                      // Chromosome backbone
)

// VisualComponent describes how an object is drawn
type VisualComponent struct {
	Shape  ShapeKind
	Length float64 // Extent along X in world units
	Radius float64
	Color  tcell.Color
	Glyph  rune
}
