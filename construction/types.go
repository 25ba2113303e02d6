package construction

import "github.com/osuushi/collinear/geom"

// Every point in the construction is named by a single capital letter, the
// same letters used in the classical figure.
type Label byte

const (
	A Label = 'A'
	B Label = 'B'
	C Label = 'C'
	D Label = 'D'
	E Label = 'E'
	F Label = 'F'
	P Label = 'P'
	Q Label = 'Q'
	R Label = 'R'
	S Label = 'S'
)

func (l Label) String() string {
	return string(rune(l))
}

// Vertex labels in hit-test and draw order.
var Vertices = [3]Label{A, B, C}

type Triangle struct {
	A, B, C geom.Point
}

// Basic drops perpendiculars from D onto AB, BE and AC. Extended adds the
// third altitude CF and the foot R on it.
type Variant int

const (
	Basic Variant = iota
	Extended
)

func (v Variant) String() string {
	if v == Extended {
		return "extended"
	}
	return "basic"
}

type Tier int

const (
	// An altitude dropped from a vertex onto the opposite side.
	Primary Tier = iota
	// A perpendicular dropped from the altitude foot D.
	Secondary
)
