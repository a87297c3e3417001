package gcode

// Code represents a G-code (e.g. G0, G1, G5)
type Code string

// list of codes used by the builder. See https://marlinfw.org/docs/gcode/
const (
	// G0 is a rapid (non-drawing) move
	G0 Code = "G0"
	// G1 is a linear drawing move
	G1 Code = "G1"
	// G5 is a cubic B-spline move
	G5 Code = "G5"
	// G21 selects millimeter units
	G21 Code = "G21"
	// G90 selects absolute positioning
	G90 Code = "G90"

	CodeTravel      = G0
	CodeLine        = G1
	CodeBezierCubic = G5
)
