package svg

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// Polygon is an SVG polygon or polyline element: a set of connected line
// segments given as a whitespace-separated list of "x,y" pairs.
type Polygon struct {
	ID        string  `xml:"id,attr"`
	Transform string  `xml:"transform,attr"`
	Style     string  `xml:"style,attr"`
	Points    string  `xml:"points,attr"`
	Fill      *string `xml:"fill,attr"`
	Stroke    string  `xml:"stroke,attr"`

	group *Group
}

// ParseDrawingInstructions lowers the point list through the interpreter's
// move/line entry points: a Move to the first point, a Line to each
// following point and a final Paint. The outline is not closed; a
// consumer that wants a closed shape draws the closing edge itself.
func (pg *Polygon) ParseDrawingInstructions(sink InstructionSink) error {
	l, _ := gl.Lex(fmt.Sprint(pg.ID), pg.Points)

	tuples, err := parseTuples(l)
	if err != nil {
		return fmt.Errorf("polygon %q: %w", pg.ID, err)
	}
	if len(tuples) == 0 {
		return fmt.Errorf("%w: polygon %q", ErrEmptyPolygon, pg.ID)
	}

	pdp := newPathDParse(sink)
	if pg.group != nil && pg.group.Transform != nil {
		pdp.transform = mt.MultiplyTransforms(pdp.transform, *pg.group.Transform)
	}
	if pg.Transform != "" {
		if pt, err := parseTransform(pg.Transform); err == nil {
			pdp.transform = mt.MultiplyTransforms(pdp.transform, pt)
		}
	}

	if err := pdp.moveTo(tuples[0]); err != nil {
		return err
	}
	for _, t := range tuples[1:] {
		if err := pdp.lineTo(t); err != nil {
			return err
		}
	}

	return sink.Write(&DrawingInstruction{
		Kind:   PaintInstruction,
		Stroke: &pg.Stroke,
		Fill:   pg.Fill,
	})
}
