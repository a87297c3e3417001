package svg

import (
	"fmt"
	"strconv"
)

// Rect is an SVG rect element
type Rect struct {
	ID        string  `xml:"id,attr"`
	Transform string  `xml:"transform,attr"`
	Style     string  `xml:"style,attr"`
	X         string  `xml:"x,attr"`
	Y         string  `xml:"y,attr"`
	Width     string  `xml:"width,attr"`
	Height    string  `xml:"height,attr"`
	Fill      *string `xml:"fill,attr"`
	Stroke    string  `xml:"stroke,attr"`

	group *Group
}

// ParseDrawingInstructions lowers the rectangle to a single axis-aligned
// Rect instruction followed by a Paint instruction. All four positional
// attributes are required; the interpreter state machine is never
// involved.
func (r *Rect) ParseDrawingInstructions(sink InstructionSink) error {
	x, err := r.attr("x", r.X)
	if err != nil {
		return err
	}
	y, err := r.attr("y", r.Y)
	if err != nil {
		return err
	}
	width, err := r.attr("width", r.Width)
	if err != nil {
		return err
	}
	height, err := r.attr("height", r.Height)
	if err != nil {
		return err
	}

	ins := &DrawingInstruction{
		Kind: RectInstruction,
		M:    &Tuple{x, y},
		Size: &Tuple{width, height},
	}
	if err := sink.Write(ins); err != nil {
		return err
	}

	return sink.Write(&DrawingInstruction{
		Kind:   PaintInstruction,
		Stroke: &r.Stroke,
		Fill:   r.Fill,
	})
}

func (r *Rect) attr(name, value string) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: rect %q has no %s", ErrMissingAttribute, r.ID, name)
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: rect %q: %s=%q is not a number", ErrMissingAttribute, r.ID, name, value)
	}
	return n, nil
}
