package svg

import "github.com/kpango/glg"

// Circle is an SVG circle element
type Circle struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	Cx        string `xml:"cx,attr"`
	Cy        string `xml:"cy,attr"`
	Radius    string `xml:"r,attr"`

	group *Group
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. Circles are recognised but not lowered yet; the element is
// reported and skipped so the rest of the document still converts.
func (c *Circle) ParseDrawingInstructions(sink InstructionSink) error {
	glg.Warnf("circle %q is not supported, skipping", c.ID)
	return nil
}
