// Package gcode translates drawing instructions into G-code for pen
// plotters. The builder works in absolute positioning: every emitted
// coordinate is the instruction coordinate times a configurable scale.
package gcode

import (
	"fmt"
	"strings"

	"github.com/quillvec/svg"
)

// Builder accumulates G-code commands from a drawing instruction stream.
// It implements svg.InstructionSink.
//
// The pen position it tracks is a shadow of the interpreter's current
// point: it is updated only from the instructions the builder consumes,
// never computed independently, so the two copies cannot diverge. In
// particular a Close instruction lifts the pen but does not move it,
// matching the interpreter's close behaviour.
type Builder struct {
	commands []Command
	profile  *Profile
	scale    float64
	drawing  bool
	feedSet  bool
	comments bool
	current  svg.Tuple
}

// NewBuilder creates a Builder with the default profile, scale 1 and line
// comments enabled.
func NewBuilder() *Builder {
	return &Builder{
		profile:  DefaultProfile(),
		scale:    1,
		comments: true,
	}
}

// SetScale sets the instruction-space to machine-space scale factor.
func (b *Builder) SetScale(scale float64) *Builder {
	if scale > 0 {
		b.scale = scale
	}
	return b
}

// SetProfile selects the machine profile used for preamble, postamble,
// pen lift height and feed rate.
func (b *Builder) SetProfile(p *Profile) *Builder {
	if p != nil {
		b.profile = p
	}
	return b
}

// NoComments disables line comments in the rendered output.
func (b *Builder) NoComments() *Builder {
	b.comments = false
	return b
}

// Write implements the svg.InstructionSink interface.
func (b *Builder) Write(ins *svg.DrawingInstruction) error {
	switch ins.Kind {
	case svg.MoveInstruction:
		b.penUp()
		b.travel(*ins.M)
	case svg.LineInstruction:
		b.penDown()
		b.lineTo(*ins.M)
	case svg.CurveInstruction:
		b.penDown()
		b.curveTo(*ins.C1, *ins.C2, *ins.T)
	case svg.RectInstruction:
		b.rect(*ins.M, *ins.Size)
	case svg.CloseInstruction:
		b.Comment("close path")
		b.penUp()
	case svg.PaintInstruction:
		b.penUp()
		b.paint(ins)
	case svg.PathInstruction:
		b.Comment("begin path")
	default:
		b.Commentf("instruction kind %d has no G-code translation", ins.Kind)
	}

	return nil
}

// Current returns the shadow pen position in instruction space.
func (b *Builder) Current() svg.Tuple {
	return b.current
}

// Commands returns the accumulated commands in emission order.
func (b *Builder) Commands() []Command {
	return b.commands
}

// PushCommand appends raw commands to the output.
func (b *Builder) PushCommand(cmds ...Command) *Builder {
	b.commands = append(b.commands, cmds...)
	return b
}

// Comment writes a comment line.
func (b *Builder) Comment(comment string) *Builder {
	return b.PushCommand(Command{LineComment: comment})
}

func (b *Builder) Commentf(format string, args ...interface{}) *Builder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// String renders the preamble, the accumulated commands and the
// postamble.
func (b *Builder) String() string {
	var sb strings.Builder

	sb.WriteString(b.profile.Preamble)
	for _, cmd := range b.commands {
		line := cmd.String(b.comments)
		if line == "" {
			continue
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(b.profile.Postamble)

	return sb.String()
}

func (b *Builder) penUp() {
	if !b.drawing {
		return
	}
	b.PushCommand(Command{
		Code:        G0,
		Args:        []Arg{{"Z", b.profile.Lift}},
		LineComment: "pen up",
	})
	b.drawing = false
}

func (b *Builder) penDown() {
	if b.drawing {
		return
	}
	if !b.feedSet && b.profile.Feed > 0 {
		b.PushCommand(Command{
			Code:        G1,
			Args:        []Arg{{"F", b.profile.Feed}},
			LineComment: "drawing feed rate",
		})
		b.feedSet = true
	}
	b.PushCommand(Command{
		Code:        G0,
		Args:        []Arg{{"Z", 0}},
		LineComment: "pen down",
	})
	b.drawing = true
}

func (b *Builder) travel(p svg.Tuple) {
	b.PushCommand(Command{
		Code:        G0,
		Args:        []Arg{{"X", p[0] * b.scale}, {"Y", p[1] * b.scale}},
		LineComment: fmt.Sprintf("travel to %v", p),
	})
	b.current = p
}

func (b *Builder) lineTo(p svg.Tuple) {
	b.PushCommand(Command{
		Code:        G1,
		Args:        []Arg{{"X", p[0] * b.scale}, {"Y", p[1] * b.scale}},
		LineComment: fmt.Sprintf("line to %v", p),
	})
	b.current = p
}

// curveTo emits a cubic B-spline move. I/J are the first control point
// relative to the curve start, P/Q the second control point relative to
// the curve end, X/Y the absolute endpoint.
func (b *Builder) curveTo(c1, c2, end svg.Tuple) {
	c1Rel := c1.Sub(b.current)
	c2Rel := c2.Sub(end)
	b.PushCommand(Command{
		Code: G5,
		Args: []Arg{
			{"I", c1Rel[0] * b.scale},
			{"J", c1Rel[1] * b.scale},
			{"P", c2Rel[0] * b.scale},
			{"Q", c2Rel[1] * b.scale},
			{"X", end[0] * b.scale},
			{"Y", end[1] * b.scale},
		},
		LineComment: fmt.Sprintf("cubic to %v", end),
	})
	b.current = end
}

// rect draws the four edges of an axis-aligned rectangle and lifts the
// pen again, leaving it at the top-left corner.
func (b *Builder) rect(corner, size svg.Tuple) {
	b.Commentf("rect at %v size %v", corner, size)

	b.penUp()
	b.travel(corner)
	b.penDown()
	b.lineTo(svg.Tuple{corner[0] + size[0], corner[1]})
	b.lineTo(svg.Tuple{corner[0] + size[0], corner[1] + size[1]})
	b.lineTo(svg.Tuple{corner[0], corner[1] + size[1]})
	b.lineTo(corner)
	b.penUp()
}

func (b *Builder) paint(ins *svg.DrawingInstruction) {
	if ins.StrokeWidth != nil && ins.Stroke != nil {
		b.Commentf("paint stroke=%s width=%v", *ins.Stroke, *ins.StrokeWidth)
		return
	}
	b.Comment("paint")
}
