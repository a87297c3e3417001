package svg

import (
	"fmt"
	"strconv"

	"github.com/kpango/glg"
	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// Path is an SVG XML path element
type Path struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	Style           string `xml:"style,attr"`
	TransformString string `xml:"transform,attr"`
	properties      map[string]string
	StrokeWidth     float64 `xml:"stroke-width,attr"`
	Fill            *string `xml:"fill,attr"`
	Stroke          string  `xml:"stroke,attr"`
	group           *Group
}

// commandKind records which kind of instruction was emitted last. Only
// the cubic kind matters: shorthand curves reflect the previous control
// point when, and only when, the previous command drew a cubic.
type commandKind int

const (
	cmdNone commandKind = iota
	cmdMove
	cmdLine
	cmdCubic
	cmdClose
)

// pathDescriptionParser interprets one path description. It owns the
// interpreter state: the current point, the kind of the last emitted
// command and the last cubic control point. A fresh instance is created
// per path so no state leaks between elements.
type pathDescriptionParser struct {
	lex       gl.Lexer
	x, y      float64
	lastCmd   commandKind
	lastCtrl  Tuple
	transform mt.Transform
	sink      InstructionSink
}

func newPathDParse(sink InstructionSink) *pathDescriptionParser {
	pdp := &pathDescriptionParser{sink: sink}
	pdp.transform = mt.Identity()
	return pdp
}

// ParseDrawingInstructions interprets the path description and style
// attributes and writes one instruction per command (or per repeated
// coordinate group of a multi-point command) to sink, finishing with a
// Paint instruction. The first error other than an unsupported command
// aborts the path.
func (p *Path) ParseDrawingInstructions(sink InstructionSink) error {
	p.parseStyle()

	pdp := newPathDParse(sink)
	if p.group == nil {
		p.group = new(Group)
		temp := mt.Identity()
		p.group.Transform = &temp
	}
	if p.group.Owner == nil {
		p.group.Owner = &Svg{scale: 1}
	}
	if p.StrokeWidth == 0 {
		p.StrokeWidth = 1
	}

	pathTransform := mt.Identity()
	if p.TransformString != "" {
		pt, err := parseTransform(p.TransformString)
		if err == nil {
			pathTransform = pt
		}
	}
	if p.group.Transform != nil {
		pdp.transform = mt.MultiplyTransforms(pdp.transform, *p.group.Transform)
	}
	pdp.transform = mt.MultiplyTransforms(pdp.transform, pathTransform)

	l, _ := gl.Lex(fmt.Sprint(p.ID), p.D)
	pdp.lex = *l

	for {
		i := pdp.lex.NextItem()
		switch {
		case i.Type == gl.ItemError:
			return fmt.Errorf("path %q: %w: %s", p.ID, ErrMalformedNumber, i.Value)
		case i.Type == gl.ItemEOS:
			scaledStrokeWidth := p.StrokeWidth * p.group.Owner.scale
			return sink.Write(&DrawingInstruction{
				Kind:        PaintInstruction,
				StrokeWidth: &scaledStrokeWidth,
				Stroke:      &p.Stroke,
				Fill:        p.Fill,
			})
		case i.Type == gl.ItemLetter:
			if err := pdp.parseCommand(i); err != nil {
				return fmt.Errorf("path %q: %w", p.ID, err)
			}
		}
	}
}

// parseCommand dispatches a letter item. The lexer folds a run of
// adjacent letters into one item, so each character is dispatched on its
// own; the command arguments follow the whole run.
func (pdp *pathDescriptionParser) parseCommand(i gl.Item) error {
	for _, r := range i.Value {
		if err := pdp.parseCommandLetter(string(r)); err != nil {
			return err
		}
	}
	return nil
}

func (pdp *pathDescriptionParser) parseCommandLetter(letter string) error {
	var err error

	switch letter {
	case "M":
		err = pdp.parseMoveToAbs()
	case "m":
		err = pdp.parseMoveToRel()
	case "L":
		err = pdp.parseLineToAbs()
	case "l":
		err = pdp.parseLineToRel()
	case "H":
		err = pdp.parseHLineToAbs()
	case "h":
		err = pdp.parseHLineToRel()
	case "V":
		err = pdp.parseVLineToAbs()
	case "v":
		err = pdp.parseVLineToRel()
	case "C":
		err = pdp.parseCurveToAbs()
	case "c":
		err = pdp.parseCurveToRel()
	case "S":
		err = pdp.parseSmoothCurveToAbs()
	case "s":
		err = pdp.parseSmoothCurveToRel()
	case "Q", "q", "T", "t", "A", "a":
		err = pdp.skipUnsupported(letter)
	case "z", "Z":
		err = pdp.parseClose()
	default:
		glg.Warnf("unrecognised path command %q, ignoring", letter)
	}

	return err
}

// moveTo, lineTo, cubicTo and closePath are the absolute primitives every
// other command resolves into. They are the only places interpreter state
// is mutated.

func (pdp *pathDescriptionParser) moveTo(t Tuple) error {
	pdp.x = t[0]
	pdp.y = t[1]
	pdp.lastCmd = cmdMove

	x, y := pdp.transform.Apply(pdp.x, pdp.y)
	return pdp.sink.Write(&DrawingInstruction{Kind: MoveInstruction, M: &Tuple{x, y}})
}

func (pdp *pathDescriptionParser) lineTo(t Tuple) error {
	pdp.x = t[0]
	pdp.y = t[1]
	pdp.lastCmd = cmdLine

	x, y := pdp.transform.Apply(pdp.x, pdp.y)
	return pdp.sink.Write(&DrawingInstruction{Kind: LineInstruction, M: &Tuple{x, y}})
}

func (pdp *pathDescriptionParser) cubicTo(c1, c2, end Tuple) error {
	pdp.x = end[0]
	pdp.y = end[1]
	pdp.lastCmd = cmdCubic
	pdp.lastCtrl = c2

	c1x, c1y := pdp.transform.Apply(c1[0], c1[1])
	c2x, c2y := pdp.transform.Apply(c2[0], c2[1])
	tx, ty := pdp.transform.Apply(end[0], end[1])
	return pdp.sink.Write(&DrawingInstruction{
		Kind: CurveInstruction,
		C1:   &Tuple{c1x, c1y},
		C2:   &Tuple{c2x, c2y},
		T:    &Tuple{tx, ty},
	})
}

// closePath leaves the current point where it is: relative commands after
// a close resolve against the pre-close point, not the subpath start.
func (pdp *pathDescriptionParser) closePath() error {
	pdp.lastCmd = cmdClose
	return pdp.sink.Write(&DrawingInstruction{Kind: CloseInstruction})
}

func (pdp *pathDescriptionParser) parseMoveToAbs() error {
	tuples, err := parseTuples(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing MoveToAbs: %w", err)
	}
	if len(tuples) == 0 {
		return fmt.Errorf("%w: M expects at least one coordinate pair", ErrArityMismatch)
	}

	for _, t := range tuples {
		if err := pdp.moveTo(t); err != nil {
			return err
		}
	}

	return nil
}

func (pdp *pathDescriptionParser) parseMoveToRel() error {
	tuples, err := parseTuples(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing MoveToRel: %w", err)
	}
	if len(tuples) == 0 {
		return fmt.Errorf("%w: m expects at least one coordinate pair", ErrArityMismatch)
	}

	for _, t := range tuples {
		if err := pdp.moveTo(Tuple{pdp.x + t[0], pdp.y + t[1]}); err != nil {
			return err
		}
	}

	return nil
}

func (pdp *pathDescriptionParser) parseLineToAbs() error {
	tuples, err := parseTuples(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing LineToAbs: %w", err)
	}
	if len(tuples) == 0 {
		return fmt.Errorf("%w: L expects at least one coordinate pair", ErrArityMismatch)
	}

	for _, t := range tuples {
		if err := pdp.lineTo(t); err != nil {
			return err
		}
	}

	return nil
}

// parseLineToRel resolves every pair against the point the previous pair
// produced, not the point the command started from.
func (pdp *pathDescriptionParser) parseLineToRel() error {
	tuples, err := parseTuples(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing LineToRel: %w", err)
	}
	if len(tuples) == 0 {
		return fmt.Errorf("%w: l expects at least one coordinate pair", ErrArityMismatch)
	}

	for _, t := range tuples {
		if err := pdp.lineTo(Tuple{pdp.x + t[0], pdp.y + t[1]}); err != nil {
			return err
		}
	}

	return nil
}

func (pdp *pathDescriptionParser) parseHLineToAbs() error {
	ns, err := parseNumbers(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing HLineToAbs: %w", err)
	}
	if len(ns) == 0 {
		return fmt.Errorf("%w: H expects at least one x coordinate", ErrArityMismatch)
	}

	for _, n := range ns {
		if err := pdp.lineTo(Tuple{n, pdp.y}); err != nil {
			return err
		}
	}

	return nil
}

func (pdp *pathDescriptionParser) parseHLineToRel() error {
	ns, err := parseNumbers(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing HLineToRel: %w", err)
	}
	if len(ns) == 0 {
		return fmt.Errorf("%w: h expects at least one x offset", ErrArityMismatch)
	}

	for _, n := range ns {
		if err := pdp.lineTo(Tuple{pdp.x + n, pdp.y}); err != nil {
			return err
		}
	}

	return nil
}

func (pdp *pathDescriptionParser) parseVLineToAbs() error {
	ns, err := parseNumbers(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing VLineToAbs: %w", err)
	}
	if len(ns) == 0 {
		return fmt.Errorf("%w: V expects at least one y coordinate", ErrArityMismatch)
	}

	for _, n := range ns {
		if err := pdp.lineTo(Tuple{pdp.x, n}); err != nil {
			return err
		}
	}

	return nil
}

func (pdp *pathDescriptionParser) parseVLineToRel() error {
	ns, err := parseNumbers(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing VLineToRel: %w", err)
	}
	if len(ns) == 0 {
		return fmt.Errorf("%w: v expects at least one y offset", ErrArityMismatch)
	}

	for _, n := range ns {
		if err := pdp.lineTo(Tuple{pdp.x, pdp.y + n}); err != nil {
			return err
		}
	}

	return nil
}

func (pdp *pathDescriptionParser) parseCurveToAbs() error {
	tuples, err := parseTuples(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing CurveToAbs: %w", err)
	}
	if len(tuples) == 0 || len(tuples)%3 != 0 {
		return fmt.Errorf("%w: C expects groups of three coordinate pairs, got %d", ErrArityMismatch, len(tuples))
	}

	for j := 0; j < len(tuples)/3; j++ {
		if err := pdp.cubicTo(tuples[j*3], tuples[j*3+1], tuples[j*3+2]); err != nil {
			return err
		}
	}

	return nil
}

func (pdp *pathDescriptionParser) parseCurveToRel() error {
	tuples, err := parseTuples(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing CurveToRel: %w", err)
	}
	if len(tuples) == 0 || len(tuples)%3 != 0 {
		return fmt.Errorf("%w: c expects groups of three coordinate pairs, got %d", ErrArityMismatch, len(tuples))
	}

	for j := 0; j < len(tuples)/3; j++ {
		base := Tuple{pdp.x, pdp.y}
		if err := pdp.cubicTo(
			base.Add(tuples[j*3]),
			base.Add(tuples[j*3+1]),
			base.Add(tuples[j*3+2]),
		); err != nil {
			return err
		}
	}

	return nil
}

// reflectedControl yields the implied first control point of a shorthand
// curve: the previous cubic's second control point mirrored through the
// current point. Without a preceding cubic the reflection degenerates to
// the current point itself.
func (pdp *pathDescriptionParser) reflectedControl() Tuple {
	current := Tuple{pdp.x, pdp.y}
	if pdp.lastCmd != cmdCubic {
		return current
	}
	return current.Add(current.Sub(pdp.lastCtrl))
}

func (pdp *pathDescriptionParser) parseSmoothCurveToAbs() error {
	tuples, err := parseTuples(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing SmoothCurveToAbs: %w", err)
	}
	if len(tuples) == 0 || len(tuples)%2 != 0 {
		return fmt.Errorf("%w: S expects groups of two coordinate pairs, got %d", ErrArityMismatch, len(tuples))
	}

	for j := 0; j < len(tuples)/2; j++ {
		if err := pdp.cubicTo(pdp.reflectedControl(), tuples[j*2], tuples[j*2+1]); err != nil {
			return err
		}
	}

	return nil
}

func (pdp *pathDescriptionParser) parseSmoothCurveToRel() error {
	tuples, err := parseTuples(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing SmoothCurveToRel: %w", err)
	}
	if len(tuples) == 0 || len(tuples)%2 != 0 {
		return fmt.Errorf("%w: s expects groups of two coordinate pairs, got %d", ErrArityMismatch, len(tuples))
	}

	for j := 0; j < len(tuples)/2; j++ {
		base := Tuple{pdp.x, pdp.y}
		if err := pdp.cubicTo(
			pdp.reflectedControl(),
			base.Add(tuples[j*2]),
			base.Add(tuples[j*2+1]),
		); err != nil {
			return err
		}
	}

	return nil
}

// skipUnsupported drains the arguments of a recognised but unimplemented
// command (arcs, quadratics and their shorthands) so interpretation can
// continue with the next command. No state is mutated and nothing is
// emitted.
func (pdp *pathDescriptionParser) skipUnsupported(letter string) error {
	ns, err := parseNumbers(&pdp.lex)
	if err != nil {
		return fmt.Errorf("parsing arguments of unsupported %q: %w", letter, err)
	}

	glg.Warnf("path command %q is not supported, skipping %d arguments", letter, len(ns))
	return nil
}

func (pdp *pathDescriptionParser) parseClose() error {
	pdp.lex.ConsumeWhiteSpace()
	return pdp.closePath()
}

func (p *Path) parseStyle() {
	p.properties = splitStyle(p.Style)
	for key, val := range p.properties {
		switch key {
		case "stroke-width":
			sw, err := strconv.ParseFloat(val, 64)
			if err == nil {
				p.StrokeWidth = sw
			}
		}
	}
}
