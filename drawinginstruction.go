package svg

// InstructionType tells our path drawing library which function it has
// to call
type InstructionType int

// These are instruction types that we use with our path drawing library
const (
	PathInstruction InstructionType = iota
	MoveInstruction
	CircleInstruction
	CurveInstruction
	LineInstruction
	HLineInstruction
	RectInstruction
	CloseInstruction
	PaintInstruction
)

// DrawingInstruction contains enough information that a simple drawing
// library can draw the shapes contained in an SVG file.
//
// M is the target point of Move and Line instructions and the top-left
// corner of Rect instructions. C1, C2 and T carry the control points and
// endpoint of Curve instructions. Size holds the width and height of Rect
// instructions. The stroke fields are only set on Paint instructions.
type DrawingInstruction struct {
	Kind InstructionType
	M    *Tuple
	C1   *Tuple
	C2   *Tuple
	T    *Tuple
	Size *Tuple

	StrokeWidth *float64
	Stroke      *string
	Fill        *string
}

// InstructionSink consumes drawing instructions in emission order.
// Implementations must not reorder them; replaying the sequence in the
// order received reconstructs the path.
type InstructionSink interface {
	Write(ins *DrawingInstruction) error
}

// InstructionList is an InstructionSink that collects instructions into an
// ordered slice.
type InstructionList struct {
	Instructions []*DrawingInstruction
}

// Write implements the InstructionSink interface.
func (l *InstructionList) Write(ins *DrawingInstruction) error {
	l.Instructions = append(l.Instructions, ins)
	return nil
}
