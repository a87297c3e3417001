package svg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type PathTest struct {
	Description string
	Svg         string
	Kinds       []InstructionType
	XCoords     []float64
	YCoords     []float64
}

var tests = []PathTest{
	{
		"absolute lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 L100.000 0.000 100.000 100.000 L0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, PaintInstruction},
		[]float64{0, 100, 100, 0, 0},
		[]float64{0, 0, 100, 100, 0},
	},
	{
		"relative lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 l100.000 0.000 100.000 100.000 l0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, PaintInstruction},
		[]float64{0, 100, 200, 200, 0},
		[]float64{0, 0, 100, 200, 0},
	},
	{
		"relative h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 h100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 100, 150, 0},
		[]float64{0, 0, 0, 0},
	},
	{
		"absolute h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 H100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 100, 50, 0},
		[]float64{0, 0, 0, 0},
	},
	{
		"relative v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 v100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 0, 0, 0},
		[]float64{0, 100, 150, 0},
	},
	{
		"absolute v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 V100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 0, 0, 0},
		[]float64{0, 100, 50, 0},
	},
	{
		"multi-pair lineto with close",
		`<svg viewBox="0 0 100 100"><path d="M0,0 L10,0 10,10 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, CloseInstruction, PaintInstruction},
		[]float64{0, 10, 10, 0},
		[]float64{0, 0, 10, 0},
	},
	{
		"cubic followed by shorthand",
		`<svg viewBox="0 0 100 100"><path d="M0,0 C0,10 10,10 10,0 S20,-10 20,0" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, CurveInstruction, CurveInstruction, PaintInstruction},
		[]float64{0, 10, 20, 0},
		[]float64{0, 0, 0, 0},
	},
	{
		"shorthand without preceding cubic",
		`<svg viewBox="0 0 100 100"><path d="M5,5 S10,0 10,5" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, CurveInstruction, PaintInstruction},
		[]float64{5, 10, 0},
		[]float64{5, 5, 0},
	},
	{
		"unsupported arc is skipped",
		`<svg viewBox="0 0 100 100"><path d="M0,0 A5,5 0 0 1 10,10" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, PaintInstruction},
		[]float64{0, 0},
		[]float64{0, 0},
	},
	{
		"unsupported quadratic between supported commands",
		`<svg viewBox="0 0 100 100"><path d="M0,0 Q5,5 10,0 L10,10" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 10, 0},
		[]float64{0, 10, 0},
	},
	{
		"relative lineto after close resolves against pre-close point",
		`<svg viewBox="0 0 100 100"><path d="M10,10 L20,10 Z l10,0" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, CloseInstruction, LineInstruction, PaintInstruction},
		[]float64{10, 20, 0, 30, 0},
		[]float64{10, 10, 0, 10, 0},
	},
	{
		"contiguous close letters dispatch one at a time",
		`<svg viewBox="0 0 100 100"><path d="M0,0 L5,0 Zz" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, CloseInstruction, CloseInstruction, PaintInstruction},
		[]float64{0, 5, 0, 0, 0},
		[]float64{0, 0, 0, 0, 0},
	},
	{
		"letter run ending in a command with arguments",
		`<svg viewBox="0 0 100 100"><path d="M10,10 L20,10 zl5,0" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, CloseInstruction, LineInstruction, PaintInstruction},
		[]float64{10, 20, 0, 25, 0},
		[]float64{10, 10, 0, 10, 0},
	},
}

// target extracts the coordinate an instruction moves the pen to: M for
// moves and lines, T for curves.
func target(ins *DrawingInstruction) *Tuple {
	if ins.M != nil {
		return ins.M
	}
	return ins.T
}

func TestParsePathList(t *testing.T) {
	for _, test := range tests {
		doc, err := ParseSvg(test.Svg, "test", 0)
		require.NoError(t, err)

		strux, err := doc.Instructions()
		require.NoError(t, err, test.Description)

		if len(strux) != len(test.Kinds) {
			t.Fatalf("expected %d instructions for test %s, but received %d", len(test.Kinds), test.Description, len(strux))
		}

		for i, kind := range test.Kinds {
			if strux[i].Kind != kind {
				t.Fatalf("expected instruction %d for test %s to be %d, but was %d", i, test.Description, kind, strux[i].Kind)
			}
		}

		for i, x := range test.XCoords {
			p := target(strux[i])
			if p == nil {
				continue
			}

			if p[0] != x {
				t.Fatalf("expected X coordinate %d for test %s to be %f, but was %f", i, test.Description, x, p[0])
			}
		}

		for i, y := range test.YCoords {
			p := target(strux[i])
			if p == nil {
				continue
			}

			if p[1] != y {
				t.Fatalf("expected Y coordinate %d for test %s to be %f, but was %f", i, test.Description, y, p[1])
			}
		}
	}
}

func TestShorthandReflectsPriorControl(t *testing.T) {
	p := &Path{D: "M0,0 C0,10 10,10 10,0 S20,-10 20,0"}

	var list InstructionList
	require.NoError(t, p.ParseDrawingInstructions(&list))
	require.Len(t, list.Instructions, 4)

	shorthand := list.Instructions[2]
	require.Equal(t, CurveInstruction, shorthand.Kind)

	// current point (10,0), prior control2 (10,10): reflection is 2C-K
	require.Equal(t, Tuple{10, -10}, *shorthand.C1)
	require.Equal(t, Tuple{20, -10}, *shorthand.C2)
	require.Equal(t, Tuple{20, 0}, *shorthand.T)
}

func TestShorthandWithoutCubicDegenerates(t *testing.T) {
	p := &Path{D: "M5,5 S10,0 10,5"}

	var list InstructionList
	require.NoError(t, p.ParseDrawingInstructions(&list))
	require.Len(t, list.Instructions, 3)

	shorthand := list.Instructions[1]
	require.Equal(t, CurveInstruction, shorthand.Kind)
	require.Equal(t, Tuple{5, 5}, *shorthand.C1)
}

// A shorthand separated from the last cubic by a non-curve command must
// not reflect the stale control point.
func TestShorthandAfterNonCubicDegenerates(t *testing.T) {
	p := &Path{D: "M0,0 C0,10 10,10 10,0 L20,0 S30,-10 30,0"}

	var list InstructionList
	require.NoError(t, p.ParseDrawingInstructions(&list))
	require.Len(t, list.Instructions, 5)

	shorthand := list.Instructions[3]
	require.Equal(t, CurveInstruction, shorthand.Kind)
	require.Equal(t, Tuple{20, 0}, *shorthand.C1)
}

func TestRelativeMatchesAbsolute(t *testing.T) {
	relative := &Path{D: "m3,4 l7,6 10,0 h-5 v2 c1,1 2,2 3,0 s2,-2 3,0"}
	absolute := &Path{D: "M3,4 L10,10 20,10 H15 V12 C16,13 17,14 18,12 S20,10 21,12"}

	var relList, absList InstructionList
	require.NoError(t, relative.ParseDrawingInstructions(&relList))
	require.NoError(t, absolute.ParseDrawingInstructions(&absList))

	if diff := cmp.Diff(absList.Instructions, relList.Instructions); diff != "" {
		t.Errorf("relative commands diverged from absolute equivalents (-abs +rel):\n%s", diff)
	}
}

func TestArityMismatch(t *testing.T) {
	for _, d := range []string{
		"M0,0 H",
		"M0,0 V",
		"M",
		"M0,0 L5",
		"M0,0 C1,1 2,2",
		"M0,0 S1,1",
	} {
		p := &Path{D: d}

		var list InstructionList
		err := p.ParseDrawingInstructions(&list)
		require.ErrorIs(t, err, ErrArityMismatch, "d=%q", d)
	}
}

// An aborted path must not leave a partially painted element: no Paint
// instruction is emitted after an error.
func TestAbortedPathEmitsNoPaint(t *testing.T) {
	p := &Path{D: "M0,0 L10,0 H"}

	var list InstructionList
	err := p.ParseDrawingInstructions(&list)
	require.Error(t, err)

	for _, ins := range list.Instructions {
		require.NotEqual(t, PaintInstruction, ins.Kind)
	}
}

func TestFreshStatePerPath(t *testing.T) {
	first := &Path{D: "M50,50 C50,60 60,60 60,50"}
	var list InstructionList
	require.NoError(t, first.ParseDrawingInstructions(&list))

	// a second path starts at (0,0) with no remembered control point
	second := &Path{D: "m10,0 S20,10 20,0"}
	var list2 InstructionList
	require.NoError(t, second.ParseDrawingInstructions(&list2))

	require.Equal(t, Tuple{10, 0}, *list2.Instructions[0].M)
	require.Equal(t, Tuple{10, 0}, *list2.Instructions[1].C1)
}
