package svg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPolygonLowering(t *testing.T) {
	pg := &Polygon{Points: "0,0 10,0 10,10"}

	var list InstructionList
	require.NoError(t, pg.ParseDrawingInstructions(&list))

	stroke := ""
	want := []*DrawingInstruction{
		{Kind: MoveInstruction, M: &Tuple{0, 0}},
		{Kind: LineInstruction, M: &Tuple{10, 0}},
		{Kind: LineInstruction, M: &Tuple{10, 10}},
		{Kind: PaintInstruction, Stroke: &stroke},
	}

	// the outline stays open: no Close instruction
	if diff := cmp.Diff(want, list.Instructions); diff != "" {
		t.Errorf("unexpected instructions (-want +got):\n%s", diff)
	}
}

func TestPolygonEmptyPoints(t *testing.T) {
	for _, points := range []string{"", "   "} {
		pg := &Polygon{Points: points}

		var list InstructionList
		err := pg.ParseDrawingInstructions(&list)
		require.ErrorIs(t, err, ErrEmptyPolygon, "points=%q", points)
		require.Empty(t, list.Instructions)
	}
}

func TestPolygonDanglingCoordinate(t *testing.T) {
	pg := &Polygon{Points: "0,0 10"}

	var list InstructionList
	err := pg.ParseDrawingInstructions(&list)
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestPolygonTransform(t *testing.T) {
	pg := &Polygon{Points: "1,1 2,1", Transform: "translate(10,20)"}

	var list InstructionList
	require.NoError(t, pg.ParseDrawingInstructions(&list))
	require.Len(t, list.Instructions, 3)

	require.Equal(t, Tuple{11, 21}, *list.Instructions[0].M)
	require.Equal(t, Tuple{12, 21}, *list.Instructions[1].M)
}
