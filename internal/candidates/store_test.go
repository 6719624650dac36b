package candidates

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"svw.info/dedoku/internal/board"
)

// A 9×9 grid with plenty of structure in every band.
var sample = [][]int{
	{0, 0, 0, 4, 0, 0, 2, 9, 0},
	{7, 0, 2, 0, 5, 0, 0, 8, 0},
	{0, 4, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 2, 0, 0, 5, 0, 0},
	{0, 5, 0, 8, 0, 3, 0, 1, 0},
	{0, 0, 7, 0, 0, 4, 0, 0, 3},
	{0, 0, 0, 0, 0, 0, 0, 7, 0},
	{0, 7, 0, 0, 4, 0, 1, 0, 6},
	{0, 3, 9, 0, 0, 6, 0, 0, 0},
}

// recompute derives a cell's candidates from first principles: {1..N} minus
// every value in its row, column and region.
func recompute(g *board.Grid, i, j int) []int {
	if g.Value(i, j) != 0 {
		return nil
	}
	shape := g.Shape()
	taken := make(map[int]bool)
	for _, c := range shape.RowCells(i) {
		taken[g.Value(c.Row, c.Col)] = true
	}
	for _, c := range shape.ColCells(j) {
		taken[g.Value(c.Row, c.Col)] = true
	}
	for _, c := range shape.RegionCells(i, j) {
		taken[g.Value(c.Row, c.Col)] = true
	}
	var out []int
	for v := 1; v <= g.Size(); v++ {
		if !taken[v] {
			out = append(out, v)
		}
	}
	return out
}

func snapshot(s *Store, g *board.Grid) [][][]int {
	size := g.Size()
	out := make([][][]int, size)
	for i := range out {
		out[i] = make([][]int, size)
		for j := range out[i] {
			out[i][j] = s.Possible(i, j)
		}
	}
	return out
}

func wantSnapshot(g *board.Grid) [][][]int {
	size := g.Size()
	out := make([][][]int, size)
	for i := range out {
		out[i] = make([][]int, size)
		for j := range out[i] {
			out[i][j] = recompute(g, i, j)
		}
	}
	return out
}

func TestNewMatchesDefinition(t *testing.T) {
	g, err := board.FromMatrix(sample)
	require.NoError(t, err)
	s := New(g)

	if diff := cmp.Diff(wantSnapshot(g), snapshot(s, g), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("initial candidates diverge from definition (-want +got):\n%s", diff)
	}
	// filled cells hold the empty set
	require.Empty(t, s.Possible(0, 3))
	require.Empty(t, s.Possible(8, 5))
}

func TestRecordAssignmentTracksRecomputation(t *testing.T) {
	g, err := board.FromMatrix(sample)
	require.NoError(t, err)
	s := New(g)

	// Walk the grid assigning the first candidate of each empty cell,
	// checking after every step that the incremental store still equals a
	// full recomputation. Some assignments will make the puzzle
	// contradictory; the identity must hold regardless.
	steps := 0
	for _, c := range g.Shape().AllCells() {
		if steps == 12 {
			break
		}
		vs := s.Possible(c.Row, c.Col)
		if len(vs) == 0 {
			continue
		}
		require.NoError(t, g.Assign(c.Row, c.Col, vs[0]))
		s.RecordAssignment(c.Row, c.Col, vs[0])
		steps++

		if diff := cmp.Diff(wantSnapshot(g), snapshot(s, g), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("step %d: incremental store diverged (-want +got):\n%s", steps, diff)
		}
	}
	require.Equal(t, 12, steps)
}

func TestSole(t *testing.T) {
	g, err := board.FromMatrix([][]int{
		{1, 2, 3, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	s := New(g)

	v, ok := s.Sole(0, 3)
	require.True(t, ok)
	require.Equal(t, 4, v)

	_, ok = s.Sole(2, 2)
	require.False(t, ok)
	_, ok = s.Sole(0, 0) // filled
	require.False(t, ok)
}
