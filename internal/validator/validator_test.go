package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/dedoku/internal/board"
	"svw.info/dedoku/internal/geometry"
)

func grid6(t *testing.T, cells [][]int) *board.Grid {
	t.Helper()
	g, err := board.FromMatrixShape(cells, geometry.Shape{BlockRows: 3, BlockCols: 2})
	require.NoError(t, err)
	return g
}

func empty6() [][]int {
	m := make([][]int, 6)
	for i := range m {
		m[i] = make([]int, 6)
	}
	return m
}

func TestValidateCleanGrid(t *testing.T) {
	cells := empty6()
	cells[0][0] = 1
	cells[0][1] = 2
	cells[3][3] = 1
	ok, conflicts, err := New().Validate(context.Background(), grid6(t, cells))
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)
}

func TestValidateRowDuplicate(t *testing.T) {
	cells := empty6()
	cells[2][0] = 5
	cells[2][4] = 5
	ok, conflicts, err := New().Validate(context.Background(), grid6(t, cells))
	require.NoError(t, err)
	require.False(t, ok)
	require.NotEmpty(t, conflicts)
}

func TestValidateColumnDuplicate(t *testing.T) {
	cells := empty6()
	cells[0][3] = 2
	cells[5][3] = 2
	ok, _, err := New().Validate(context.Background(), grid6(t, cells))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValidateRegionDuplicate(t *testing.T) {
	// same 3×2 region, different row and column
	cells := empty6()
	cells[0][0] = 4
	cells[2][1] = 4
	ok, conflicts, err := New().Validate(context.Background(), grid6(t, cells))
	require.NoError(t, err)
	require.False(t, ok)
	require.Len(t, conflicts, 1)
}
