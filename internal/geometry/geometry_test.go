package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/dedoku/internal/domain"
)

func TestRowAndColCellsOrdered(t *testing.T) {
	s := Shape{BlockRows: 3, BlockCols: 2} // 6×6
	row := s.RowCells(2)
	require.Len(t, row, 6)
	for j, c := range row {
		require.Equal(t, domain.CellCoord{Row: 2, Col: j}, c)
	}
	col := s.ColCells(4)
	require.Len(t, col, 6)
	for i, c := range col {
		require.Equal(t, domain.CellCoord{Row: i, Col: 4}, c)
	}
}

func TestRegionCells(t *testing.T) {
	s := Shape{BlockRows: 2, BlockCols: 3} // 6×6, blocks 2 rows × 3 cols
	got := s.RegionCells(3, 4)
	want := []domain.CellCoord{
		{Row: 2, Col: 3}, {Row: 2, Col: 4}, {Row: 2, Col: 5},
		{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 5},
	}
	require.Equal(t, want, got)
}

func TestAllCellsRowMajor(t *testing.T) {
	s := Shape{BlockRows: 2, BlockCols: 2}
	all := s.AllCells()
	require.Len(t, all, 16)
	require.Equal(t, domain.CellCoord{Row: 0, Col: 0}, all[0])
	require.Equal(t, domain.CellCoord{Row: 0, Col: 3}, all[3])
	require.Equal(t, domain.CellCoord{Row: 1, Col: 0}, all[4])
	require.Equal(t, domain.CellCoord{Row: 3, Col: 3}, all[15])
}

func TestRegionAnchorsCoverEveryRegionOnce(t *testing.T) {
	shapes := []Shape{
		{BlockRows: 2, BlockCols: 2},
		{BlockRows: 3, BlockCols: 3},
		{BlockRows: 3, BlockCols: 2},
		{BlockRows: 2, BlockCols: 3},
		{BlockRows: 4, BlockCols: 3},
		{BlockRows: 1, BlockCols: 4},
		{BlockRows: 4, BlockCols: 1},
	}
	for _, s := range shapes {
		anchors := s.RegionAnchors()
		require.Len(t, anchors, s.Size())
		topLefts := make(map[domain.CellCoord]bool)
		for _, a := range anchors {
			tl := domain.CellCoord{
				Row: (a.Row / s.BlockRows) * s.BlockRows,
				Col: (a.Col / s.BlockCols) * s.BlockCols,
			}
			require.Falsef(t, topLefts[tl], "shape %+v: region %+v anchored twice", s, tl)
			topLefts[tl] = true
		}
		require.Lenf(t, topLefts, s.Size(), "shape %+v: anchors miss some regions", s)
	}
}
