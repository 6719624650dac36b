// Package geometry computes, from the block shape alone, which cells share a
// row, column or region. It holds no state; every other package builds on
// these coordinate generators.
package geometry

import "svw.info/dedoku/internal/domain"

// Shape fixes the block dimensions of a grid. Blocks are BlockRows×BlockCols
// cells; the full grid is Size()×Size(), tiled by BlockCols×BlockRows blocks.
type Shape struct {
	BlockRows int // m: rows per block
	BlockCols int // n: columns per block
}

// Size returns the side length N = m·n.
func (s Shape) Size() int { return s.BlockRows * s.BlockCols }

// RowCells returns the N coordinates of row i, left to right.
func (s Shape) RowCells(i int) []domain.CellCoord {
	out := make([]domain.CellCoord, s.Size())
	for j := range out {
		out[j] = domain.CellCoord{Row: i, Col: j}
	}
	return out
}

// ColCells returns the N coordinates of column j, top to bottom.
func (s Shape) ColCells(j int) []domain.CellCoord {
	out := make([]domain.CellCoord, s.Size())
	for i := range out {
		out[i] = domain.CellCoord{Row: i, Col: j}
	}
	return out
}

// RegionCells returns the m·n coordinates of the region containing (i,j),
// row-major within the block. The region's top-left anchor is
// (i/m·m, j/n·n).
func (s Shape) RegionCells(i, j int) []domain.CellCoord {
	ar := (i / s.BlockRows) * s.BlockRows
	ac := (j / s.BlockCols) * s.BlockCols
	out := make([]domain.CellCoord, 0, s.BlockRows*s.BlockCols)
	for x := ar; x < ar+s.BlockRows; x++ {
		for y := ac; y < ac+s.BlockCols; y++ {
			out = append(out, domain.CellCoord{Row: x, Col: y})
		}
	}
	return out
}

// AllCells returns every coordinate of the grid in row-major order, for
// deterministic iteration.
func (s Shape) AllCells() []domain.CellCoord {
	size := s.Size()
	out := make([]domain.CellCoord, 0, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			out = append(out, domain.CellCoord{Row: i, Col: j})
		}
	}
	return out
}

// RegionAnchors returns one representative cell per region, N in total.
// Anchor k is (k, (k mod m)·n): walking down the rows while the column
// cycles through the block columns lands in every region exactly once.
func (s Shape) RegionAnchors() []domain.CellCoord {
	out := make([]domain.CellCoord, s.Size())
	for k := range out {
		out[k] = domain.CellCoord{Row: k, Col: (k % s.BlockRows) * s.BlockCols}
	}
	return out
}
