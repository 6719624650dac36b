// Package board holds the authoritative grid state: an N×N matrix of values
// in [0, N], where 0 marks an empty cell.
package board

import (
	"strconv"
	"strings"

	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/geometry"
)

// Grid is a mutable N×N sudoku grid. The block shape is fixed at
// construction and never changes; the only mutation path is Assign.
type Grid struct {
	shape geometry.Shape
	cells [][]int
	empty int
}

// New returns an all-empty grid of blockRows×blockCols blocks.
func New(blockRows, blockCols int) (*Grid, error) {
	if blockRows < 1 || blockCols < 1 {
		return nil, domain.SizeErrorf("block shape must be positive, got %d×%d", blockRows, blockCols)
	}
	shape := geometry.Shape{BlockRows: blockRows, BlockCols: blockCols}
	size := shape.Size()
	cells := make([][]int, size)
	for i := range cells {
		cells[i] = make([]int, size)
	}
	return &Grid{shape: shape, cells: cells, empty: size * size}, nil
}

// NewSquare returns an all-empty grid with square blocks, the common case.
func NewSquare(block int) (*Grid, error) { return New(block, block) }

// FromMatrix builds a grid from a square matrix, inferring the block shape:
// the block width is the largest divisor of N no greater than √N, the block
// height is N divided by it. Fails with a SizeError when no divisor above 1
// qualifies (N prime, or N < 4).
func FromMatrix(cells [][]int) (*Grid, error) {
	if err := checkSquare(cells); err != nil {
		return nil, err
	}
	size := len(cells)
	bc := inferBlockCols(size)
	if bc <= 1 {
		return nil, domain.SizeErrorf("grid size %d cannot be decomposed into m×n blocks", size)
	}
	return FromMatrixShape(cells, geometry.Shape{BlockRows: size / bc, BlockCols: bc})
}

// FromMatrixShape builds a grid from a square matrix with an explicit block
// shape. Fails with a SizeError when the shape disagrees with the matrix
// side length.
func FromMatrixShape(cells [][]int, shape geometry.Shape) (*Grid, error) {
	if err := checkSquare(cells); err != nil {
		return nil, err
	}
	size := len(cells)
	if shape.BlockRows < 1 || shape.BlockCols < 1 {
		return nil, domain.SizeErrorf("block shape must be positive, got %d×%d", shape.BlockRows, shape.BlockCols)
	}
	if shape.Size() != size {
		return nil, domain.SizeErrorf("block shape %d×%d implies size %d, matrix side is %d",
			shape.BlockRows, shape.BlockCols, shape.Size(), size)
	}
	g := &Grid{shape: shape, cells: make([][]int, size)}
	for i, row := range cells {
		g.cells[i] = make([]int, size)
		for j, v := range row {
			if v < 0 || v > size {
				return nil, domain.ShapeErrorf("cell (%d,%d) holds %d, want a value in [0, %d]", i, j, v, size)
			}
			g.cells[i][j] = v
			if v == 0 {
				g.empty++
			}
		}
	}
	return g, nil
}

func checkSquare(cells [][]int) error {
	size := len(cells)
	if size == 0 {
		return domain.ShapeErrorf("grid matrix is empty")
	}
	for i, row := range cells {
		if len(row) != size {
			return domain.ShapeErrorf("grid must be square: row %d has %d cells, matrix has %d rows", i, len(row), size)
		}
	}
	return nil
}

// inferBlockCols returns the largest divisor of n that is at most √n,
// 1 when n is prime.
func inferBlockCols(n int) int {
	d := 1
	for c := 2; c*c <= n; c++ {
		if n%c == 0 {
			d = c
		}
	}
	return d
}

// Shape returns the grid's block shape.
func (g *Grid) Shape() geometry.Shape { return g.shape }

// Size returns the side length N.
func (g *Grid) Size() int { return g.shape.Size() }

// Value returns the value at (i,j), 0 when empty.
func (g *Grid) Value(i, j int) int { return g.cells[i][j] }

// EmptyCount returns how many cells are still unfilled.
func (g *Grid) EmptyCount() int { return g.empty }

// Assign writes v into the empty cell (i,j). Legality against the row,
// column and region is the caller's contract; Assign only guards the
// cell-reuse and range preconditions.
func (g *Grid) Assign(i, j, v int) error {
	if v < 1 || v > g.Size() {
		return domain.AssignmentErrorf("value %d out of range [1, %d]", v, g.Size())
	}
	if g.cells[i][j] != 0 {
		return domain.AssignmentErrorf("cell (%d,%d) already holds %d", i, j, g.cells[i][j])
	}
	g.cells[i][j] = v
	g.empty--
	return nil
}

// Values returns a copy of the matrix.
func (g *Grid) Values() [][]int {
	out := make([][]int, len(g.cells))
	for i, row := range g.cells {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

// String renders the grid with block separators, empty cells as dots.
func (g *Grid) String() string {
	size := g.Size()
	width := len(strconv.Itoa(size))
	var b strings.Builder
	for i := 0; i < size; i++ {
		if i > 0 && i%g.shape.BlockRows == 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < size; j++ {
			if j > 0 {
				b.WriteByte(' ')
				if j%g.shape.BlockCols == 0 {
					b.WriteByte(' ')
				}
			}
			cell := "."
			if v := g.cells[i][j]; v != 0 {
				cell = strconv.Itoa(v)
			}
			for pad := width - len(cell); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
