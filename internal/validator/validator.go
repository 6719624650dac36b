package validator

import (
	"context"

	"svw.info/dedoku/internal/board"
	"svw.info/dedoku/internal/domain"
)

// FastValidator reports cells whose value already appears earlier in the
// same row, column or region.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g *board.Grid) (bool, []domain.CellCoord, error) {
	shape := g.Shape()
	size := shape.Size()
	conf := make([]domain.CellCoord, 0, 8)

	check := func(cells []domain.CellCoord) {
		seen := make([]bool, size+1)
		for _, c := range cells {
			val := g.Value(c.Row, c.Col)
			if val == 0 {
				continue
			}
			if seen[val] {
				conf = append(conf, c)
			}
			seen[val] = true
		}
	}

	for i := 0; i < size; i++ {
		check(shape.RowCells(i))
	}
	for j := 0; j < size; j++ {
		check(shape.ColCells(j))
	}
	for _, a := range shape.RegionAnchors() {
		check(shape.RegionCells(a.Row, a.Col))
	}
	return len(conf) == 0, conf, nil
}
