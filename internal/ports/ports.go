package ports

import (
	"context"
	"time"

	"svw.info/dedoku/internal/board"
	"svw.info/dedoku/internal/domain"
)

// Stats captures how much work a solve performed.
type Stats struct {
	Rounds      int
	Assignments int
	Duration    time.Duration
}

// Solver drives a grid to its deduction fixpoint, mutating it in place.
// A grid left with empty cells is a normal outcome, not an error.
type Solver interface {
	Solve(ctx context.Context, g *board.Grid) (Stats, error)
}

// Hinter returns the next forced placement without applying it.
type Hinter interface {
	Hint(ctx context.Context, g *board.Grid) (domain.Hint, bool, error)
}

// Validator performs fast duplicate checks over rows, columns and regions.
type Validator interface {
	Validate(ctx context.Context, g *board.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
