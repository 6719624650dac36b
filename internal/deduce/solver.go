package deduce

import (
	"context"
	"fmt"

	"svw.info/dedoku/internal/board"
	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/ports"
)

// Solver adapts the engine to ports.Solver, building a fresh engine (and
// candidate store) per call.
type Solver struct {
	// Trace, when set, receives every placement as it is applied.
	Trace func(domain.Placement)
}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Solve(ctx context.Context, g *board.Grid) (ports.Stats, error) {
	e := New(g)
	if s.Trace != nil {
		e.SetTrace(s.Trace)
	}
	return e.Solve(ctx)
}

// Hinter reports the first forced placement found on a grid without
// mutating it.
type Hinter struct{}

func NewHinter() *Hinter { return &Hinter{} }

func (h *Hinter) Hint(ctx context.Context, g *board.Grid) (domain.Hint, bool, error) {
	e := New(g)
	if ps := e.nakedSingles(); len(ps) > 0 {
		p := ps[0]
		return domain.Hint{
			Message:   fmt.Sprintf("Single: only %d fits at row %d, column %d", p.Value, p.Cell.Row+1, p.Cell.Col+1),
			Placement: p,
		}, true, nil
	}
	ps, err := e.ForcedAssignments()
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(ps) == 0 {
		return domain.Hint{}, false, nil
	}
	p := ps[0]
	return domain.Hint{
		Message:   fmt.Sprintf("Hidden single: %d must go at row %d, column %d", p.Value, p.Cell.Row+1, p.Cell.Col+1),
		Placement: p,
	}, true, nil
}
