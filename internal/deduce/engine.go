// Package deduce implements the hidden-single rule and the fixpoint loop
// that fills every logically forced cell of a grid. It never guesses: a
// grid the rule cannot finish is left partially solved.
package deduce

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"svw.info/dedoku/internal/board"
	"svw.info/dedoku/internal/candidates"
	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/ports"
)

// State reports where the loop is in its two-state lifecycle.
type State int

const (
	StateRunning State = iota
	StateConverged
)

// ErrInconsistent reports a candidate state that contradicts itself: one
// scan forced two different values into the same cell. Either an update was
// missed upstream, or the input grid admits no solution at all.
var ErrInconsistent = errors.New("deduce: inconsistent candidate state")

// Engine owns a grid and its candidate store and applies forced assignments
// until none remain.
type Engine struct {
	grid  *board.Grid
	cands *candidates.Store
	state State
	trace func(domain.Placement)
}

// New builds an engine over g, computing the initial candidate store.
func New(g *board.Grid) *Engine {
	return &Engine{grid: g, cands: candidates.New(g), state: StateRunning}
}

// Grid returns the grid the engine is driving.
func (e *Engine) Grid() *board.Grid { return e.grid }

// State returns StateConverged once a full pass has made no assignment.
func (e *Engine) State() State { return e.state }

// Possible exposes the current candidate set at (i,j) as a read-only
// snapshot.
func (e *Engine) Possible(i, j int) []int { return e.cands.Possible(i, j) }

// SetTrace registers a hook invoked for each placement as it is applied.
func (e *Engine) SetTrace(fn func(domain.Placement)) { e.trace = fn }

// uniquePlacements returns, for one row, column or region, every value with
// exactly one cell left that can take it. Finding two different values
// forced into the same cell means the candidate state is corrupt (or the
// puzzle contradictory) and is surfaced as ErrInconsistent rather than
// resolved arbitrarily.
func (e *Engine) uniquePlacements(cells []domain.CellCoord) ([]domain.Placement, error) {
	size := e.grid.Size()
	only := make([]domain.CellCoord, size+1)
	seen := make([]uint8, size+1) // 0 unseen, 1 unique so far, 2 ambiguous
	for _, c := range cells {
		for _, v := range e.cands.Possible(c.Row, c.Col) {
			if seen[v] == 0 {
				seen[v] = 1
				only[v] = c
			} else {
				seen[v] = 2
			}
		}
	}
	var out []domain.Placement
	byCell := make(map[domain.CellCoord]int)
	for v := 1; v <= size; v++ {
		if seen[v] != 1 {
			continue
		}
		c := only[v]
		if prev, dup := byCell[c]; dup {
			return nil, errors.Wrapf(ErrInconsistent,
				"cell (%d,%d) forced to both %d and %d", c.Row, c.Col, prev, v)
		}
		byCell[c] = v
		out = append(out, domain.Placement{Cell: c, Value: v})
	}
	return out, nil
}

// ForcedAssignments scans every row, every column and every region once and
// returns all placements forced by a hidden single, computed against the
// current candidate snapshot. The same cell can be reported through more
// than one unit; the applier tolerates and deduplicates that.
func (e *Engine) ForcedAssignments() ([]domain.Placement, error) {
	shape := e.grid.Shape()
	size := shape.Size()
	var out []domain.Placement
	units := make([][]domain.CellCoord, 0, 3*size)
	for i := 0; i < size; i++ {
		units = append(units, shape.RowCells(i))
	}
	for j := 0; j < size; j++ {
		units = append(units, shape.ColCells(j))
	}
	for _, a := range shape.RegionAnchors() {
		units = append(units, shape.RegionCells(a.Row, a.Col))
	}
	for _, u := range units {
		ps, err := e.uniquePlacements(u)
		if err != nil {
			return nil, err
		}
		out = append(out, ps...)
	}
	return out, nil
}

// nakedSingles returns cells whose own candidate set collapsed to one
// value. Hidden singles subsume these, but the scan is cheap and keeps
// rounds short on easy grids.
func (e *Engine) nakedSingles() []domain.Placement {
	var out []domain.Placement
	for _, c := range e.grid.Shape().AllCells() {
		if v, ok := e.cands.Sole(c.Row, c.Col); ok {
			out = append(out, domain.Placement{Cell: c, Value: v})
		}
	}
	return out
}

// apply writes one placement through grid and candidate store together.
// Cells filled earlier in the same round are skipped, not errors: the same
// forced placement is often discovered through several units.
func (e *Engine) apply(p domain.Placement) (bool, error) {
	if e.grid.Value(p.Cell.Row, p.Cell.Col) != 0 {
		return false, nil
	}
	if err := e.grid.Assign(p.Cell.Row, p.Cell.Col, p.Value); err != nil {
		return false, err
	}
	e.cands.RecordAssignment(p.Cell.Row, p.Cell.Col, p.Value)
	if e.trace != nil {
		e.trace(p)
	}
	return true, nil
}

// Solve runs deduction rounds until a full pass applies no assignment.
// Each round's placements are collected against the candidate state at the
// start of the round, then applied together. Termination is guaranteed:
// every applied placement removes one empty cell.
func (e *Engine) Solve(ctx context.Context) (ports.Stats, error) {
	start := time.Now()
	var st ports.Stats
	e.state = StateRunning
	for {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return st, err
		}
		found := e.nakedSingles()
		forced, err := e.ForcedAssignments()
		if err != nil {
			st.Duration = time.Since(start)
			return st, err
		}
		found = append(found, forced...)

		applied := 0
		for _, p := range found {
			ok, err := e.apply(p)
			if err != nil {
				st.Duration = time.Since(start)
				return st, err
			}
			if ok {
				applied++
			}
		}
		st.Rounds++
		st.Assignments += applied
		if applied == 0 {
			e.state = StateConverged
			st.Duration = time.Since(start)
			return st, nil
		}
	}
}
