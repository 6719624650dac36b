// Package candidates maintains, for every cell, the set of values that can
// still be placed there legally. The store is computed once from the grid
// and kept in lockstep afterwards through RecordAssignment; it is never
// recomputed wholesale on the read path.
package candidates

import (
	"svw.info/dedoku/internal/board"
	"svw.info/dedoku/internal/geometry"
)

// Store maps every cell to its candidate set. Filled cells always hold the
// empty set.
type Store struct {
	shape geometry.Shape
	sets  [][]valueSet
}

// New computes the candidate sets of every cell of g: {1..N} minus the
// values present in the cell's row, column and region.
func New(g *board.Grid) *Store {
	shape := g.Shape()
	size := shape.Size()
	s := &Store{shape: shape, sets: make([][]valueSet, size)}
	for i := range s.sets {
		s.sets[i] = make([]valueSet, size)
		for j := range s.sets[i] {
			s.sets[i][j] = compute(g, i, j)
		}
	}
	return s
}

func compute(g *board.Grid, i, j int) valueSet {
	size := g.Size()
	if g.Value(i, j) != 0 {
		return newValueSet(size)
	}
	vs := fullValueSet(size)
	shape := g.Shape()
	for _, c := range shape.RowCells(i) {
		vs.discard(g.Value(c.Row, c.Col))
	}
	for _, c := range shape.ColCells(j) {
		vs.discard(g.Value(c.Row, c.Col))
	}
	for _, c := range shape.RegionCells(i, j) {
		vs.discard(g.Value(c.Row, c.Col))
	}
	return vs
}

// Possible returns the still-possible values at (i,j) in ascending order.
// The slice is a snapshot; mutating it does not touch the store.
func (s *Store) Possible(i, j int) []int {
	return s.sets[i][j].values()
}

// Sole returns the single remaining candidate at (i,j) when exactly one is
// left, the naked-single fast path.
func (s *Store) Sole(i, j int) (int, bool) {
	set := s.sets[i][j]
	if set.len() != 1 {
		return 0, false
	}
	return set.values()[0], true
}

// RecordAssignment clears the set at (i,j) and discards v from every cell
// sharing its row, column or region. It must be paired one-to-one with
// Grid.Assign to keep both structures consistent.
func (s *Store) RecordAssignment(i, j, v int) {
	s.sets[i][j].clear()
	for _, c := range s.shape.RowCells(i) {
		s.sets[c.Row][c.Col].discard(v)
	}
	for _, c := range s.shape.ColCells(j) {
		s.sets[c.Row][c.Col].discard(v)
	}
	for _, c := range s.shape.RegionCells(i, j) {
		s.sets[c.Row][c.Col].discard(v)
	}
}
