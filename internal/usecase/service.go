package usecase

import (
	"context"
	"errors"

	"svw.info/dedoku/internal/board"
	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/metrics"
	"svw.info/dedoku/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Hinter    ports.Hinter
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, h ports.Hinter, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Hinter: h, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *board.Grid) (ports.Stats, error) {
	if u.Solver == nil {
		return ports.Stats{}, errNotConfigured
	}
	st, err := u.Solver.Solve(ctx, g)
	if err != nil {
		return st, err
	}
	metrics.ObserveSolve(st)
	return st, nil
}

func (u *Service) Hint(ctx context.Context, g *board.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

func (u *Service) Validate(ctx context.Context, g *board.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
