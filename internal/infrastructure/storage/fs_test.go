package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/dedoku/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	st := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:        "p1",
		Name:      "corner case",
		BlockRows: 2,
		BlockCols: 2,
		Cells: [][]int{
			{1, 2, 3, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		CreatedAt: 42,
	}
	require.NoError(t, st.Save(ctx, p))

	got, err := st.Load(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, p, got)

	metas, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	require.Equal(t, domain.PuzzleMeta{ID: "p1", Name: "corner case", Size: 4, CreatedAt: 42}, metas[0])
}

func TestLoadMissing(t *testing.T) {
	st := NewFS(t.TempDir())
	_, err := st.Load(context.Background(), "nope")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRequiresID(t *testing.T) {
	st := NewFS(t.TempDir())
	require.Error(t, st.Save(context.Background(), &domain.Puzzle{}))
	require.Error(t, st.Save(context.Background(), nil))
}

func TestListEmptyDir(t *testing.T) {
	st := NewFS(t.TempDir() + "/does-not-exist")
	metas, err := st.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, metas)
}
