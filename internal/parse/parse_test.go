package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/dedoku/internal/domain"
)

func TestFromStringRuneRows(t *testing.T) {
	got, err := FromString("12.4\n..3.\n4...\n.1..\n")
	require.NoError(t, err)
	want := [][]int{
		{1, 2, 0, 4},
		{0, 0, 3, 0},
		{4, 0, 0, 0},
		{0, 1, 0, 0},
	}
	require.Equal(t, want, got)
}

func TestFromStringNumberRows(t *testing.T) {
	got, err := FromString("10 0 3 .\n2, 9, 12, 0\n0 0 0 0\n0 0 0 16\n")
	require.NoError(t, err)
	want := [][]int{
		{10, 0, 3, 0},
		{2, 9, 12, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 16},
	}
	require.Equal(t, want, got)
}

func TestFromStringSingleLineIsFlat(t *testing.T) {
	got, err := FromString("1234000000000000")
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, []int{1, 2, 3, 4}, got[0])
}

func TestFromStringRejectsGarbage(t *testing.T) {
	var pe *domain.ShapeError
	_, err := FromString("12x4\n....\n....\n....\n")
	require.ErrorAs(t, err, &pe)
	_, err = FromString("   \n\n")
	require.ErrorAs(t, err, &pe)
}

func TestFromFlat(t *testing.T) {
	got, err := FromFlat(make([]int, 36))
	require.NoError(t, err)
	require.Len(t, got, 6)
	for _, row := range got {
		require.Len(t, row, 6)
	}

	var pe *domain.ShapeError
	_, err = FromFlat(make([]int, 10))
	require.ErrorAs(t, err, &pe)
}

func TestFromRowsRejectsRagged(t *testing.T) {
	var pe *domain.ShapeError
	_, err := FromRows([][]int{{1, 2}, {3}})
	require.ErrorAs(t, err, &pe)
}

func TestFromRowsCopies(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	got, err := FromRows(in)
	require.NoError(t, err)
	got[0][0] = 9
	require.Equal(t, 1, in[0][0])
}
