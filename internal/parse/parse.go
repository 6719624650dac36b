// Package parse converts external puzzle representations — strings, flat
// sequences, nested rows — into the square integer matrix the core
// consumes. It is a thin adapter; all sizing rules live in board.
package parse

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"svw.info/dedoku/internal/domain"
)

// FromString parses a textual grid. Non-empty lines are rows; a row is
// either whitespace- or comma-separated numbers, or one rune per cell for
// grids up to size 9. '.', '_' and '0' mark empty cells. A single-line
// input is treated as a flattened grid and reshaped.
func FromString(s string) ([][]int, error) {
	var rows [][]int
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, domain.ShapeErrorf("no grid rows in input")
	}
	if len(rows) == 1 {
		return FromFlat(rows[0])
	}
	return FromRows(rows)
}

func parseLine(line string) ([]int, error) {
	if strings.ContainsAny(line, " \t,") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			if f == "." || f == "_" {
				row = append(row, 0)
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, domain.ShapeErrorf("cannot parse cell %q", f)
			}
			row = append(row, v)
		}
		return row, nil
	}
	row := make([]int, 0, len(line))
	for _, r := range line {
		switch {
		case r == '.' || r == '_' || r == '0':
			row = append(row, 0)
		case r >= '1' && r <= '9':
			row = append(row, int(r-'0'))
		default:
			return nil, domain.ShapeErrorf("cannot parse cell %q", string(r))
		}
	}
	return row, nil
}

// FromFlat reshapes a flattened grid of N² values into N rows.
func FromFlat(vals []int) ([][]int, error) {
	size := int(math.Round(math.Sqrt(float64(len(vals)))))
	if size*size != len(vals) {
		return nil, domain.ShapeErrorf("a sudoku grid must be square, got total size %d", len(vals))
	}
	out := make([][]int, size)
	for i := range out {
		out[i] = make([]int, size)
		copy(out[i], vals[i*size:(i+1)*size])
	}
	return out, nil
}

// FromRows copies nested rows into a fresh matrix, rejecting ragged input.
func FromRows(rows [][]int) ([][]int, error) {
	if len(rows) == 0 {
		return nil, domain.ShapeErrorf("no grid rows in input")
	}
	out := make([][]int, len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, domain.ShapeErrorf("grid must be square: row %d has %d cells, want %d", i, len(row), len(rows))
		}
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out, nil
}
