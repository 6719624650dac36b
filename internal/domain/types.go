package domain

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement pairs a cell with the value deduction forces into it.
type Placement struct {
	Cell  CellCoord `json:"cell"`
	Value int       `json:"value"`
}

// Hint describes the next forced placement for a UI, without applying it.
type Hint struct {
	Message   string    `json:"message,omitempty"`
	Placement Placement `json:"placement"`
}

// Puzzle is a persisted grid with metadata.
type Puzzle struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name,omitempty"`
	BlockRows int     `json:"blockRows"`
	BlockCols int     `json:"blockCols"`
	Cells     [][]int `json:"cells"`
	CreatedAt int64   `json:"createdAt,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}
