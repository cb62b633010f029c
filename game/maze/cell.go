package maze

import "fmt"

// CellState marks a grid cell as open or blocked.
type CellState uint8

const (
	Passage CellState = iota // Passage is an open cell that can be walked through.
	Wall                     // Wall is a blocked cell.
)

func (s CellState) String() string {
	switch s {
	case Passage:
		return "passage"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("unknown cell state: %d", uint8(s))
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// GetRow returns the row index of the cell.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the cell.
func (cp CellPosition) GetCol() int {
	return cp.Col
}

func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.Row, cp.Col)
}

// adjacent reports whether two positions differ by one step on exactly one axis.
func (cp CellPosition) adjacent(other CellPosition) bool {
	return Manhattan(cp, other) == 1
}
