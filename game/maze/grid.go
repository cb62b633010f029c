/*
Package maze provides tools for generating and solving square grid mazes.

A Grid is a square of cells that are either a Passage or a Wall. Generate fills
a grid with random walls while keeping the top-left start and bottom-right goal
open. BuildGraph turns the open cells into an undirected adjacency graph and
ShortestPath runs an A* search over it with the Manhattan distance heuristic.
EnsureSolvable ties these together, regenerating until the goal is reachable.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	wallRune    = '#'
	passageRune = '.'
	pathRune    = '*'
)

var (
	ErrInvalidSize  = errors.New("grid size must be at least 1")
	ErrOutOfRange   = errors.New("cell position out of range")
	ErrInvalidCells = errors.New("invalid grid rows")
)

// Grid is a square grid of passable and blocked cells.
type Grid struct {
	size  int
	cells [][]CellState
}

// NewGrid creates a size x size grid with every cell set to Passage.
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	cells := make([][]CellState, size)
	for row := range cells {
		cells[row] = make([]CellState, size)
	}

	return &Grid{
		size:  size,
		cells: cells,
	}, nil
}

// ParseGrid rebuilds a grid from the rows produced by Rows.
func ParseGrid(rows []string) (*Grid, error) {
	grid, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		if len(line) != grid.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidCells, row, len(line), grid.size)
		}
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case passageRune:
				grid.cells[row][col] = Passage
			case wallRune:
				grid.cells[row][col] = Wall
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrInvalidCells, line[col], row, col)
			}
		}
	}

	return grid, nil
}

// Size returns the number of rows (and columns) of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBound reports whether row, col addresses a cell of the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Start returns the top-left cell, where every route begins.
func (g *Grid) Start() CellPosition {
	return CellPosition{Row: 0, Col: 0}
}

// Goal returns the bottom-right cell, where every route ends.
func (g *Grid) Goal() CellPosition {
	return CellPosition{Row: g.size - 1, Col: g.size - 1}
}

// State returns the state of the cell at pos.
func (g *Grid) State(pos CellPosition) (CellState, error) {
	if !g.InBound(pos.Row, pos.Col) {
		return Passage, g.outOfRange(pos)
	}
	return g.cells[pos.Row][pos.Col], nil
}

// SetState changes the state of the cell at pos.
func (g *Grid) SetState(pos CellPosition, state CellState) error {
	if !g.InBound(pos.Row, pos.Col) {
		return g.outOfRange(pos)
	}
	g.cells[pos.Row][pos.Col] = state
	return nil
}

// IsWall reports whether the cell at row, col is blocked.
func (g *Grid) IsWall(row, col int) (bool, error) {
	state, err := g.State(CellPosition{Row: row, Col: col})
	if err != nil {
		return false, err
	}
	return state == Wall, nil
}

// WallCount returns the number of blocked cells.
func (g *Grid) WallCount() int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == Wall {
				count++
			}
		}
	}
	return count
}

// Rows encodes the grid one string per row, '#' for walls and '.' for passages.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	for row := range g.cells {
		var sb strings.Builder
		for _, cell := range g.cells[row] {
			sb.WriteByte(cellRune(cell))
		}
		rows[row] = sb.String()
	}
	return rows
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return g.StringWithPath(nil)
}

// StringWithPath is like String but marks the cells of path with '*'.
func (g *Grid) StringWithPath(path *Path) string {
	var sb strings.Builder
	for row := range g.cells {
		for col, cell := range g.cells[row] {
			if cell == Passage && path.Contains(row, col) {
				sb.WriteByte(pathRune)
				continue
			}
			sb.WriteByte(cellRune(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) outOfRange(pos CellPosition) error {
	return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfRange, pos, g.size, g.size)
}

func cellRune(s CellState) byte {
	if s == Wall {
		return wallRune
	}
	return passageRune
}
