package maze

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidPath is returned by Path.ValidOn when a path does not fit a grid.
var ErrInvalidPath = errors.New("invalid path")

// Path is an ordered sequence of cells from a start to a goal, both included.
// A nil *Path behaves as an empty path.
type Path struct {
	steps   []CellPosition
	members map[CellPosition]struct{}
}

// NewPath builds a path over a copy of steps.
func NewPath(steps []CellPosition) *Path {
	members := make(map[CellPosition]struct{}, len(steps))
	for _, step := range steps {
		members[step] = struct{}{}
	}
	return &Path{
		steps:   slices.Clone(steps),
		members: members,
	}
}

// Len returns the number of cells on the path.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.steps)
}

// Edges returns the number of moves needed to walk the path.
func (p *Path) Edges() int {
	return max(p.Len()-1, 0)
}

// Steps returns a copy of the cells in walking order.
func (p *Path) Steps() []CellPosition {
	if p == nil {
		return nil
	}
	return slices.Clone(p.steps)
}

// Has reports whether pos lies on the path.
func (p *Path) Has(pos CellPosition) bool {
	if p == nil {
		return false
	}
	_, ok := p.members[pos]
	return ok
}

// Contains reports whether the cell at row, col lies on the path.
func (p *Path) Contains(row, col int) bool {
	return p.Has(CellPosition{Row: row, Col: col})
}

// ValidOn checks that the path starts at the grid's start, ends at its goal,
// only crosses passages and only moves between adjacent cells.
func (p *Path) ValidOn(grid *Grid) error {
	if p.Len() == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p.steps[0] != grid.Start() || p.steps[len(p.steps)-1] != grid.Goal() {
		return fmt.Errorf("%w: must run from %s to %s", ErrInvalidPath, grid.Start(), grid.Goal())
	}
	for i, step := range p.steps {
		state, err := grid.State(step)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPath, err)
		}
		if state != Passage {
			return fmt.Errorf("%w: step %d at %s is a wall", ErrInvalidPath, i, step)
		}
		if i > 0 && !p.steps[i-1].adjacent(step) {
			return fmt.Errorf("%w: %s and %s are not adjacent", ErrInvalidPath, p.steps[i-1], step)
		}
	}
	return nil
}
