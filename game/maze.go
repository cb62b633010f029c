package game

// CellPosition defines the methods that a cell position must implement.
type CellPosition interface {
	GetRow() int
	GetCol() int
}

// Grid is the read-only view of a maze grid that presentation layers consume.
type Grid interface {
	// Size returns the number of rows (and columns) of the square grid.
	Size() int

	// IsWall reports whether the cell at row, col is blocked. It returns an
	// error when the coordinate falls outside the grid.
	IsWall(row, col int) (bool, error)
}

// Path is an ordered route through a Grid.
type Path interface {
	// Len returns the number of cells on the path, start and goal included.
	Len() int

	// Contains reports whether the cell at row, col lies on the path.
	Contains(row, col int) bool
}
