// Package render draws maze grids and their solution paths as images.
package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/beka-birhanu/vinom-maze/game"
)

const (
	// DefaultCellPixels is the side of one drawn cell.
	DefaultCellPixels = 60

	// The outline needs at least one pixel of fill inside it.
	minCellPixels = 3
)

var (
	WallColor    = color.RGBA{R: 0x19, G: 0x19, B: 0x70, A: 0xff} // MidnightBlue
	PathColor    = color.RGBA{R: 0x98, G: 0xfb, B: 0x98, A: 0xff} // PaleGreen
	FloorColor   = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff} // WhiteSmoke
	OutlineColor = color.RGBA{R: 0x2f, G: 0x4f, B: 0x4f, A: 0xff} // DarkSlateGray
	EdgeColor    = color.RGBA{A: 0xff}                            // outline of wall and path cells
)

var (
	ErrNilGrid       = errors.New("grid is required")
	ErrCellTooSmall  = errors.New("cell must be at least 3 pixels wide")
	ErrBadSpriteSize = errors.New("sprite size must be positive")
)

// Board satisfies image.Image, drawing one filled square per grid cell. Walls
// take WallColor, cells on the path take PathColor and the rest FloorColor.
type Board struct {
	grid       game.Grid
	path       game.Path
	cellPixels int
}

// NewBoard creates a board for grid and path. The path may be nil.
func NewBoard(grid game.Grid, path game.Path, cellPixels int) (*Board, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if cellPixels < minCellPixels {
		return nil, ErrCellTooSmall
	}
	return &Board{
		grid:       grid,
		path:       path,
		cellPixels: cellPixels,
	}, nil
}

// CellPixels returns the side of one cell in pixels.
func (b *Board) CellPixels() int {
	return b.cellPixels
}

// CellOrigin returns the top-left pixel of the cell at row, col.
func (b *Board) CellOrigin(row, col int) image.Point {
	return image.Pt(col*b.cellPixels, row*b.cellPixels)
}

// CellFill returns the fill color of the cell at row, col.
func (b *Board) CellFill(row, col int) color.RGBA {
	if isWall, err := b.grid.IsWall(row, col); err != nil || isWall {
		return WallColor
	}
	if b.path != nil && b.path.Contains(row, col) {
		return PathColor
	}
	return FloorColor
}

func (b *Board) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *Board) Bounds() image.Rectangle {
	side := b.grid.Size() * b.cellPixels
	return image.Rect(0, 0, side, side)
}

func (b *Board) At(x, y int) color.Color {
	if !image.Pt(x, y).In(b.Bounds()) {
		return color.Transparent
	}
	row, col := y/b.cellPixels, x/b.cellPixels
	fill := b.CellFill(row, col)

	dx, dy := x%b.cellPixels, y%b.cellPixels
	last := b.cellPixels - 1
	if dx == 0 || dy == 0 || dx == last || dy == last {
		if fill == FloorColor {
			return OutlineColor
		}
		return EdgeColor
	}
	return fill
}
