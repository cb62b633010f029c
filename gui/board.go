// Package gui shows a solved maze in a desktop window.
package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/render"
)

// MazeBoard is a widget drawing a grid, its solution path and the start and
// goal sprites. It sizes itself to cellPixels per cell and scales on resize.
type MazeBoard struct {
	widget.BaseWidget

	grid       game.Grid
	path       game.Path
	sprites    render.Sprites
	cellPixels float32
}

// NewMazeBoard creates a board widget. path and either sprite may be nil.
func NewMazeBoard(grid game.Grid, path game.Path, sprites render.Sprites, cellPixels int) *MazeBoard {
	if cellPixels <= 0 {
		cellPixels = render.DefaultCellPixels
	}
	m := &MazeBoard{
		grid:       grid,
		path:       path,
		sprites:    sprites,
		cellPixels: float32(cellPixels),
	}
	m.ExtendBaseWidget(m)
	return m
}

// CreateRenderer implements fyne.Widget.
func (m *MazeBoard) CreateRenderer() fyne.WidgetRenderer {
	r := &mazeRenderer{board: m}
	r.build()
	return r
}

type mazeRenderer struct {
	board   *MazeBoard
	cells   []*canvas.Rectangle
	start   *canvas.Image
	goal    *canvas.Image
	objects []fyne.CanvasObject
}

func (r *mazeRenderer) build() {
	size := r.board.grid.Size()
	r.cells = make([]*canvas.Rectangle, 0, size*size)
	r.objects = make([]fyne.CanvasObject, 0, size*size+2)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			rect := canvas.NewRectangle(r.fill(row, col))
			rect.StrokeColor = r.stroke(row, col)
			rect.StrokeWidth = 1
			r.cells = append(r.cells, rect)
			r.objects = append(r.objects, rect)
		}
	}

	if r.board.sprites.Start != nil {
		r.start = canvas.NewImageFromImage(r.board.sprites.Start)
		r.start.FillMode = canvas.ImageFillContain
		r.objects = append(r.objects, r.start)
	}
	if r.board.sprites.Goal != nil {
		r.goal = canvas.NewImageFromImage(r.board.sprites.Goal)
		r.goal.FillMode = canvas.ImageFillContain
		r.objects = append(r.objects, r.goal)
	}
}

func (r *mazeRenderer) fill(row, col int) color.Color {
	isWall, err := r.board.grid.IsWall(row, col)
	switch {
	case err != nil || isWall:
		return render.WallColor
	case r.board.path != nil && r.board.path.Contains(row, col):
		return render.PathColor
	default:
		return render.FloorColor
	}
}

func (r *mazeRenderer) stroke(row, col int) color.Color {
	if r.fill(row, col) == color.Color(render.FloorColor) {
		return render.OutlineColor
	}
	return render.EdgeColor
}

// cellSide keeps cells square and the whole grid inside size.
func (r *mazeRenderer) cellSide(size fyne.Size) float32 {
	n := float32(r.board.grid.Size())
	return min(size.Width/n, size.Height/n)
}

func (r *mazeRenderer) MinSize() fyne.Size {
	side := float32(r.board.grid.Size()) * r.board.cellPixels
	return fyne.NewSize(side, side)
}

func (r *mazeRenderer) Layout(size fyne.Size) {
	n := r.board.grid.Size()
	side := r.cellSide(size)
	offsetX := (size.Width - float32(n)*side) / 2
	offsetY := (size.Height - float32(n)*side) / 2
	at := func(row, col int) fyne.Position {
		return fyne.NewPos(offsetX+float32(col)*side, offsetY+float32(row)*side)
	}

	for i, rect := range r.cells {
		rect.Resize(fyne.NewSize(side, side))
		rect.Move(at(i/n, i%n))
	}
	if r.start != nil {
		r.start.Resize(fyne.NewSize(side, side))
		r.start.Move(at(0, 0))
	}
	if r.goal != nil {
		r.goal.Resize(fyne.NewSize(side, side))
		r.goal.Move(at(n-1, n-1))
	}
}

func (r *mazeRenderer) Refresh() {
	for i, rect := range r.cells {
		n := r.board.grid.Size()
		rect.FillColor = r.fill(i/n, i%n)
		rect.StrokeColor = r.stroke(i/n, i%n)
		rect.Refresh()
	}
	r.Layout(r.board.Size())
}

func (r *mazeRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *mazeRenderer) Destroy() {}

// Show opens a fixed-size window holding board and blocks until it closes.
func Show(title string, board *MazeBoard) {
	a := app.New()
	w := a.NewWindow(title)
	w.SetContent(board)
	w.Resize(board.MinSize())
	w.SetFixedSize(true)
	w.ShowAndRun()
}
