// Package domain holds the records the maze service stores and serves.
package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
)

// MaxMazeSize bounds the side of mazes generated on request.
const MaxMazeSize = 64

var (
	ErrMazeSize        = fmt.Errorf("maze size must be between 1 and %d", MaxMazeSize)
	ErrObstacleChance  = errors.New("obstacle chance must be between 0 and 1")
	ErrNegativeSeed    = errors.New("seed must not be negative")
	ErrNegativeAttempt = errors.New("max attempts must not be negative")
)

// MazeParams are the inputs of one generation request. A zero Seed asks for
// a random one.
type MazeParams struct {
	Size           int     `json:"size" bson:"size"`
	ObstacleChance float64 `json:"obstacleChance" bson:"obstacleChance"`
	Seed           int64   `json:"seed" bson:"seed"`
	MaxAttempts    int     `json:"maxAttempts" bson:"maxAttempts"`
}

// Validate checks the parameters against the service limits.
func (p MazeParams) Validate() error {
	if p.Size < 1 || p.Size > MaxMazeSize {
		return ErrMazeSize
	}
	if p.ObstacleChance < 0 || p.ObstacleChance > 1 {
		return ErrObstacleChance
	}
	if p.Seed < 0 {
		return ErrNegativeSeed
	}
	if p.MaxAttempts < 0 {
		return ErrNegativeAttempt
	}
	return nil
}

// Seeded reports whether the parameters pin the random source.
func (p MazeParams) Seeded() bool {
	return p.Seed > 0
}

// CacheKey identifies the layout produced by seeded parameters. The same
// size, chance and seed always generate the same maze.
func (p MazeParams) CacheKey() string {
	return fmt.Sprintf("maze:%d:%s:%d", p.Size, strconv.FormatFloat(p.ObstacleChance, 'g', -1, 64), p.Seed)
}

// MazeLayout is a solvable grid in text form with one of its shortest paths.
type MazeLayout struct {
	Rows     []string            `json:"rows" bson:"rows"`
	Path     []maze.CellPosition `json:"path" bson:"path"`
	Attempts int                 `json:"attempts" bson:"attempts"`
	Seed     int64               `json:"seed" bson:"seed"`
}

// NewMazeLayout captures a solver result.
func NewMazeLayout(result *maze.Result) MazeLayout {
	return MazeLayout{
		Rows:     result.Grid.Rows(),
		Path:     result.Path.Steps(),
		Attempts: result.Attempts,
		Seed:     result.Seed,
	}
}

// Grid parses the stored rows back into a grid.
func (l MazeLayout) Grid() (*maze.Grid, error) {
	return maze.ParseGrid(l.Rows)
}

// ShortestPath rebuilds the stored path and checks it against the grid.
func (l MazeLayout) ShortestPath() (*maze.Grid, *maze.Path, error) {
	grid, err := l.Grid()
	if err != nil {
		return nil, nil, err
	}
	path := maze.NewPath(l.Path)
	if err := path.ValidOn(grid); err != nil {
		return nil, nil, err
	}
	return grid, path, nil
}

// MazeRecord is a generated maze owned by a user.
type MazeRecord struct {
	ID        uuid.UUID  `json:"id" bson:"_id"`
	OwnerID   uuid.UUID  `json:"ownerId" bson:"ownerId"`
	Params    MazeParams `json:"params" bson:"params"`
	Layout    MazeLayout `json:"layout" bson:"layout"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}

// NewMazeRecord creates a record with a fresh ID.
func NewMazeRecord(ownerID uuid.UUID, params MazeParams, layout MazeLayout) *MazeRecord {
	return &MazeRecord{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Params:    params,
		Layout:    layout,
		CreatedAt: time.Now().UTC(),
	}
}
