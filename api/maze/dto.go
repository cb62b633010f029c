package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
)

// GenerateRequest asks for a new maze. Omitted fields take the service
// defaults and a zero seed picks a random one.
type GenerateRequest struct {
	Size           int      `json:"size" binding:"omitempty,min=1"`
	ObstacleChance *float64 `json:"obstacleChance" binding:"omitempty,min=0,max=1"`
	Seed           int64    `json:"seed" binding:"omitempty,min=0"`
	MaxAttempts    int      `json:"maxAttempts" binding:"omitempty,min=0"`
}

// Position is one cell of a path.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse describes a stored maze. Rows use '#' for walls and '.' for
// passages.
type MazeResponse struct {
	ID             string     `json:"id"`
	Size           int        `json:"size"`
	ObstacleChance float64    `json:"obstacleChance"`
	Seed           int64      `json:"seed"`
	Attempts       int        `json:"attempts"`
	Rows           []string   `json:"rows"`
	Path           []Position `json:"path"`
	PathLength     int        `json:"pathLength"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func toPosition(cp game.CellPosition) Position {
	return Position{Row: cp.GetRow(), Col: cp.GetCol()}
}

func toMazeResponse(record *dmn.MazeRecord) *MazeResponse {
	path := make([]Position, 0, len(record.Layout.Path))
	for _, step := range record.Layout.Path {
		path = append(path, toPosition(step))
	}
	return &MazeResponse{
		ID:             record.ID.String(),
		Size:           record.Params.Size,
		ObstacleChance: record.Params.ObstacleChance,
		Seed:           record.Params.Seed,
		Attempts:       record.Layout.Attempts,
		Rows:           record.Layout.Rows,
		Path:           path,
		PathLength:     max(len(path)-1, 0),
		CreatedAt:      record.CreatedAt,
	}
}
