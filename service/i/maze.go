package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeGenerator creates, stores and serves solvable mazes.
type MazeGenerator interface {
	// Generate creates a solvable maze for ownerID and stores it.
	Generate(ctx context.Context, ownerID uuid.UUID, params dmn.MazeParams) (*dmn.MazeRecord, error)

	// ByID returns the maze if it belongs to ownerID.
	ByID(ownerID, id uuid.UUID) (*dmn.MazeRecord, error)

	// ByOwner lists the owner's most recent mazes.
	ByOwner(ownerID uuid.UUID) ([]*dmn.MazeRecord, error)
}
