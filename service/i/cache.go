package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// MazeCache keeps layouts of seeded generations.
type MazeCache interface {
	// Get reports false when key holds no layout.
	Get(ctx context.Context, key string) (*dmn.MazeLayout, bool, error)

	Set(ctx context.Context, key string, layout *dmn.MazeLayout) error

	// Lock blocks until key is held by the caller and returns its release.
	Lock(ctx context.Context, key string) (func(), error)
}
