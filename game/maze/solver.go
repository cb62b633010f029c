package maze

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrAttemptsExhausted is returned by EnsureSolvable when MaxAttempts is set
// and none of the generated grids could be solved.
var ErrAttemptsExhausted = errors.New("no solvable maze within the attempt limit")

// Logger receives progress messages from EnsureSolvable.
type Logger interface {
	Info(string)
}

// Options configures EnsureSolvable.
type Options struct {
	Size           int     // Number of rows and columns.
	ObstacleChance float64 // Probability that a cell becomes a wall (0.0 to 1.0).

	// Rand is the random source. When nil, one is seeded from Seed, or from
	// the current time if Seed is not positive.
	Rand *rand.Rand
	Seed int64

	// MaxAttempts caps the number of generated grids. Zero retries until a
	// solvable grid turns up, which for an obstacle chance near 1 may be never.
	MaxAttempts int

	Logger Logger // Optional.
}

// Result is an accepted grid together with one of its shortest paths.
type Result struct {
	Grid     *Grid
	Path     *Path
	Attempts int   // Number of grids generated, the accepted one included.
	Seed     int64 // Seed of the random source, zero if the caller supplied Rand.
}

// EnsureSolvable generates grids until one has a path from its start to its
// goal and returns that grid with a shortest path. The context is checked
// between attempts.
func EnsureSolvable(ctx context.Context, opts Options) (*Result, error) {
	if opts.Size < 1 {
		return nil, ErrInvalidSize
	}
	if err := validateObstacleChance(opts.ObstacleChance); err != nil {
		return nil, err
	}

	rng, seed := opts.Rand, int64(0)
	if rng == nil {
		seed = opts.Seed
		if seed <= 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("solving maze after %d attempts: %w", attempt-1, err)
		}
		if opts.MaxAttempts > 0 && attempt > opts.MaxAttempts {
			return nil, fmt.Errorf("%w: %d attempts", ErrAttemptsExhausted, opts.MaxAttempts)
		}

		grid, err := Generate(opts.Size, opts.ObstacleChance, rng)
		if err != nil {
			return nil, fmt.Errorf("generating maze: %w", err)
		}

		path, err := ShortestPath(BuildGraph(grid), grid.Start(), grid.Goal())
		if errors.Is(err, ErrNoPath) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if opts.Logger != nil {
			opts.Logger.Info(fmt.Sprintf("solvable %dx%d maze found after %d attempts, path length %d",
				opts.Size, opts.Size, attempt, path.Len()))
		}
		return &Result{
			Grid:     grid,
			Path:     path,
			Attempts: attempt,
			Seed:     seed,
		}, nil
	}
}
