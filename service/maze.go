package service

import (
	"context"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxAttempts   = 10_000
	defaultGenerateLimit = 10 * time.Second
	defaultListLimit     = 50
)

// MazeOptions tunes a MazeService. Zero values take the defaults.
type MazeOptions struct {
	// MaxAttempts caps generation when a request leaves it unset.
	MaxAttempts int
	// Timeout bounds a single generation.
	Timeout time.Duration
	// ListLimit bounds the number of mazes ByOwner returns.
	ListLimit int64
}

// MazeService generates solvable mazes, remembers seeded layouts in a cache
// and stores every maze for its owner.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.MazeCache
	logger i.Logger
	opts   *MazeOptions
}

// NewMazeService creates a MazeService. cache may be nil.
func NewMazeService(repo i.MazeRepo, cache i.MazeCache, logger i.Logger, opts *MazeOptions) (i.MazeGenerator, error) {
	if repo == nil || logger == nil {
		return nil, ErrNilDependency
	}
	if opts == nil {
		opts = &MazeOptions{}
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultGenerateLimit
	}
	if opts.ListLimit <= 0 {
		opts.ListLimit = defaultListLimit
	}

	return &MazeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

func (s *MazeService) Generate(ctx context.Context, ownerID uuid.UUID, params dmn.MazeParams) (*dmn.MazeRecord, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.MaxAttempts == 0 {
		params.MaxAttempts = s.opts.MaxAttempts
	}

	layout, err := s.layout(ctx, params)
	if err != nil {
		return nil, err
	}

	params.Seed = layout.Seed
	record := dmn.NewMazeRecord(ownerID, params, *layout)
	if err := s.repo.Save(record); err != nil {
		return nil, fmt.Errorf("saving maze: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Maze %s generated for %s: %dx%d, seed %d, %d attempts",
		record.ID, ownerID, params.Size, params.Size, layout.Seed, layout.Attempts))
	return record, nil
}

// layout serves seeded requests from the cache, holding the key's lock while
// generating so concurrent requests for one seed solve it once.
func (s *MazeService) layout(ctx context.Context, params dmn.MazeParams) (*dmn.MazeLayout, error) {
	if s.cache == nil || !params.Seeded() {
		return s.solve(ctx, params)
	}

	key := params.CacheKey()
	if cached, ok := s.cached(ctx, key); ok {
		return withinCap(cached, params)
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Locking %s: %v", key, err))
		return s.solve(ctx, params)
	}
	defer unlock()

	if cached, ok := s.cached(ctx, key); ok {
		return withinCap(cached, params)
	}

	layout, err := s.solve(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, layout); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching %s: %v", key, err))
	}
	return layout, nil
}

// withinCap rejects a cached layout that took more attempts than params
// allow. Seeded generation is deterministic, so solving again would fail too.
func withinCap(layout *dmn.MazeLayout, params dmn.MazeParams) (*dmn.MazeLayout, error) {
	if params.MaxAttempts > 0 && layout.Attempts > params.MaxAttempts {
		return nil, fmt.Errorf("%w: %d attempts", maze.ErrAttemptsExhausted, params.MaxAttempts)
	}
	return layout, nil
}

func (s *MazeService) cached(ctx context.Context, key string) (*dmn.MazeLayout, bool) {
	layout, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Reading %s from cache: %v", key, err))
		return nil, false
	}
	return layout, ok
}

func (s *MazeService) solve(ctx context.Context, params dmn.MazeParams) (*dmn.MazeLayout, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	result, err := maze.EnsureSolvable(ctx, maze.Options{
		Size:           params.Size,
		ObstacleChance: params.ObstacleChance,
		Seed:           params.Seed,
		MaxAttempts:    params.MaxAttempts,
	})
	if err != nil {
		return nil, err
	}
	layout := dmn.NewMazeLayout(result)
	return &layout, nil
}

func (s *MazeService) ByID(ownerID, id uuid.UUID) (*dmn.MazeRecord, error) {
	record, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}
	if record.OwnerID != ownerID {
		return nil, dmn.ErrMazeNotFound
	}
	return record, nil
}

func (s *MazeService) ByOwner(ownerID uuid.UUID) ([]*dmn.MazeRecord, error) {
	return s.repo.ByOwner(ownerID, s.opts.ListLimit)
}
