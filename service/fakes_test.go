package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*dmn.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*dmn.User)}
}

func (r *memoryUserRepo) Save(user *dmn.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

func (r *memoryUserRepo) ByUsername(username string) (*dmn.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

type memoryMazeRepo struct {
	mu      sync.Mutex
	records []*dmn.MazeRecord
	failing bool
}

func (r *memoryMazeRepo) Save(record *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errors.New("disk full")
	}
	r.records = append(r.records, record)
	return nil
}

func (r *memoryMazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, dmn.ErrMazeNotFound
}

func (r *memoryMazeRepo) ByOwner(ownerID uuid.UUID, limit int64) ([]*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*dmn.MazeRecord
	for _, record := range slices.Backward(r.records) {
		if record.OwnerID == ownerID && int64(len(out)) < limit {
			out = append(out, record)
		}
	}
	return out, nil
}

type memoryCache struct {
	mu      sync.Mutex
	layouts map[string]dmn.MazeLayout
	gets    int
	sets    int
	locks   int
	lockErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{layouts: make(map[string]dmn.MazeLayout)}
}

func (c *memoryCache) Get(_ context.Context, key string) (*dmn.MazeLayout, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	layout, ok := c.layouts[key]
	if !ok {
		return nil, false, nil
	}
	return &layout, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, layout *dmn.MazeLayout) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.layouts[key] = *layout
	return nil
}

func (c *memoryCache) Lock(context.Context, string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func() {}, nil
}

type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

type staticTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
}

func (t *staticTokenizer) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	t.claims = claims
	t.ttl = ttl
	return "token", nil
}

func (t *staticTokenizer) Decode(string) (map[string]interface{}, error) {
	return t.claims, nil
}
