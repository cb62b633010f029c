package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	apii "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryMazeRepo struct {
	mu      sync.Mutex
	records []*dmn.MazeRecord
}

func (r *memoryMazeRepo) Save(record *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	for j := len(r.records) - 1; j >= 0 && int64(len(out)) < limit; j-- {
		if r.records[j].OwnerID == ownerID {
			out = append(out, r.records[j])
		}
	}
	return out, nil
}

type discardLogger struct{}

func (discardLogger) Info(string)    {}
func (discardLogger) Warning(string) {}
func (discardLogger) Error(string)   {}

type testServer struct {
	engine *gin.Engine
	token  string
	other  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenizer := token.NewJwtService("test-secret", "maze-test")
	generator, err := service.NewMazeService(&memoryMazeRepo{}, nil, discardLogger{}, nil)
	require.NoError(t, err)
	controller, err := NewMazeController(Config{
		Service:    generator,
		Defaults:   dmn.MazeParams{Size: 8, ObstacleChance: 0.3},
		CellPixels: 10,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []apii.Controller{controller},
		AuthorizationMiddleware: identity.Authorize(tokenizer),
	})

	issue := func() string {
		tok, err := tokenizer.Generate(map[string]interface{}{"userID": uuid.NewString()}, time.Hour)
		require.NoError(t, err)
		return tok
	}
	return &testServer{engine: router.Engine(), token: issue(), other: issue()}
}

func (s *testServer) do(method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) generate(t *testing.T, body string) *MazeResponse {
	t.Helper()
	w := s.do(http.MethodPost, "/api/v1/mazes", s.token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var response MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return &response
}

func TestMazeController(t *testing.T) {
	s := newTestServer(t)

	t.Run("Requires a token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/mazes", "", "").Code)
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/mazes", "garbage", "").Code)
	})

	t.Run("Generate with defaults", func(t *testing.T) {
		response := s.generate(t, `{}`)
		assert.Equal(t, 8, response.Size)
		assert.Equal(t, 0.3, response.ObstacleChance)
		assert.Len(t, response.Rows, 8)
		assert.GreaterOrEqual(t, response.PathLength, 14)
		assert.Equal(t, Position{Row: 0, Col: 0}, response.Path[0])
		assert.Equal(t, Position{Row: 7, Col: 7}, response.Path[len(response.Path)-1])
	})

	t.Run("Generate open grid", func(t *testing.T) {
		response := s.generate(t, `{"size": 4, "obstacleChance": 0, "seed": 5}`)
		assert.Equal(t, []string{"....", "....", "....", "...."}, response.Rows)
		assert.Equal(t, 6, response.PathLength)
		assert.Equal(t, int64(5), response.Seed)
	})

	t.Run("Invalid requests", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/mazes", s.token, `{"obstacleChance": 2}`).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/mazes", s.token, `{"size": 1000}`).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/mazes", s.token, `not json`).Code)
	})

	t.Run("Unsolvable within the cap", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/v1/mazes", s.token, `{"size": 3, "obstacleChance": 1, "maxAttempts": 3}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Get, list and image", func(t *testing.T) {
		created := s.generate(t, `{"size": 5, "obstacleChance": 0.2}`)

		w := s.do(http.MethodGet, "/api/v1/mazes/"+created.ID, s.token, "")
		require.Equal(t, http.StatusOK, w.Code)
		var fetched MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, created.Rows, fetched.Rows)

		w = s.do(http.MethodGet, "/api/v1/mazes", s.token, "")
		require.Equal(t, http.StatusOK, w.Code)
		var listed []MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		assert.NotEmpty(t, listed)

		w = s.do(http.MethodGet, "/api/v1/mazes/"+created.ID+"/image", s.token, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		pic, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, 50, pic.Bounds().Dx())

		w = s.do(http.MethodGet, "/api/v1/mazes/"+created.ID+"/image?cell=20", s.token, "")
		require.Equal(t, http.StatusOK, w.Code)
		pic, err = png.Decode(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, 100, pic.Bounds().Dx())

		w = s.do(http.MethodGet, "/api/v1/mazes/"+created.ID+"/image?cell=1", s.token, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Other users cannot see a maze", func(t *testing.T) {
		created := s.generate(t, `{"size": 3, "obstacleChance": 0}`)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/mazes/"+created.ID, s.other, "").Code)

		w := s.do(http.MethodGet, "/api/v1/mazes", s.other, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Unknown and malformed IDs", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/mazes/"+uuid.NewString(), s.token, "").Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/mazes/nope", s.token, "").Code)
	})
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{dmn.ErrMazeNotFound, http.StatusNotFound},
		{dmn.ErrMazeSize, http.StatusBadRequest},
		{fmt.Errorf("%w: 3 attempts", maze.ErrAttemptsExhausted), http.StatusUnprocessableEntity},
		{fmt.Errorf("solving maze after 9 attempts: %w", context.DeadlineExceeded), http.StatusUnprocessableEntity},
		{fmt.Errorf("solving maze after 9 attempts: %w", context.Canceled), http.StatusRequestTimeout},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, statusOf(c.err), c.err.Error())
	}
}
