// Package mazeapi serves generated mazes as JSON and PNG.
package mazeapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageCellPixels = 120

// MazeController serves the maze routes.
type MazeController struct {
	mazeService i.MazeGenerator
	defaults    dmn.MazeParams
	cellPixels  int
	sprites     render.Sprites
}

// Config holds the settings of a MazeController.
type Config struct {
	Service    i.MazeGenerator
	Defaults   dmn.MazeParams // Size and ObstacleChance of requests that omit them
	CellPixels int            // Default cell side of rendered images
	Sprites    render.Sprites // Optional start and goal markers
}

// NewMazeController initializes a MazeController.
func NewMazeController(cfg Config) (*MazeController, error) {
	if cfg.Service == nil {
		return nil, errors.New("maze service is required")
	}
	if cfg.CellPixels <= 0 {
		cfg.CellPixels = render.DefaultCellPixels
	}
	return &MazeController{
		mazeService: cfg.Service,
		defaults:    cfg.Defaults,
		cellPixels:  cfg.CellPixels,
		sprites:     cfg.Sprites,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.list)
		mazes.GET("/:ID", mc.get)
		mazes.GET("/:ID/image", mc.image)
	}
}

func (mc *MazeController) generate(ctx *gin.Context) {
	ownerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := dmn.MazeParams{
		Size:           request.Size,
		ObstacleChance: mc.defaults.ObstacleChance,
		Seed:           request.Seed,
		MaxAttempts:    request.MaxAttempts,
	}
	if params.Size == 0 {
		params.Size = mc.defaults.Size
	}
	if request.ObstacleChance != nil {
		params.ObstacleChance = *request.ObstacleChance
	}

	record, err := mc.mazeService.Generate(ctx.Request.Context(), ownerID, params)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toMazeResponse(record))
}

func (mc *MazeController) list(ctx *gin.Context) {
	ownerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	records, err := mc.mazeService.ByOwner(ownerID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	response := make([]*MazeResponse, 0, len(records))
	for _, record := range records {
		response = append(response, toMazeResponse(record))
	}
	ctx.JSON(http.StatusOK, response)
}

func (mc *MazeController) get(ctx *gin.Context) {
	record, ok := mc.record(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, toMazeResponse(record))
}

// image renders the maze as a PNG. The optional cell query parameter sets
// the side of one cell in pixels.
func (mc *MazeController) image(ctx *gin.Context) {
	cellPixels := mc.cellPixels
	if raw := ctx.Query("cell"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 3 || n > maxImageCellPixels {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("cell must be between 3 and %d", maxImageCellPixels)})
			return
		}
		cellPixels = n
	}

	record, ok := mc.record(ctx)
	if !ok {
		return
	}

	grid, path, err := record.Layout.ShortestPath()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "stored maze is corrupt"})
		return
	}

	board, err := render.NewBoard(grid, path, cellPixels)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var sprites render.Sprites
	if cellPixels == mc.cellPixels {
		sprites = mc.sprites
	}

	var buf bytes.Buffer
	caption := fmt.Sprintf("seed %d, path %d steps", record.Params.Seed, path.Edges())
	if err := render.EncodePNG(&buf, board, sprites, caption); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// record loads the maze named by the ID parameter and writes the error
// response when it cannot.
func (mc *MazeController) record(ctx *gin.Context) (*dmn.MazeRecord, bool) {
	ownerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, false
	}

	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return nil, false
	}

	record, err := mc.mazeService.ByID(ownerID, ID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return record, true
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, dmn.ErrMazeSize),
		errors.Is(err, dmn.ErrObstacleChance),
		errors.Is(err, dmn.ErrNegativeSeed),
		errors.Is(err, dmn.ErrNegativeAttempt):
		return http.StatusBadRequest
	case errors.Is(err, maze.ErrAttemptsExhausted),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
