// This opens a window showing a random solvable maze and its shortest path.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/gui"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/render"
)

func run() int {
	appLogger, err := logger.New("MAZE-GUI", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Printf("creating logger: %s\n", err)
		return 1
	}

	cfg := config.LoadMaze()

	sprites, err := render.LoadSprites(cfg.StartSprite, cfg.GoalSprite, cfg.CellPixels)
	if err != nil {
		appLogger.Error(fmt.Sprintf("loading sprites: %s", err))
		return 1
	}

	solverLogger, err := logger.New("SOLVER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("creating solver logger: %s", err))
		return 1
	}

	result, err := maze.EnsureSolvable(context.Background(), maze.Options{
		Size:           cfg.Size,
		ObstacleChance: cfg.ObstacleChance,
		MaxAttempts:    cfg.MaxAttempts,
		Logger:         solverLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("generating maze: %s", err))
		return 1
	}

	fmt.Println(result.Grid.StringWithPath(result.Path))

	board := gui.NewMazeBoard(result.Grid, result.Path, sprites, cfg.CellPixels)
	gui.Show("Maze Game with A* Path", board)
	return 0
}

func main() {
	os.Exit(run())
}
