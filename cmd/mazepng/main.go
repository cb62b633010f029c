// This writes a random solvable maze and its shortest path to a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/render"
)

func run() int {
	cfg := config.LoadMaze()

	var size, maxAttempts, cellPixels int
	var chance float64
	var seed int64
	var timeout time.Duration
	var outFilename, startSprite, goalSprite string
	var noSprites, quiet bool
	flag.IntVar(&size, "size", cfg.Size,
		"The number of rows and columns of the maze.")
	flag.Float64Var(&chance, "obstacle_chance", cfg.ObstacleChance,
		"The probability, from 0 to 1, that a cell becomes a wall.")
	flag.Int64Var(&seed, "random_seed", -1,
		"If positive, specifies the random seed to use.")
	flag.IntVar(&maxAttempts, "max_attempts", cfg.MaxAttempts,
		"Give up after this many unsolvable mazes. 0 retries forever.")
	flag.DurationVar(&timeout, "timeout", 0,
		"Give up after this long. 0 waits forever.")
	flag.IntVar(&cellPixels, "cell_pixels", cfg.CellPixels,
		"The side of one maze cell, in pixels.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	flag.StringVar(&startSprite, "start_sprite", cfg.StartSprite,
		"The image drawn over the start cell.")
	flag.StringVar(&goalSprite, "goal_sprite", cfg.GoalSprite,
		"The image drawn over the goal cell.")
	flag.BoolVar(&noSprites, "no_sprites", false,
		"If set, draws the maze without start and goal sprites.")
	flag.BoolVar(&quiet, "quiet", false,
		"If set, does not print the maze as text.")
	flag.Parse()
	if outFilename == "" {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	log, err := logger.New("MAZE-PNG", config.ColorBlue, os.Stderr)
	if err != nil {
		fmt.Printf("Error creating logger: %s\n", err)
		return 1
	}

	var sprites render.Sprites
	if !noSprites {
		sprites, err = render.LoadSprites(startSprite, goalSprite, cellPixels)
		if err != nil {
			log.Error(fmt.Sprintf("Error loading sprites: %s", err))
			return 1
		}
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := maze.EnsureSolvable(ctx, maze.Options{
		Size:           size,
		ObstacleChance: chance,
		Seed:           seed,
		MaxAttempts:    maxAttempts,
		Logger:         log,
	})
	if err != nil {
		log.Error(fmt.Sprintf("Failed generating maze: %s", err))
		return 1
	}
	if !quiet {
		fmt.Println(result.Grid.StringWithPath(result.Path))
	}

	board, err := render.NewBoard(result.Grid, result.Path, cellPixels)
	if err != nil {
		log.Error(fmt.Sprintf("Error drawing maze: %s", err))
		return 1
	}

	f, err := os.Create(outFilename)
	if err != nil {
		log.Error(fmt.Sprintf("Error creating output file %s: %s", outFilename, err))
		return 1
	}
	defer f.Close()

	caption := fmt.Sprintf("seed %d, path %d steps", result.Seed, result.Path.Edges())
	if err := render.EncodePNG(f, board, sprites, caption); err != nil {
		log.Error(fmt.Sprintf("Error writing image to %s: %s", outFilename, err))
		return 1
	}
	log.Info(fmt.Sprintf("Image %s written OK.", outFilename))
	return 0
}

func main() {
	os.Exit(run())
}
