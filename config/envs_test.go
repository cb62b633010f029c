package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMaze(t *testing.T) {
	t.Run("Defaults match the reference scenario", func(t *testing.T) {
		for _, key := range []string{"MAZE_SIZE", "MAZE_OBSTACLE_CHANCE", "MAZE_MAX_ATTEMPTS", "MAZE_CELL_PIXELS", "MAZE_START_SPRITE", "MAZE_GOAL_SPRITE"} {
			t.Setenv(key, "")
		}
		t.Setenv("MAZE_START_SPRITE", DefaultStartSprite)
		t.Setenv("MAZE_GOAL_SPRITE", DefaultGoalSprite)

		cfg := LoadMaze()
		assert.Equal(t, 8, cfg.Size)
		assert.Equal(t, 0.3, cfg.ObstacleChance)
		assert.Equal(t, 0, cfg.MaxAttempts)
		assert.Equal(t, 60, cfg.CellPixels)
		assert.Equal(t, "robot.png", cfg.StartSprite)
		assert.Equal(t, "treasure2.png", cfg.GoalSprite)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("MAZE_SIZE", "12")
		t.Setenv("MAZE_OBSTACLE_CHANCE", "0.45")
		t.Setenv("MAZE_MAX_ATTEMPTS", "500")
		t.Setenv("MAZE_CELL_PIXELS", "32")
		t.Setenv("MAZE_START_SPRITE", "assets/start.png")
		t.Setenv("MAZE_GOAL_SPRITE", "assets/goal.png")

		cfg := LoadMaze()
		assert.Equal(t, MazeConfig{
			Size:           12,
			ObstacleChance: 0.45,
			MaxAttempts:    500,
			CellPixels:     32,
			StartSprite:    "assets/start.png",
			GoalSprite:     "assets/goal.png",
		}, cfg)
	})
}

func TestLoadServer(t *testing.T) {
	for key, value := range map[string]string{
		"DB_HOST":              "localhost",
		"DB_PORT":              "27017",
		"DB_USER":              "maze",
		"DB_PASS":              "secret",
		"DB_NAME":              "mazes",
		"REDIS_ADDR":           "localhost:6379",
		"JWT_SECRET":           "jwt-secret",
		"JWT_ISSUER":           "maze",
		"MAZE_SIZE":            "10",
		"MAZE_OBSTACLE_CHANCE": "0.2",
	} {
		t.Setenv(key, value)
	}

	loads := 0
	original := loadEnvFile
	loadEnvFile = func(...string) error {
		loads++
		return errors.New("open .env: no such file or directory")
	}
	t.Cleanup(func() { loadEnvFile = original })

	cfg := LoadServer()
	assert.Equal(t, 1, loads)
	assert.Equal(t, 27017, cfg.DBPort)
	assert.Equal(t, 10, cfg.Maze.Size)
	assert.Equal(t, 0.2, cfg.Maze.ObstacleChance)
	assert.Equal(t, LoadMaze(), cfg.Maze)
	assert.Equal(t, 2, loads)
}

func TestParseEnv(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		t.Setenv("TEST_INT", "")
		v, err := parseIntEnv("TEST_INT", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		t.Setenv("TEST_INT", "42")
		v, err = parseIntEnv("TEST_INT", 7)
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		t.Setenv("TEST_INT", "forty")
		_, err = parseIntEnv("TEST_INT", 7)
		assert.Error(t, err)
	})

	t.Run("Float", func(t *testing.T) {
		t.Setenv("TEST_FLOAT", "0.25")
		v, err := parseFloatEnv("TEST_FLOAT", 1)
		require.NoError(t, err)
		assert.Equal(t, 0.25, v)

		t.Setenv("TEST_FLOAT", "a lot")
		_, err = parseFloatEnv("TEST_FLOAT", 1)
		assert.Error(t, err)
	})

	t.Run("String default", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("TEST_SURELY_UNSET_KEY", "fallback"))
	})
}
