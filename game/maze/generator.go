package maze

import (
	"errors"
	"math"
	"math/rand"
)

var (
	ErrInvalidObstacleChance = errors.New("obstacle chance must be within [0, 1]")
	ErrNilRand               = errors.New("random source is required")
)

// Generate creates a size x size grid where every cell except the start and
// the goal becomes a Wall with probability obstacleChance. The result is not
// guaranteed to be solvable.
func Generate(size int, obstacleChance float64, rng *rand.Rand) (*Grid, error) {
	if err := validateObstacleChance(obstacleChance); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}

	start, goal := grid.Start(), grid.Goal()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := CellPosition{Row: row, Col: col}
			if pos == start || pos == goal {
				continue
			}
			if rng.Float64() < obstacleChance {
				grid.cells[row][col] = Wall
			}
		}
	}

	return grid, nil
}

func validateObstacleChance(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return ErrInvalidObstacleChance
	}
	return nil
}
