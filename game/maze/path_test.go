package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	steps := []CellPosition{{0, 0}, {0, 1}, {1, 1}}

	t.Run("Membership", func(t *testing.T) {
		path := NewPath(steps)
		assert.Equal(t, 3, path.Len())
		assert.Equal(t, 2, path.Edges())
		assert.True(t, path.Contains(0, 1))
		assert.True(t, path.Has(CellPosition{1, 1}))
		assert.False(t, path.Contains(1, 0))
	})

	t.Run("Steps are copied", func(t *testing.T) {
		input := append([]CellPosition(nil), steps...)
		path := NewPath(input)
		input[0] = CellPosition{9, 9}
		assert.Equal(t, CellPosition{0, 0}, path.Steps()[0])

		out := path.Steps()
		out[1] = CellPosition{9, 9}
		assert.Equal(t, CellPosition{0, 1}, path.Steps()[1])
	})

	t.Run("Nil path is empty", func(t *testing.T) {
		var path *Path
		assert.Equal(t, 0, path.Len())
		assert.Equal(t, 0, path.Edges())
		assert.False(t, path.Contains(0, 0))
		assert.Nil(t, path.Steps())
	})

	t.Run("Validation against a grid", func(t *testing.T) {
		grid, _ := ParseGrid([]string{"..", "#."})

		assert.NoError(t, NewPath(steps).ValidOn(grid))
		assert.ErrorIs(t, NewPath(nil).ValidOn(grid), ErrInvalidPath)
		assert.ErrorIs(t, NewPath(steps[:2]).ValidOn(grid), ErrInvalidPath)
		assert.ErrorIs(t, NewPath([]CellPosition{{0, 0}, {1, 1}}).ValidOn(grid), ErrInvalidPath)
		assert.ErrorIs(t, NewPath([]CellPosition{{0, 0}, {1, 0}, {1, 1}}).ValidOn(grid), ErrInvalidPath)
	})
}
