package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Lines carry prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SOLVER", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("maze ready")
		l.Warning("slow generation")
		l.Error("cache down")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)

		assert.Contains(t, lines[0], config.ColorCyan+"[SOLVER]")
		assert.Contains(t, lines[0], "[INFO]")
		assert.True(t, strings.HasSuffix(lines[0], "maze ready"))
		assert.Contains(t, lines[1], "[WARNING]")
		assert.True(t, strings.HasSuffix(lines[1], "slow generation"))
		assert.Contains(t, lines[2], config.LogErrorColor+"[ERROR]")
		assert.True(t, strings.HasSuffix(lines[2], "cache down"))
	})

	t.Run("Writer is required", func(t *testing.T) {
		_, err := New("APP", config.ColorGreen, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
