package tictactoe

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogObserver(t *testing.T) {
	// Given: a controller logging to a buffer at debug level
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	controller := NewGameController(minimax.Exhaustive{}, WithObserver(NewLogObserver(logger)))

	// When: X plays
	_, err := controller.Play(entity.Move{Row: 1, Col: 1})
	require.NoError(t, err)

	// Then: both placements are logged with the board
	out := buf.String()
	assert.Contains(t, out, `"msg":"state transition"`)
	assert.Contains(t, out, `"component":"game_controller"`)
	assert.Contains(t, out, `"board":"___/_X_/___"`)
	assert.Contains(t, out, `"board":"O__/_X_/___"`)
}
