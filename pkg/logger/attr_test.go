package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/screenkit/pkg/logger"
	"github.com/dmitrymomot/screenkit/pkg/screenstate"
)

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.Any().(error).Error())

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
}

func TestComponentAttr(t *testing.T) {
	t.Parallel()

	attr := logger.Component("updates")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "updates", attr.Value.String())
}

func TestPhaseAttr(t *testing.T) {
	t.Parallel()

	attr := logger.Phase(screenstate.PhaseLoading)
	assert.Equal(t, "phase", attr.Key)
	assert.Equal(t, "loading", attr.Value.String())

	assert.Equal(t, slog.Attr{}, logger.Phase(nil))
}

func TestDurationAttr(t *testing.T) {
	t.Parallel()

	attr := logger.Duration(2 * time.Second)
	assert.Equal(t, "duration", attr.Key)
	assert.Equal(t, 2*time.Second, attr.Value.Duration())
}

func TestEventAttr(t *testing.T) {
	t.Parallel()

	attr := logger.Event("fetch_triggered")
	assert.Equal(t, "event", attr.Key)
	assert.Equal(t, "fetch_triggered", attr.Value.String())
}
