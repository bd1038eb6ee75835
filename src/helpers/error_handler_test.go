package helpers_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"market-backdrop/src/helpers"
	"market-backdrop/src/logger"
)

func TestErrorTypes(t *testing.T) {
	err := helpers.NewSurfaceError("fx", helpers.ErrNoSurface)
	assert.EqualError(t, err, `surface "fx" unavailable: no rendering surface`)
	assert.ErrorIs(t, err, helpers.ErrNoSurface)

	var surfErr *helpers.SurfaceError
	assert.True(t, errors.As(err, &surfErr))
	var sessErr *helpers.SessionError
	assert.False(t, errors.As(err, &sessErr))

	cfgErr := &helpers.ConfigurationError{BackdropError: helpers.BackdropError{Message: "bad mode"}}
	assert.EqualError(t, cfgErr, "bad mode")
	assert.Nil(t, errors.Unwrap(cfgErr))
}

func TestErrorHandler_LevelsAndCount(t *testing.T) {
	var buf bytes.Buffer
	h := helpers.NewErrorHandler(logger.NewWithWriter(&buf, logger.LevelInfo, "ErrorHandler"))

	h.Handle(nil, "noop")
	assert.Zero(t, h.ErrorCount())

	h.Handle(helpers.NewSessionError("abc", errors.New("closed")), "read")
	assert.Equal(t, 1, h.ErrorCount())
	assert.Empty(t, buf.String(), "session errors log at debug level")

	h.Handle(errors.New("boom"), "snapshot")
	assert.Equal(t, 2, h.ErrorCount())
	assert.Contains(t, buf.String(), "ERROR: Error in snapshot: boom")
}
