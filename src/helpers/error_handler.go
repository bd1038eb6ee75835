package helpers

import (
	"errors"
	"fmt"
	"sync"

	"market-backdrop/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type BackdropError struct {
	Message string
	Cause   error
}

func (e *BackdropError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BackdropError) Unwrap() error {
	return e.Cause
}

// Distinct error types for errors.As
type ConfigurationError struct{ BackdropError }
type SurfaceError struct{ BackdropError }
type SessionError struct{ BackdropError }

// ErrNoSurface is returned when a driver is built without a drawing surface.
var ErrNoSurface = errors.New("no rendering surface")

// NewSurfaceError wraps a missing or unusable surface.
func NewSurfaceError(layer string, cause error) error {
	return &SurfaceError{BackdropError{Message: fmt.Sprintf("surface %q unavailable", layer), Cause: cause}}
}

// NewSessionError wraps a failure of one browser session.
func NewSessionError(session string, cause error) error {
	return &SessionError{BackdropError{Message: fmt.Sprintf("session %s", session), Cause: cause}}
}

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

type ErrorHandler struct {
	Logger     *logger.Logger
	mu         sync.Mutex
	errorCount int
}

func NewErrorHandler(l *logger.Logger) *ErrorHandler {
	if l == nil {
		l = logger.NewLogger(nil, "ErrorHandler")
	}
	return &ErrorHandler{Logger: l}
}

// -----------------------------------------------------------------------------

// Handle logs err with its context. Session errors are expected churn
// (browsers closing tabs) and are logged at debug level.
func (e *ErrorHandler) Handle(err error, context string) {
	if err == nil {
		return
	}

	e.mu.Lock()
	e.errorCount++
	e.mu.Unlock()

	var sessErr *SessionError
	if errors.As(err, &sessErr) {
		e.Logger.Debug("Error in %s: %v", context, err)
		return
	}
	e.Logger.Error("Error in %s: %v", context, err)
}

// -----------------------------------------------------------------------------

// ErrorCount returns how many errors were handled.
func (e *ErrorHandler) ErrorCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errorCount
}
