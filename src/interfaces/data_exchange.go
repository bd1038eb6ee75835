package interfaces

import "market-backdrop/src/models"

// -----------------------------------------------------------------------------
// IFrameSink receives every rendered frame of one session.
// -----------------------------------------------------------------------------

type IFrameSink interface {
	// -----------------------------------------------------------------------------
	// SendFrame hands a frame to the consumer. It must not block; it returns
	// false when the frame was dropped.
	SendFrame(frame *models.MFrame) bool
}

// -----------------------------------------------------------------------------
// IDataExchanger is the outer service surface.
// -----------------------------------------------------------------------------

type IDataExchanger interface {
	// -----------------------------------------------------------------------------
	// Start the server
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop() error
}
