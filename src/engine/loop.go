package engine

import (
	"context"
	"time"

	"market-backdrop/src/interfaces"
	"market-backdrop/src/logger"
	"market-backdrop/src/models"
	"market-backdrop/src/render"
)

// Frame types sent to the browser.
const (
	FrameTypeReset = "RESET"
	FrameTypeFrame = "FRAME"
)

const eventQueueSize = 64

type eventKind int

const (
	eventPointer eventKind = iota
	eventResize
)

type event struct {
	kind     eventKind
	x, y     float64
	viewport models.MViewport
}

// -----------------------------------------------------------------------------
// Loop
// -----------------------------------------------------------------------------

// Loop is the thin scheduler around a Driver. It owns the scene: input
// events are queued and applied on the loop goroutine between frames, so
// no simulation state is ever touched concurrently.
type Loop struct {
	ID string

	driver   *Driver
	scene    interfaces.IScene
	market   *render.DisplayList
	fx       *render.DisplayList
	sink     interfaces.IFrameSink
	interval time.Duration
	viewport models.MViewport
	logger   *logger.Logger

	events  chan event
	reset   bool
	seq     uint64
	dropped uint64

	// now is the monotonic clock; replaced in tests.
	now func() time.Duration
}

// NewLoop creates a loop for scene rendering at cfg.FrameRate into sink.
func NewLoop(id string, cfg *models.MConfig, scene interfaces.IScene, viewport models.MViewport, sink interfaces.IFrameSink, l *logger.Logger) (*Loop, error) {
	market, fx := render.NewDisplayList(), render.NewDisplayList()
	driver, err := NewDriver(scene, market, fx, time.Duration(cfg.MaxDtMs)*time.Millisecond)
	if err != nil {
		return nil, err
	}

	fps := cfg.FrameRate
	if fps <= 0 {
		fps = 60
	}
	if l == nil {
		l = logger.NewLogger(cfg, "Loop")
	}

	start := time.Now()
	return &Loop{
		ID:       id,
		driver:   driver,
		scene:    scene,
		market:   market,
		fx:       fx,
		sink:     sink,
		interval: time.Second / time.Duration(fps),
		viewport: viewport.Normalized(),
		logger:   l,
		events:   make(chan event, eventQueueSize),
		reset:    true,
		now:      func() time.Duration { return time.Since(start) },
	}, nil
}

// -----------------------------------------------------------------------------
// Input (safe from any goroutine)
// -----------------------------------------------------------------------------

// Pointer queues a pointer move. It reports false if the queue was full.
func (l *Loop) Pointer(x, y float64) bool {
	return l.enqueue(event{kind: eventPointer, x: x, y: y})
}

// Resize queues a viewport change; the scene is rebuilt before the next frame.
func (l *Loop) Resize(viewport models.MViewport) bool {
	return l.enqueue(event{kind: eventResize, viewport: viewport.Normalized()})
}

func (l *Loop) enqueue(ev event) bool {
	select {
	case l.events <- ev:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------
// Run
// -----------------------------------------------------------------------------

// Run produces frames until ctx is cancelled. Cancellation only models the
// session going away; the driver itself has no stop state.
func (l *Loop) Run(ctx context.Context) error {
	l.driver.Start(l.now())

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Debug("Session %s running %s at %v/frame", l.ID, l.scene.Mode(), l.interval)

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("Session %s stopped after %d frames (%d dropped)", l.ID, l.driver.Frames(), l.dropped)
			return nil

		case ev := <-l.events:
			l.apply(ev)

		case <-ticker.C:
			l.Step(l.now())
		}
	}
}

// -----------------------------------------------------------------------------

func (l *Loop) apply(ev event) {
	switch ev.kind {
	case eventPointer:
		l.scene.PointerMoved(ev.x, ev.y)
	case eventResize:
		l.viewport = ev.viewport
		l.scene.Reset(ev.viewport)
		l.reset = true
	}
}

// Step renders one frame for timestamp now and hands it to the sink.
func (l *Loop) Step(now time.Duration) *models.MFrame {
	dt := l.driver.Tick(now)

	frameType := FrameTypeFrame
	if l.reset {
		frameType = FrameTypeReset
		l.reset = false
	}

	l.seq++
	frame := &models.MFrame{
		Type:     frameType,
		Session:  l.ID,
		Seq:      l.seq,
		Mode:     l.scene.Mode(),
		DtMs:     float64(dt) / float64(time.Millisecond),
		Viewport: l.viewport,
		Layers: map[string][]models.MDrawOp{
			models.LayerMarket: l.market.Take(),
			models.LayerFX:     l.fx.Take(),
		},
	}

	if l.sink != nil && !l.sink.SendFrame(frame) {
		l.dropped++
	}
	return frame
}

// -----------------------------------------------------------------------------

func (l *Loop) Driver() *Driver { return l.driver }
func (l *Loop) Dropped() uint64 { return l.dropped }
