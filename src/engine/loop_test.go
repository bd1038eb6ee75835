package engine

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-backdrop/src/models"
	"market-backdrop/src/scene"
	"market-backdrop/src/simulation"
)

type collectingSink struct {
	mu     sync.Mutex
	frames []*models.MFrame
	refuse bool
}

func (c *collectingSink) SendFrame(f *models.MFrame) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.refuse {
		return false
	}
	c.frames = append(c.frames, f)
	return true
}

func (c *collectingSink) snapshot() []*models.MFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*models.MFrame(nil), c.frames...)
}

func newTestLoop(t *testing.T, sink *collectingSink) (*Loop, *scene.CandleScene) {
	t.Helper()
	cfg := models.DefaultConfig()
	vp := models.MViewport{Width: 800, Height: 600, PixelRatio: 1}
	sc := scene.NewCandleScene(&cfg, simulation.NewSeededRandom(7), vp)
	l, err := NewLoop("session-1", &cfg, sc, vp, sink, nil)
	require.NoError(t, err)
	return l, sc
}

func TestLoop_StepFrameTypes(t *testing.T) {
	sink := &collectingSink{}
	l, _ := newTestLoop(t, sink)
	l.Driver().Start(0)

	first := l.Step(16 * time.Millisecond)
	second := l.Step(32 * time.Millisecond)

	assert.Equal(t, FrameTypeReset, first.Type)
	assert.Equal(t, FrameTypeFrame, second.Type)
	assert.Equal(t, uint64(1), first.Seq)
	assert.Equal(t, uint64(2), second.Seq)
	assert.Equal(t, "session-1", second.Session)
	assert.Equal(t, models.ModeCandles, second.Mode)
	assert.InDelta(t, 16.0, second.DtMs, 1e-9)
	assert.NotEmpty(t, second.Layers[models.LayerMarket])
	assert.NotEmpty(t, second.Layers[models.LayerFX])
	assert.Len(t, sink.snapshot(), 2)
}

func TestLoop_ResizeMarksReset(t *testing.T) {
	l, sc := newTestLoop(t, &collectingSink{})
	l.Driver().Start(0)
	l.Step(16 * time.Millisecond)

	require.True(t, l.Resize(models.MViewport{Width: 320, Height: 200}))
	l.apply(<-l.events)

	f := l.Step(32 * time.Millisecond)
	assert.Equal(t, FrameTypeReset, f.Type)
	assert.Equal(t, 320.0, f.Viewport.Width)
	assert.Equal(t, 35, sc.Bars().Len())
}

// TestLoop_OversizedResizeIsClamped checks that a hostile resize reaches the
// scene bounded instead of sizing buffers from it.
func TestLoop_OversizedResizeIsClamped(t *testing.T) {
	l, sc := newTestLoop(t, &collectingSink{})
	l.Driver().Start(0)

	for i, w := range []float64{1e15, math.Inf(1)} {
		require.True(t, l.Resize(models.MViewport{Width: w, Height: 600}))
		require.NotPanics(t, func() { l.apply(<-l.events) })

		f := l.Step(time.Duration(i+1) * 16 * time.Millisecond)
		assert.Equal(t, FrameTypeReset, f.Type)
		assert.Equal(t, float64(models.MaxViewportSide), f.Viewport.Width)
		assert.Equal(t, 1039, sc.Bars().Len())
	}
}

func TestLoop_PointerIsQueued(t *testing.T) {
	l, sc := newTestLoop(t, &collectingSink{})
	require.True(t, l.Pointer(420, 300))
	assert.Equal(t, models.MPointer{X: 400, Y: 300}, sc.Pointer(), "queued input is not applied yet")

	l.apply(<-l.events)
	l.Driver().Start(0)
	l.Step(16 * time.Millisecond)
	assert.Equal(t, 20.0, sc.Pointer().VX)
}

func TestLoop_EnqueueNeverBlocks(t *testing.T) {
	l, _ := newTestLoop(t, &collectingSink{})
	for i := 0; i < eventQueueSize; i++ {
		require.True(t, l.Pointer(1, 1))
	}
	assert.False(t, l.Pointer(1, 1))
}

func TestLoop_CountsDroppedFrames(t *testing.T) {
	l, _ := newTestLoop(t, &collectingSink{refuse: true})
	l.Driver().Start(0)
	l.Step(16 * time.Millisecond)
	l.Step(32 * time.Millisecond)
	assert.Equal(t, uint64(2), l.Dropped())
}

func TestLoop_RunUntilCancelled(t *testing.T) {
	sink := &collectingSink{}
	l, _ := newTestLoop(t, sink)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	require.Eventually(t, func() bool { return len(sink.snapshot()) >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancel")
	}

	frames := sink.snapshot()
	assert.Equal(t, FrameTypeReset, frames[0].Type)
	for i, f := range frames {
		assert.Equal(t, uint64(i+1), f.Seq)
		assert.LessOrEqual(t, f.DtMs, float64(DefaultMaxDt/time.Millisecond))
	}
}
