package engine

import (
	"time"

	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
	"market-backdrop/src/render"
	"market-backdrop/src/scene"
	"market-backdrop/src/simulation"
)

// SnapshotBackground is painted under a snapshot; the page behind the canvases
// supplies it in the browser.
var SnapshotBackground = models.RGBA(11, 15, 23, 1)

// SnapshotOptions selects what RenderSnapshot draws.
type SnapshotOptions struct {
	Mode     string
	Viewport models.MViewport
	Frames   int
	Seed     uint64
}

// RenderSnapshot simulates Frames ticks at the configured frame rate with a
// seeded random stream and returns the last frame as SVG. Equal options
// always yield identical output.
func RenderSnapshot(cfg *models.MConfig, opts SnapshotOptions) ([]byte, error) {
	vp := opts.Viewport.Normalized()
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = cfg.Viewport
	}

	sc, err := scene.NewScene(cfg, opts.Mode, simulation.NewSeededRandom(opts.Seed), vp)
	if err != nil {
		return nil, err
	}

	market, fx := render.NewDisplayList(), render.NewDisplayList()
	if err := Simulate(cfg, sc, market, fx, opts.Frames); err != nil {
		return nil, err
	}

	return ComposeSVG(vp, market, fx), nil
}

// ComposeSVG stacks the recorded market and fx layers over the snapshot
// background.
func ComposeSVG(vp models.MViewport, market, fx *render.DisplayList) []byte {
	svg := render.NewSVGSurface(vp.Width, vp.Height)
	svg.SetBackground(SnapshotBackground)
	render.Replay(market.Ops(), svg)
	svg.NextLayer()
	render.Replay(fx.Ops(), svg)
	return svg.Bytes()
}

// Simulate runs frames ticks of a fixed 1/FrameRate step. Only the last
// frame's ops are left in market and fx.
func Simulate(cfg *models.MConfig, sc interfaces.IScene, market, fx *render.DisplayList, frames int) error {
	driver, err := NewDriver(sc, market, fx, time.Duration(cfg.MaxDtMs)*time.Millisecond)
	if err != nil {
		return err
	}
	if frames < 1 {
		frames = 1
	}
	fps := cfg.FrameRate
	if fps <= 0 {
		fps = 60
	}
	step := time.Second / time.Duration(fps)

	driver.Start(0)
	for i := 1; i <= frames; i++ {
		market.Reset()
		fx.Reset()
		driver.Tick(time.Duration(i) * step)
	}
	return nil
}
