package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"market-backdrop/src/config"
	"market-backdrop/src/engine"
	"market-backdrop/src/logger"
	"market-backdrop/src/render"
	"market-backdrop/src/scene"
	"market-backdrop/src/simulation"
)

// -----------------------------------------------------------------------------

// render writes a deterministic sequence of SVG frames, useful for
// previewing parameter changes without a browser.
func main() {
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	mode := flag.String("mode", "", "scene mode (candles | trend), defaults to config")
	out := flag.String("out", "frames", "output directory")
	count := flag.Int("frames", 10, "number of SVG files to write")
	every := flag.Int("every", 6, "simulated ticks between written frames")
	seed := flag.Uint64("seed", 1, "random seed")
	width := flag.Float64("width", 0, "viewport width (0 = config)")
	height := flag.Float64("height", 0, "viewport height (0 = config)")
	flag.Parse()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewLogger(cfg.MConfig, "render")

	vp := cfg.Viewport
	if *width > 0 {
		vp.Width = *width
	}
	if *height > 0 {
		vp.Height = *height
	}
	vp = vp.Within(cfg.Limit)

	sc, err := scene.NewScene(cfg.MConfig, *mode, simulation.NewSeededRandom(*seed), vp)
	if err != nil {
		log.Critical("%v", err)
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Critical("Failed to create %s: %v", *out, err)
	}

	market, fx := render.NewDisplayList(), render.NewDisplayList()
	for i := 0; i < *count; i++ {
		// Each call continues the same scene, so frames form a sequence.
		if err := engine.Simulate(cfg.MConfig, sc, market, fx, *every); err != nil {
			log.Critical("Simulation failed: %v", err)
		}
		path := filepath.Join(*out, fmt.Sprintf("%s_%04d.svg", sc.Mode(), i))
		if err := os.WriteFile(path, engine.ComposeSVG(vp, market, fx), 0644); err != nil {
			log.Critical("Failed to write %s: %v", path, err)
		}
	}
	log.Info("Wrote %d %s frames to %s", *count, sc.Mode(), *out)
}
