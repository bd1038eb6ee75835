package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"market-backdrop/src/config"
	"market-backdrop/src/interfaces"
	"market-backdrop/src/logger"
	"market-backdrop/src/server"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	envPath := flag.String("env", ".env", "optional .env file with BACKDROP_* overrides")
	flag.Parse()

	// 1. Load config from YAML file, then env overrides
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(*envPath); err != nil {
		fmt.Printf("Error applying environment overrides: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	appLogger := logger.NewLogger(cfg.MConfig, cfg.Name)
	appLogger.Info("Mode %s, %d fps, max dt %dms", cfg.Mode, cfg.FrameRate, cfg.MaxDtMs)

	// 3. Start server
	var srv interfaces.IDataExchanger = server.NewFastAPIServer(cfg.MConfig, appLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Critical("Server failed: %v", err)
		}
	case <-quit:
		appLogger.Info("Shutting down...")
		if err := srv.Stop(); err != nil {
			appLogger.Error("Shutdown error: %v", err)
		}
	}
}
