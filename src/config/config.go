package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"market-backdrop/src/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides, read after the YAML file.
const (
	EnvHost      = "BACKDROP_HOST"
	EnvPort      = "BACKDROP_PORT"
	EnvLogLevel  = "BACKDROP_LOG_LEVEL"
	EnvMode      = "BACKDROP_MODE"
	EnvFrameRate = "BACKDROP_FPS"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a Config from a YAML file. Keys missing from the file
// keep their defaults.
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	return Parse(data)
}

// -----------------------------------------------------------------------------

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	modelConfig := models.DefaultConfig()
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Default returns the built-in configuration.
func Default() *Config {
	c := models.DefaultConfig()
	return &Config{MConfig: &c}
}

// -----------------------------------------------------------------------------

// ApplyEnv loads envPath (if present) into the process environment and
// applies the BACKDROP_* overrides. A missing file is not an error.
func (c *Config) ApplyEnv(envPath string) error {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: Could not load %s file: %v", envPath, err)
		}
	}

	c.Host = getEnvString(EnvHost, c.Host)
	c.Port = getEnvInt(EnvPort, c.Port)
	c.LogLevel = getEnvString(EnvLogLevel, c.LogLevel)
	c.Mode = getEnvString(EnvMode, c.Mode)
	c.FrameRate = getEnvInt(EnvFrameRate, c.FrameRate)

	return c.Validate()
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Server
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Driver
	if c.Mode != models.ModeCandles && c.Mode != models.ModeTrend {
		return fmt.Errorf("mode must be %q or %q, got %q", models.ModeCandles, models.ModeTrend, c.Mode)
	}
	if c.FrameRate <= 0 || c.FrameRate > 240 {
		return fmt.Errorf("frame rate must be between 1 and 240, got %d", c.FrameRate)
	}
	if c.MaxDtMs <= 0 {
		return fmt.Errorf("max dt must be greater than 0")
	}
	if c.Limit.MaxWidth <= 0 || c.Limit.MaxWidth > models.MaxViewportSide ||
		c.Limit.MaxHeight <= 0 || c.Limit.MaxHeight > models.MaxViewportSide {
		return fmt.Errorf("viewport limit must be within (0, %d]", models.MaxViewportSide)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("default viewport must have a positive size")
	}
	if c.Viewport.Width > c.Limit.MaxWidth || c.Viewport.Height > c.Limit.MaxHeight {
		return fmt.Errorf("default viewport %vx%v exceeds the viewport limit", c.Viewport.Width, c.Viewport.Height)
	}

	// Candles
	if c.Candles.BarWidth <= 0 || c.Candles.Gap < 0 {
		return fmt.Errorf("bar width must be positive and gap non-negative")
	}
	if c.Candles.GridStep != 0 && c.Candles.GridStep < 8 {
		return fmt.Errorf("grid step must be 0 (off) or at least 8, got %v", c.Candles.GridStep)
	}
	if c.Candles.ScrollRate <= 0 {
		return fmt.Errorf("scroll rate must be greater than 0")
	}
	if c.Candles.Volatility < 0 || c.Candles.Margin < 0 {
		return fmt.Errorf("volatility and margin cannot be negative")
	}

	// FX
	if c.FX.ParticleCap <= 0 {
		return fmt.Errorf("particle cap must be greater than 0")
	}
	if c.FX.MinSpawn < 0 || c.FX.MaxSpawn < c.FX.MinSpawn {
		return fmt.Errorf("invalid spawn bounds [%d, %d]", c.FX.MinSpawn, c.FX.MaxSpawn)
	}
	if c.FX.Damping < 0 || c.FX.Damping >= 1 {
		return fmt.Errorf("damping must be in [0, 1), got %v", c.FX.Damping)
	}
	if c.FX.DecayRate <= 0 {
		return fmt.Errorf("decay rate must be greater than 0")
	}

	// Trend
	if c.Trend.Lines < 1 {
		return fmt.Errorf("at least one trend line must be configured")
	}
	if c.Trend.SampleStep < 1 || c.Trend.WrapBound <= 0 {
		return fmt.Errorf("trend sample step must be at least 1 and wrap bound greater than 0")
	}
	if c.Trend.MaxSpeed < c.Trend.MinSpeed || c.Trend.MinSpeed < 0 {
		return fmt.Errorf("invalid trend speed range [%v, %v]", c.Trend.MinSpeed, c.Trend.MaxSpeed)
	}
	if c.Trend.Sparkles < 0 {
		return fmt.Errorf("sparkle count cannot be negative")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}

// -----------------------------------------------------------------------------
// Env helpers
// -----------------------------------------------------------------------------

func getEnvString(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Printf("Warning: ignoring %s=%q: %v", key, v, err)
		return defaultValue
	}
	return n
}
