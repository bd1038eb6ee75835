package models

// Scene modes.
const (
	ModeCandles = "candles"
	ModeTrend   = "trend"
)

// MConfig Structure
type MConfig struct {
	Name      string         `yaml:"name"`
	Host      string         `yaml:"host"`
	Port      int            `yaml:"port"`
	LogLevel  string         `yaml:"log_level"`
	Mode      string         `yaml:"mode"`
	FrameRate int            `yaml:"frame_rate"`
	MaxDtMs   int            `yaml:"max_dt_ms"`
	Viewport  MViewport      `yaml:"viewport"`
	Limit     MViewportLimit `yaml:"viewport_limit"`
	Candles   MCandleConfig  `yaml:"candles"`
	FX        MFXConfig      `yaml:"fx"`
	Trend     MTrendConfig   `yaml:"trend"`
}

// MCandleConfig holds the candlestick layer geometry and random walk.
type MCandleConfig struct {
	BarWidth    float64 `yaml:"bar_width" json:"bar_width"`
	Gap         float64 `yaml:"gap" json:"gap"`
	Margin      float64 `yaml:"margin" json:"margin"`
	ScrollRate  float64 `yaml:"scroll_rate" json:"scroll_rate"` // px per second
	Volatility  float64 `yaml:"volatility" json:"volatility"`
	BasePrice   float64 `yaml:"base_price" json:"base_price"`
	TopInset    float64 `yaml:"top_inset" json:"top_inset"`
	BottomInset float64 `yaml:"bottom_inset" json:"bottom_inset"`
	LeftInset   float64 `yaml:"left_inset" json:"left_inset"`
	GridStep    float64 `yaml:"grid_step" json:"grid_step"`
	MinBody     float64 `yaml:"min_body" json:"min_body"`
}

// SlotWidth is the horizontal distance consumed by one bar.
func (c MCandleConfig) SlotWidth() float64 {
	return c.BarWidth + c.Gap
}

// MFXConfig holds the particle and bloom parameters.
type MFXConfig struct {
	ParticleCap int     `yaml:"particle_cap" json:"particle_cap"`
	MinSpawn    int     `yaml:"min_spawn" json:"min_spawn"`
	MaxSpawn    int     `yaml:"max_spawn" json:"max_spawn"`
	SpeedCap    float64 `yaml:"speed_cap" json:"speed_cap"`
	DecayRate   float64 `yaml:"decay_rate" json:"decay_rate"` // life per second
	Damping     float64 `yaml:"damping" json:"damping"`       // per frame
	Inherit     float64 `yaml:"inherit" json:"inherit"`
	Jitter      float64 `yaml:"jitter" json:"jitter"`
	Spread      float64 `yaml:"spread" json:"spread"`
	BloomRadius float64 `yaml:"bloom_radius" json:"bloom_radius"`
}

// MTrendConfig holds the trend line variant parameters.
type MTrendConfig struct {
	Lines      int     `yaml:"lines" json:"lines"`
	SampleStep float64 `yaml:"sample_step" json:"sample_step"`
	WrapBound  float64 `yaml:"wrap_bound" json:"wrap_bound"`
	Volatility float64 `yaml:"volatility" json:"volatility"`
	Drift      float64 `yaml:"drift" json:"drift"`
	MinSpeed   float64 `yaml:"min_speed" json:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed" json:"max_speed"`
	Sparkles   int     `yaml:"sparkles" json:"sparkles"`
}

// DefaultCandleConfig is the landing page look.
func DefaultCandleConfig() MCandleConfig {
	return MCandleConfig{
		BarWidth:    10,
		Gap:         6,
		Margin:      240,
		ScrollRate:  60,
		Volatility:  1.2,
		BasePrice:   100,
		TopInset:    110,
		BottomInset: 120,
		LeftInset:   30,
		GridStep:    70,
		MinBody:     3,
	}
}

func DefaultFXConfig() MFXConfig {
	return MFXConfig{
		ParticleCap: 220,
		MinSpawn:    2,
		MaxSpawn:    10,
		SpeedCap:    20,
		DecayRate:   1.6,
		Damping:     0.96,
		Inherit:     0.03,
		Jitter:      1.4,
		Spread:      2,
		BloomRadius: 120,
	}
}

func DefaultTrendConfig() MTrendConfig {
	return MTrendConfig{
		Lines:      3,
		SampleStep: 12,
		WrapBound:  160,
		Volatility: 4,
		Drift:      24,
		MinSpeed:   14,
		MaxSpeed:   36,
		Sparkles:   24,
	}
}

// DefaultConfig returns a complete configuration; YAML values are decoded on top of it.
func DefaultConfig() MConfig {
	return MConfig{
		Name:      "market-backdrop",
		Host:      "127.0.0.1",
		Port:      8088,
		LogLevel:  "INFO",
		Mode:      ModeCandles,
		FrameRate: 60,
		MaxDtMs:   50,
		Viewport:  MViewport{Width: 1280, Height: 720, PixelRatio: 1},
		Limit:     MViewportLimit{MaxWidth: MaxViewportSide, MaxHeight: MaxViewportSide},
		Candles:   DefaultCandleConfig(),
		FX:        DefaultFXConfig(),
		Trend:     DefaultTrendConfig(),
	}
}
