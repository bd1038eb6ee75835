package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"market-backdrop/src/engine"
	"market-backdrop/src/helpers"
	"market-backdrop/src/logger"
	"market-backdrop/src/models"
	"market-backdrop/src/simulation"
	"market-backdrop/src/utils"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var indexHTML []byte

const (
	defaultSnapshotFrames = 120
	maxSnapshotFrames     = 3600
	shutdownTimeout       = 5 * time.Second
)

// -----------------------------------------------------------------------------
// FastAPIServer
// -----------------------------------------------------------------------------

type FastAPIServer struct {
	Config *models.MConfig
	Logger *logger.Logger
	errors *helpers.ErrorHandler
	engine *gin.Engine
	http   *http.Server

	// Browser sessions, owned by the hub goroutine
	sessions   map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	stopOnce   sync.Once

	// Counters read by the REST handlers
	stateMutex   sync.RWMutex
	sessionCount int
	framesSent   uint64
	startedAt    time.Time
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewFastAPIServer(cfg *models.MConfig, l *logger.Logger) *FastAPIServer {
	// Set Gin mode
	if strings.ToUpper(cfg.LogLevel) != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &FastAPIServer{
		Config:     cfg,
		Logger:     l,
		errors:     helpers.NewErrorHandler(l.Named("ErrorHandler")),
		engine:     gin.New(),
		sessions:   make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		startedAt:  time.Now(),
	}
	s.engine.Use(gin.Recovery())

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *FastAPIServer) setupRoutes() {
	s.engine.GET("/", s.getIndex)

	// REST API endpoints
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/config", s.getConfig)
	s.engine.GET("/api/snapshot.svg", s.getSnapshot)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// Handler exposes the router, e.g. for httptest.
func (s *FastAPIServer) Handler() http.Handler {
	return s.engine
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

// Start runs the session hub and serves HTTP until Stop is called.
func (s *FastAPIServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleSessions()

	s.http = &http.Server{Addr: addr, Handler: s.engine}
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// RunHub starts only the session hub; Start calls it implicitly.
func (s *FastAPIServer) RunHub() {
	go s.handleSessions()
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		if s.http != nil {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			err = s.http.Shutdown(ctx)
		}
		close(s.stop)
	})
	return err
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *FastAPIServer) getIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	sessions := s.sessionCount
	frames := s.framesSent
	s.stateMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"sessions":       sessions,
		"frames_sent":    frames,
		"errors":         s.errors.ErrorCount(),
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
		"runtime":        utils.ReadRuntimeStats(),
	})
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mode":       s.Config.Mode,
		"frame_rate": s.Config.FrameRate,
		"max_dt_ms":  s.Config.MaxDtMs,
		"viewport":   s.Config.Viewport,
		"limit":      s.Config.Limit,
		"candles":    s.Config.Candles,
		"fx":         s.Config.FX,
		"trend":      s.Config.Trend,
		"policies": gin.H{
			models.ModeCandles: simulation.PolicyRegenerateOnEvict,
			models.ModeTrend:   simulation.PolicyDriftOnWrap,
		},
	})
}

// -----------------------------------------------------------------------------

// getSnapshot renders a deterministic SVG of one scene after N frames.
func (s *FastAPIServer) getSnapshot(c *gin.Context) {
	frames := queryInt(c, "frames", defaultSnapshotFrames)
	if frames < 1 || frames > maxSnapshotFrames {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("frames must be between 1 and %d", maxSnapshotFrames)})
		return
	}

	svg, err := engine.RenderSnapshot(s.Config, engine.SnapshotOptions{
		Mode:     c.DefaultQuery("mode", s.Config.Mode),
		Viewport: viewportFromQuery(c, s.Config.Viewport, s.Config.Limit),
		Frames:   frames,
		Seed:     queryUint64(c, "seed", 1),
	})
	if err != nil {
		var cfgErr *helpers.ConfigurationError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.errors.Handle(err, "snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "snapshot failed"})
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", svg)
}
