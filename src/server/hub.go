package server

import (
	"context"
	"net/http"

	"market-backdrop/src/engine"
	"market-backdrop/src/models"
	"market-backdrop/src/scene"
	"market-backdrop/src/simulation"
	"market-backdrop/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// handleSessions is the main Hub loop. It is the only goroutine touching
// s.sessions; counters for the REST handlers are mirrored under stateMutex.
func (s *FastAPIServer) handleSessions() {
	for {
		select {
		case client := <-s.register:
			s.sessions[client] = struct{}{}
			s.setSessionCount(len(s.sessions))
			s.Logger.Info("Session %s opened (%s, %d active)", client.id, client.loop.Driver().Scene().Mode(), len(s.sessions))

		case client := <-s.unregister:
			if _, ok := s.sessions[client]; ok {
				delete(s.sessions, client)
				close(client.send)
				s.setSessionCount(len(s.sessions))
				s.Logger.Info("Session %s closed (%d active)", client.id, len(s.sessions))
				if len(s.sessions) == 0 {
					utils.ReleaseMemory()
				}
			}

		case <-s.stop:
			for client := range s.sessions {
				client.cancel()
				client.conn.Close()
			}
			return
		}
	}
}

func (s *FastAPIServer) setSessionCount(n int) {
	s.stateMutex.Lock()
	s.sessionCount = n
	s.stateMutex.Unlock()
}

func (s *FastAPIServer) countFrame() {
	s.stateMutex.Lock()
	s.framesSent++
	s.stateMutex.Unlock()
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 64 * 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

// handleWebSocket opens one simulation session per socket.
// Query: mode=candles|trend, width, height, dpr.
func (s *FastAPIServer) handleWebSocket(c *gin.Context) {
	viewport := viewportFromQuery(c, s.Config.Viewport, s.Config.Limit)
	sc, err := scene.NewScene(s.Config, c.Query("mode"), simulation.NewRandom(), viewport)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	client := &Client{
		id:       uuid.NewString(),
		hub:      s,
		conn:     conn,
		send:     make(chan *models.MFrame, sendQueueSize),
		cancel:   cancel,
		loopDone: make(chan struct{}),
	}

	loop, err := engine.NewLoop(client.id, s.Config, sc, viewport, client, s.Logger.Named("Session"))
	if err != nil {
		cancel()
		s.errors.Handle(err, "session setup")
		conn.Close()
		return
	}
	client.loop = loop

	select {
	case s.register <- client:
	case <-s.stop:
		cancel()
		conn.Close()
		return
	}

	go client.runLoop(ctx)
	go client.writePump()
	go client.readPump()
}
