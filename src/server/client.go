package server

import (
	"context"
	"encoding/json"
	"time"

	"market-backdrop/src/engine"
	"market-backdrop/src/helpers"
	"market-backdrop/src/models"

	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	writeWait      = 2 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024 // client commands are tiny
	sendQueueSize  = 8        // frames; stale frames are dropped, not queued
)

// -----------------------------------------------------------------------------
// Client Structure
// -----------------------------------------------------------------------------

// Client is one browser session: a socket plus the loop rendering for it.
type Client struct {
	id   string
	hub  *FastAPIServer
	conn *websocket.Conn
	send chan *models.MFrame

	loop     *engine.Loop
	cancel   context.CancelFunc
	loopDone chan struct{}
}

// SendFrame implements interfaces.IFrameSink. A slow browser loses frames
// instead of stalling its simulation.
func (c *Client) SendFrame(frame *models.MFrame) bool {
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------

func (c *Client) runLoop(ctx context.Context) {
	defer close(c.loopDone)
	if err := c.loop.Run(ctx); err != nil {
		c.hub.errors.Handle(helpers.NewSessionError(c.id, err), "loop")
	}
}

// -----------------------------------------------------------------------------
// readPump - handles incoming messages from client
// Act as a Watchdog for the connection
// -----------------------------------------------------------------------------

func (c *Client) readPump() {
	defer func() {
		// The loop must stop writing to c.send before the hub closes it.
		c.cancel()
		<-c.loopDone
		select {
		case c.hub.unregister <- c:
		case <-c.hub.stop:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.errors.Handle(helpers.NewSessionError(c.id, err), "websocket read")
			}
			break
		}
		if !c.handleCommand(message) {
			break
		}
	}
}

// -----------------------------------------------------------------------------

// handleCommand applies one client command. It returns false when the
// message is malformed and the client should be dropped.
func (c *Client) handleCommand(message []byte) bool {
	var cmd models.MClientCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		c.hub.errors.Handle(helpers.NewSessionError(c.id, err), "client command")
		return false
	}

	switch cmd.Command {
	case "pointer":
		c.loop.Pointer(cmd.X, cmd.Y)
	case "resize":
		vp := models.MViewport{Width: cmd.Width, Height: cmd.Height, PixelRatio: cmd.PixelRatio}
		c.loop.Resize(vp.Within(c.hub.Config.Limit))
	default:
		c.hub.Logger.Debug("Session %s: ignoring command %q", c.id, cmd.Command)
	}
	return true
}

// -----------------------------------------------------------------------------
// writePump - sends frames to client
// -----------------------------------------------------------------------------

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(frame); err != nil {
				c.hub.errors.Handle(helpers.NewSessionError(c.id, err), "websocket write")
				return
			}
			c.hub.countFrame()

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
