package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glinthive/site-backend/internal/middleware"
	"github.com/glinthive/site-backend/internal/model"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	ws "github.com/glinthive/site-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// InboxListener streams submission events until ctx is done.
type InboxListener interface {
	Listen(ctx context.Context) (<-chan model.InboxEvent, error)
}

// WSHandler pushes new contact and advice submissions to connected admins.
type WSHandler struct {
	inbox        InboxListener
	log          zerolog.Logger
	upgrader     websocket.Upgrader
	pingInterval time.Duration
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(inbox InboxListener, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		inbox:        inbox,
		log:          log.With().Str("component", "ws_handler").Logger(),
		upgrader:     buildUpgrader(allowedOrigins),
		pingInterval: ws.PingInterval,
	}
}

// InboxStream godoc
// WS /ws/admin/inbox?token=...
// Upgrades to WebSocket and forwards every new submission as it arrives.
func (h *WSHandler) InboxStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Str("admin_id", claims.AdminID).Logger()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events, err := h.inbox.Listen(ctx)
	if err != nil {
		wsLog.Error().Err(err).Msg("Inbox subscription failed")
		_ = ws.WriteError(conn, "inbox unavailable")
		return
	}

	wsLog.Info().Msg("Admin connected to inbox")

	// gorilla/websocket allows one concurrent writer, so the reader only
	// forwards requests and this goroutine does all the writing.
	replies := make(chan any, 4)
	go h.readLoop(ctx, conn, cancel, replies, wsLog)

	ws.KeepAlive(conn)
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		var err error
		select {
		case <-ctx.Done():
			wsLog.Debug().Msg("Inbox stream closed")
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			err = ws.WriteTyped(conn, ws.SubmissionEvent{
				Event:     ws.Event(event.Type),
				ID:        event.ID,
				Name:      event.Name,
				CreatedAt: event.CreatedAt,
			})
		case reply := <-replies:
			err = ws.WriteTyped(conn, reply)
		case <-ticker.C:
			err = ws.WritePing(conn)
		}
		if err != nil {
			wsLog.Debug().Err(err).Msg("Write failed, closing")
			return
		}
	}
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, cancel context.CancelFunc, replies chan<- any, log zerolog.Logger) {
	defer cancel()

	for {
		var msg ws.RequestEnvelope
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("Unexpected close")
			}
			return
		}

		var reply any
		switch msg.Action {
		case ws.ActionPing:
			reply = ws.PongResponse{Event: ws.EventPong}
		default:
			reply = ws.ErrorResponse{Event: ws.EventError, Error: "unknown action: " + string(msg.Action)}
		}
		select {
		case replies <- reply:
		case <-ctx.Done():
			return
		}
	}
}
