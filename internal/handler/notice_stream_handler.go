package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/schoolpad/schoolpad-backend/internal/config"
	"github.com/schoolpad/schoolpad-backend/internal/middleware"
)

const noticeWriteTimeout = 10 * time.Second

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
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

// NoticeStreamHandler pushes newly created notices to connected clients
// over WebSocket, backed by the Redis notice channel.
type NoticeStreamHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewNoticeStreamHandler creates a new NoticeStreamHandler.
func NewNoticeStreamHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *NoticeStreamHandler {
	return &NoticeStreamHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "notice_stream").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// Stream godoc
// WS /ws/v1/notices/stream
// Upgrades to WebSocket and forwards every published notice as a JSON
// text frame until the client disconnects.
func (h *NoticeStreamHandler) Stream(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	streamLog := h.log.With().Str("user_id", user.ID.String()).Logger()
	streamLog.Info().Msg("Notice stream connected")

	pubsub := h.rdb.Subscribe(c.Request.Context(), config.CacheKey.NoticeChannel())
	defer pubsub.Close()

	// Drain client frames so pings are answered and closes are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case <-done:
			streamLog.Debug().Msg("Notice stream closed by client")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(noticeWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				streamLog.Debug().Err(err).Msg("Notice stream write failed")
				return
			}
		}
	}
}
