package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"seasonal_calc/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Countdown stream timing. Clients pick the tick within (0, maxCountdownTick].
const (
	countdownWriteWait   = 10 * time.Second
	countdownPongWait    = 60 * time.Second
	countdownPingEvery   = countdownPongWait * 9 / 10
	countdownReadLimit   = 4 << 10
	defaultCountdownTick = time.Second
	maxCountdownTick     = 10 * time.Second

	envelopeCountdown = "countdown"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// The stream is read-only and carries no credentials, so any origin may subscribe.
var countdownUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// @Summary      Countdown stream
// @Description  WebSocket. Sends {"type":"countdown","data":CountdownState} every interval and closes after the completed state.
// @Tags         thaw
// @Param        interval     query  string  false  "Go duration, e.g. 500ms (max 10s)"
// @Param        interval_ms  query  int     false  "Interval in milliseconds (max 10000)"
// @Router       /ws/countdown [get]
func (h *Handler) wsCountdown(c *gin.Context) {
	tick := countdownTick(c.Request.URL.Query())

	conn, err := countdownUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.streamLog("countdown_upgrade_failed", err)
		return
	}
	defer func() { _ = conn.Close() }()

	gone := watchClient(conn)

	ticks := time.NewTicker(tick)
	defer ticks.Stop()
	pings := time.NewTicker(countdownPingEvery)
	defer pings.Stop()

	for {
		finished, err := h.sendCountdown(conn)
		if err != nil {
			h.streamLog("countdown_write_failed", err)
			return
		}
		if finished {
			h.closeStream(conn)
			return
		}
		if !h.awaitTick(c.Request.Context(), conn, gone, ticks.C, pings.C) {
			return
		}
	}
}

// awaitTick blocks until the next push is due, pinging the client meanwhile.
// It reports false once the stream should stop.
func (h *Handler) awaitTick(ctx context.Context, conn *websocket.Conn, gone <-chan struct{}, ticks, pings <-chan time.Time) bool {
	for {
		select {
		case <-gone:
			return false
		case <-ctx.Done():
			return false
		case <-ticks:
			return true
		case <-pings:
			deadline := time.Now().Add(countdownWriteWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				h.streamLog("countdown_ping_failed", err)
				return false
			}
		}
	}
}

// countdownTick picks the push interval from ?interval=500ms, then
// ?interval_ms=500. Missing or out-of-range values give the default.
func countdownTick(q url.Values) time.Duration {
	if d, err := time.ParseDuration(q.Get("interval")); err == nil && validTick(d) {
		return d
	}
	if ms, err := strconv.Atoi(q.Get("interval_ms")); err == nil {
		if d := time.Duration(ms) * time.Millisecond; validTick(d) {
			return d
		}
	}
	return defaultCountdownTick
}

func validTick(d time.Duration) bool {
	return d > 0 && d <= maxCountdownTick
}

// watchClient consumes client frames so pongs and close frames are handled.
// The returned channel closes when the client goes away or stops answering pings.
func watchClient(conn *websocket.Conn) <-chan struct{} {
	conn.SetReadLimit(countdownReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(countdownPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(countdownPongWait))
	})

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()
	return gone
}

// sendCountdown writes the current state. finished reports a completed countdown.
func (h *Handler) sendCountdown(conn *websocket.Conn) (finished bool, err error) {
	st := h.services.Countdown.CurrentState()
	_ = conn.SetWriteDeadline(time.Now().Add(countdownWriteWait))
	if err := conn.WriteJSON(wsEnvelope{Type: envelopeCountdown, Data: st}); err != nil {
		return false, err
	}
	return st.Phase == models.PhaseCompleted, nil
}

func (h *Handler) closeStream(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(models.PhaseCompleted))
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(countdownWriteWait))
}

func (h *Handler) streamLog(event string, err error) {
	if h.log != nil {
		h.log.Infow(event, "err", err)
	}
}
