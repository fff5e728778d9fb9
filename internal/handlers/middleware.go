package handlers

import (
	"net/http"
	"strings"
	"time"

	"seasonal_calc/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestID    = "requestId"
	unmatchedRoute  = "unmatched"
	maxRequestIDLen = 128
)

// requestID reuses the caller's X-Request-ID or issues a new one.
func (h *Handler) requestID(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if id == "" || len(id) > maxRequestIDLen {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// accessLog writes one line per request and counts it by route template.
func (h *Handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	status := c.Writer.Status()
	metrics.IncreaseHTTPRequestsMetric(status, c.Request.Method, route)

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", c.GetString(ctxRequestID),
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Accept", "Accept-Language", requestIDHeader)
	cfg.ExposeHeaders = []string{requestIDHeader}

	origins := h.validOrigins()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// validOrigins drops entries cors would reject. A "*" entry means any origin.
func (h *Handler) validOrigins() []string {
	out := make([]string, 0, len(h.corsOrigins))
	for _, o := range h.corsOrigins {
		o = strings.TrimSpace(o)
		switch {
		case o == "":
			continue
		case o == "*":
			return nil
		case strings.HasPrefix(o, "http://"), strings.HasPrefix(o, "https://"):
			out = append(out, strings.TrimSuffix(o, "/"))
		default:
			if h.log != nil {
				h.log.Warnw("cors_origin_ignored", "origin", o)
			}
		}
	}
	return out
}
