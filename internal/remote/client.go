// Package remote talks to an external light cost estimate endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"seasonal_calc"
	"seasonal_calc/internal/logger"
	"seasonal_calc/internal/models"

	"github.com/maypok86/otter/v2"
)

// ErrUnavailable wraps every failure of the remote source.
var ErrUnavailable = errors.New("remote estimate unavailable")

const (
	DefaultTimeout  = 3 * time.Second
	DefaultCacheTTL = 10 * time.Minute

	maxResponseBytes = 1 << 20
	maxCacheEntries  = 1_000
)

type Option func(*Client)

// WithHTTPClient replaces the default client. Its Timeout is left untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithCacheTTL sets how long a successful answer is reused. Zero disables the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// Client makes one POST per estimate, with no retries.
type Client struct {
	url      string
	http     *http.Client
	log      *logger.Logger
	cacheTTL time.Duration
	cache    *otter.Cache[cacheKey, models.LightCostResult]
}

type cacheKey struct {
	LightType   models.LightType
	PowerWatt   float64
	HoursPerDay float64
	Days        int
	RatePerKWh  float64
}

func New(url string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		url:      url,
		http:     &http.Client{Timeout: timeout},
		log:      logger.Nop(),
		cacheTTL: DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cacheTTL > 0 {
		c.cache = otter.Must(&otter.Options[cacheKey, models.LightCostResult]{
			MaximumSize:      maxCacheEntries,
			ExpiryCalculator: otter.ExpiryWriting[cacheKey, models.LightCostResult](c.cacheTTL),
		})
	}
	return c
}

// FetchEstimate asks the remote endpoint for p. Any failure wraps ErrUnavailable.
func (c *Client) FetchEstimate(ctx context.Context, p models.LightParams) (models.LightCostResult, error) {
	key := cacheKey(p)
	if c.cache != nil {
		if res, ok := c.cache.GetIfPresent(key); ok {
			c.log.Debugw("remote_estimate_cache_hit", "light_type", p.LightType)
			return res, nil
		}
	}

	res, err := c.post(ctx, p)
	if err != nil {
		return models.LightCostResult{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if c.cache != nil {
		c.cache.Set(key, res)
	}
	return res, nil
}

func (c *Client) post(ctx context.Context, p models.LightParams) (models.LightCostResult, error) {
	body, err := json.Marshal(seasonal_calc.EstimateRequest{
		LightType:   string(p.LightType),
		PowerWatt:   p.PowerWatt,
		HoursPerDay: p.HoursPerDay,
		Days:        p.Days,
		PricePerKWh: p.RatePerKWh,
	})
	if err != nil {
		return models.LightCostResult{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return models.LightCostResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.LightCostResult{}, fmt.Errorf("post %s: %w", c.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return models.LightCostResult{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out seasonal_calc.EstimateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return models.LightCostResult{}, fmt.Errorf("decode response: %w", err)
	}
	return toResult(p.LightType, out)
}

// toResult rejects payloads a local estimate would never produce. The LED
// fields come back for incandescent lights only.
func toResult(lt models.LightType, r seasonal_calc.EstimateResponse) (models.LightCostResult, error) {
	if r.TotalCost == nil {
		return models.LightCostResult{}, errors.New("malformed response: totalCost missing")
	}
	if !isNonNegativeFinite(*r.TotalCost) {
		return models.LightCostResult{}, fmt.Errorf("malformed response: totalCost %v", *r.TotalCost)
	}
	if (r.LEDCostEstimate == nil) != (r.Savings == nil) {
		return models.LightCostResult{}, errors.New("malformed response: ledCostEstimate and savings must come together")
	}
	if hasLED := r.LEDCostEstimate != nil; hasLED != (lt == models.LightIncandescent) {
		return models.LightCostResult{}, fmt.Errorf("malformed response: LED fields present=%t for %s lights", hasLED, lt)
	}

	res := models.LightCostResult{TotalCost: *r.TotalCost}
	if r.LEDCostEstimate != nil {
		if !isNonNegativeFinite(*r.LEDCostEstimate) || math.IsNaN(*r.Savings) || math.IsInf(*r.Savings, 0) {
			return models.LightCostResult{}, errors.New("malformed response: non-finite LED estimate")
		}
		led, savings := *r.LEDCostEstimate, *r.Savings
		res.LEDCostEstimate = &led
		res.Savings = &savings
	}
	return res, nil
}

func isNonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
