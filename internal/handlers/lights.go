package handlers

import (
	"errors"
	"net/http"

	"seasonal_calc"
	"seasonal_calc/internal/models"
	"seasonal_calc/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInternal        = "internal error"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestID)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps the calculator error taxonomy onto HTTP.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidTargetTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}

// LightEstimateRequest is the calculator form. ratePerKWh may be omitted when a
// region is given; the region preset rate is used then.
type LightEstimateRequest struct {
	LightType   string  `json:"lightType" example:"incandescent"`
	PowerWatt   float64 `json:"powerWatt" example:"40"`
	HoursPerDay float64 `json:"hoursPerDay" example:"8"`
	Days        int     `json:"days" example:"30"`
	RatePerKWh  float64 `json:"ratePerKWh,omitempty" example:"0.18"`
	Region      string  `json:"region,omitempty" example:"us"`
}

func (r LightEstimateRequest) params(regions service.Regions) models.LightParams {
	rate := r.RatePerKWh
	if rate == 0 && r.Region != "" && regions != nil {
		rate = regions.Resolve(r.Region).RatePerKWh
	}
	return models.LightParams{
		LightType:   models.LightType(r.LightType),
		PowerWatt:   r.PowerWatt,
		HoursPerDay: r.HoursPerDay,
		Days:        r.Days,
		RatePerKWh:  rate,
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Estimate holiday light cost
// @Description  Uses the remote estimate source when configured and falls back to the local formula. Saves the inputs as the last-used settings.
// @Tags         lights
// @Accept       json
// @Produce      json
// @Param        body  body      LightEstimateRequest  true  "Light parameters"
// @Success      200   {object}  models.LightEstimate
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/lights/estimate [post]
func (h *Handler) estimateLights(c *gin.Context) {
	var req LightEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	out, err := h.services.LightCost.Estimate(c.Request.Context(), req.params(h.services.Regions), req.Region)
	if err != nil {
		h.respondServiceError(c, "light_estimate_failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Remote-compatible estimate
// @Description  Same request and response shape as the remote estimate endpoint. Always computed locally.
// @Tags         lights
// @Accept       json
// @Produce      json
// @Param        body  body      seasonal_calc.EstimateRequest  true  "Estimate request"
// @Success      200   {object}  seasonal_calc.EstimateResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/estimate [post]
func (h *Handler) remoteCompatibleEstimate(c *gin.Context) {
	var req seasonal_calc.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	res, err := h.services.LightCost.EstimateLocal(models.LightParams{
		LightType:   models.LightType(req.LightType),
		PowerWatt:   req.PowerWatt,
		HoursPerDay: req.HoursPerDay,
		Days:        req.Days,
		RatePerKWh:  req.PricePerKWh,
	})
	if err != nil {
		h.respondServiceError(c, "remote_compatible_estimate_failed", err)
		return
	}

	total := res.TotalCost
	c.JSON(http.StatusOK, seasonal_calc.EstimateResponse{
		TotalCost:       &total,
		LEDCostEstimate: res.LEDCostEstimate,
		Savings:         res.Savings,
	})
}
