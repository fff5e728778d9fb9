package handlers

import (
	"net/http"

	"seasonal_calc/internal/models"

	"github.com/gin-gonic/gin"
)

// ThawPlanRequest is an exported model for Swagger docs of the thaw payload.
type ThawPlanRequest struct {
	// Turkey weight, > 0
	Weight float64 `json:"weight" example:"12"`
	// Allowed: lb, kg
	Unit string `json:"unit" example:"lb"`
	// Allowed: coldWater, fridge
	Method string `json:"method" example:"fridge"`
	// Serving time, RFC3339 or datetime-local. Optional.
	TargetTime string `json:"targetTime,omitempty" example:"2025-11-27T16:00"`
}

// @Summary      Plan turkey thawing
// @Description  Cancels the running countdown, computes the thaw and, with a target time, arms a new countdown.
// @Tags         thaw
// @Accept       json
// @Produce      json
// @Param        body  body      ThawPlanRequest  true  "Thaw payload"
// @Success      200   {object}  models.ThawPlan
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/thaw/plan [post]
func (h *Handler) planThaw(c *gin.Context) {
	var req ThawPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	plan, err := h.services.Thaw.Plan(c.Request.Context(), models.ThawParams{
		Weight:     req.Weight,
		Unit:       models.WeightUnit(req.Unit),
		Method:     models.ThawMethod(req.Method),
		TargetTime: req.TargetTime,
	})
	if err != nil {
		h.respondServiceError(c, "thaw_plan_failed", err, "method", req.Method)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// @Summary      Current countdown state
// @Tags         thaw
// @Produce      json
// @Success      200  {object}  models.CountdownState
// @Router       /api/v1/thaw/countdown [get]
func (h *Handler) getCountdown(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Countdown.CurrentState())
}

// @Summary      Cancel the countdown
// @Tags         thaw
// @Produce      json
// @Success      200  {object}  models.CountdownState
// @Router       /api/v1/thaw/countdown [delete]
func (h *Handler) cancelCountdown(c *gin.Context) {
	h.services.Countdown.Cancel()
	c.JSON(http.StatusOK, h.services.Countdown.CurrentState())
}
