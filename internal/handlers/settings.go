package handlers

import (
	"errors"
	"net/http"

	"seasonal_calc/internal/models"
	"seasonal_calc/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsResponse carries the settings and whether they came from the saved slot.
type SettingsResponse struct {
	Settings models.Settings `json:"settings"`
	Saved    bool            `json:"saved"`
}

// @Summary      Load last-used settings
// @Description  Falls back to defaults for the caller's locale when nothing is saved or storage is unavailable.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  SettingsResponse
// @Router       /api/v1/settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	st, err := h.services.Settings.Load(c.Request.Context())
	if err != nil && h.log != nil {
		h.log.Warnw("settings_load_failed", "err", err, "request_id", c.GetString(ctxRequestID))
	}
	if err != nil || st == nil {
		c.JSON(http.StatusOK, SettingsResponse{
			Settings: h.services.Settings.Defaults(c.GetHeader("Accept-Language")),
		})
		return
	}
	c.JSON(http.StatusOK, SettingsResponse{Settings: *st, Saved: true})
}

// @Summary      Save settings
// @Description  Overwrites the single settings slot. Storage failures are reported with saved=false.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      models.Settings  true  "Settings"
// @Success      200   {object}  SettingsResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/settings [put]
func (h *Handler) putSettings(c *gin.Context) {
	var req models.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	req.UpdatedAt = req.UpdatedAt.UTC()

	err := h.services.Settings.Save(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, SettingsResponse{Settings: req, Saved: true})
	case errors.Is(err, service.ErrPersistenceUnavailable):
		if h.log != nil {
			h.log.Warnw("settings_save_failed", "err", err, "request_id", c.GetString(ctxRequestID))
		}
		c.JSON(http.StatusOK, SettingsResponse{Settings: req, Saved: false})
	default:
		h.respondServiceError(c, "settings_save_failed", err)
	}
}
