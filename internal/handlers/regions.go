package handlers

import (
	"net/http"

	"seasonal_calc/internal/models"

	"github.com/gin-gonic/gin"
)

// RegionDefaultResponse is the detected region and its preset.
type RegionDefaultResponse struct {
	Region models.RegionCode   `json:"region"`
	Preset models.RegionPreset `json:"preset"`
}

// @Summary      List region presets
// @Tags         regions
// @Produce      json
// @Success      200  {array}   models.RegionPreset
// @Router       /api/v1/regions [get]
func (h *Handler) listRegions(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Regions.List())
}

// @Summary      Resolve a region preset
// @Description  Unknown codes resolve to the "other" preset.
// @Tags         regions
// @Produce      json
// @Param        code  path      string  true  "Region code"
// @Success      200   {object}  models.RegionPreset
// @Router       /api/v1/regions/{code} [get]
func (h *Handler) getRegion(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Regions.Resolve(c.Param("code")))
}

// @Summary      Detect the default region
// @Description  Uses ?locale= when given, otherwise the Accept-Language header.
// @Tags         regions
// @Produce      json
// @Param        locale  query     string  false  "Locale tag, e.g. en-GB"
// @Success      200     {object}  RegionDefaultResponse
// @Router       /api/v1/region-default [get]
func (h *Handler) defaultRegion(c *gin.Context) {
	var code models.RegionCode
	if locale := c.Query("locale"); locale != "" {
		code = h.services.Regions.Detect(locale)
	} else {
		code = h.services.Regions.FromAcceptLanguage(c.GetHeader("Accept-Language"))
	}
	c.JSON(http.StatusOK, RegionDefaultResponse{
		Region: code,
		Preset: h.services.Regions.Resolve(string(code)),
	})
}
