package handler

import (
	"net/http"
	"strconv"

	"github.com/jordanwl/covid-19-bot/internal/models"
	"github.com/jordanwl/covid-19-bot/internal/service"

	"github.com/gin-gonic/gin"
)

// Locate handles GET /locate requests
//
//	@Summary		Resolve coordinates
//	@Description	Runs a coordinate pair through the same resolution as a LINE location message.
//	@Tags			debug
//	@Produce		json
//	@Param			lat	query		number	true	"Latitude"
//	@Param			lon	query		number	true	"Longitude"
//	@Success		200	{object}	IntentResponse
//	@Failure		400	{object}	map[string]string
//	@Router			/locate [get]
func (h *ResolveHandler) Locate(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	if err := service.ValidateCoordinates(lat, lon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	intent := h.resolver.Resolve(c.Request.Context(), models.LocationEvent{Latitude: lat, Longitude: lon})
	c.JSON(http.StatusOK, h.response(intent))
}
