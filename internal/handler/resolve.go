package handler

import (
	"context"
	"net/http"

	"github.com/jordanwl/covid-19-bot/internal/models"

	"github.com/gin-gonic/gin"
)

// IntentResolver resolves an inbound event without replying to it.
type IntentResolver interface {
	Resolve(ctx context.Context, ev models.InboundEvent) models.ResolvedIntent
}

// PrefectureLookup returns the registry entry for an id.
type PrefectureLookup interface {
	Entry(id models.PrefectureID) (models.PrefectureEntry, bool)
}

// IntentResponse is the JSON view of a ResolvedIntent.
type IntentResponse struct {
	Intent     string                  `json:"intent"`
	Prefecture *models.PrefectureEntry `json:"prefecture,omitempty"`
}

// ResolveHandler exposes intent resolution for operators
type ResolveHandler struct {
	resolver IntentResolver
	registry PrefectureLookup
}

// NewResolveHandler creates a new resolve handler
func NewResolveHandler(resolver IntentResolver, registry PrefectureLookup) *ResolveHandler {
	return &ResolveHandler{resolver: resolver, registry: registry}
}

// Resolve handles GET /resolve requests
//
//	@Summary		Resolve text
//	@Description	Runs free text through the same resolution as a LINE text message.
//	@Tags			debug
//	@Produce		json
//	@Param			q	query		string	true	"Prefecture name or address"
//	@Success		200	{object}	IntentResponse
//	@Failure		400	{object}	map[string]string
//	@Router			/resolve [get]
func (h *ResolveHandler) Resolve(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	intent := h.resolver.Resolve(c.Request.Context(), models.TextEvent{Content: query})
	c.JSON(http.StatusOK, h.response(intent))
}

func (h *ResolveHandler) response(intent models.ResolvedIntent) IntentResponse {
	resp := IntentResponse{Intent: intent.Kind.String()}
	if intent.Kind == models.IntentPrefectureQuery {
		if entry, ok := h.registry.Entry(intent.Prefecture); ok {
			resp.Prefecture = &entry
		}
	}
	return resp
}
