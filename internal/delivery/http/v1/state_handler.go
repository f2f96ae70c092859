package v1

import (
	"net/http"

	"linkgen-gcc-backend/internal/delivery/http/response"
	"linkgen-gcc-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// StateHandler serves the aggregate app state in one round trip, the way
// the web client hydrates itself on load.
type StateHandler struct {
	assistantUC domain.AssistantUsecase
}

func NewStateHandler(rg *gin.RouterGroup, assistantUC domain.AssistantUsecase) {
	handler := &StateHandler{assistantUC: assistantUC}

	rg.GET("/state", handler.Get)
}

// Get godoc
// @Summary      Get full app state
// @Description  One-shot hydration payload: visible jobs, alerts, profile, preferences, integrations, stats and the active toast
// @Tags         state
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /state [get]
// @Security     BearerAuth
func (h *StateHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, "App state", gin.H{
		"jobs":         h.assistantUC.VisibleJobs(c),
		"alerts":       h.assistantUC.Alerts(c),
		"profile":      h.assistantUC.Profile(c),
		"preferences":  h.assistantUC.Preferences(c),
		"integrations": h.assistantUC.Integrations(c),
		"stats":        h.assistantUC.Stats(c),
		"toast":        h.assistantUC.Toast(c),
	})
}
