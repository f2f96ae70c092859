package v1

import (
	"net/http"

	"linkgen-gcc-backend/internal/delivery/http/response"
	"linkgen-gcc-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type IntegrationHandler struct {
	assistantUC domain.AssistantUsecase
}

func NewIntegrationHandler(rg *gin.RouterGroup, assistantUC domain.AssistantUsecase) {
	handler := &IntegrationHandler{assistantUC: assistantUC}

	integrations := rg.Group("/integrations")
	{
		integrations.GET("", handler.Get)
		integrations.POST("/:service/connect", handler.Connect)
		integrations.POST("/:service/disconnect", handler.Disconnect)
	}
}

// Get godoc
// @Summary      Get integration state
// @Tags         integrations
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /integrations [get]
// @Security     BearerAuth
func (h *IntegrationHandler) Get(c *gin.Context) {
	state := h.assistantUC.Integrations(c)
	response.Success(c, http.StatusOK, "Integration state", state)
}

// Connect godoc
// @Summary      Connect an integration
// @Description  Connect linkedin or gmail. The call returns after the sync completes; connecting LinkedIn raises profile strength to full and any connection refreshes smart alerts.
// @Tags         integrations
// @Produce      json
// @Param        service  path      string  true  "Service name (linkedin or gmail)"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /integrations/{service}/connect [post]
// @Security     BearerAuth
func (h *IntegrationHandler) Connect(c *gin.Context) {
	state, err := h.assistantUC.Connect(c, c.Param("service"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Integration connected", state)
}

// Disconnect godoc
// @Summary      Disconnect an integration
// @Description  Disconnect linkedin or gmail. Disconnecting LinkedIn reverts profile strength; synced summaries are kept.
// @Tags         integrations
// @Produce      json
// @Param        service  path      string  true  "Service name (linkedin or gmail)"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /integrations/{service}/disconnect [post]
// @Security     BearerAuth
func (h *IntegrationHandler) Disconnect(c *gin.Context) {
	state, err := h.assistantUC.Disconnect(c, c.Param("service"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Integration disconnected", state)
}
