package v1

import (
	"net/http"

	"linkgen-gcc-backend/internal/delivery/http/response"
	"linkgen-gcc-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	assistantUC domain.AssistantUsecase
}

func NewAlertHandler(rg *gin.RouterGroup, assistantUC domain.AssistantUsecase) {
	handler := &AlertHandler{assistantUC: assistantUC}

	alerts := rg.Group("/alerts")
	{
		alerts.GET("", handler.List)
		alerts.POST("/read-all", handler.MarkAllRead)
		alerts.POST("/refresh", handler.Refresh)
	}

	rg.GET("/notifications/toast", handler.Toast)
}

// List godoc
// @Summary      List alerts
// @Description  Get all alerts, newest first
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /alerts [get]
// @Security     BearerAuth
func (h *AlertHandler) List(c *gin.Context) {
	alerts := h.assistantUC.Alerts(c)
	unread := 0
	for i := range alerts {
		if !alerts[i].Read {
			unread++
		}
	}

	response.Success(c, http.StatusOK, "Alert list", gin.H{
		"alerts": alerts,
		"unread": unread,
	})
}

// MarkAllRead godoc
// @Summary      Mark all alerts read
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /alerts/read-all [post]
// @Security     BearerAuth
func (h *AlertHandler) MarkAllRead(c *gin.Context) {
	h.assistantUC.MarkAllAlertsRead(c)
	response.Success(c, http.StatusOK, "All alerts marked read", nil)
}

// Refresh godoc
// @Summary      Refresh smart alerts
// @Description  Run the proactive smart-alert generation. A refresh already in flight is not queued; the call reports started=false.
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /alerts/refresh [post]
// @Security     BearerAuth
func (h *AlertHandler) Refresh(c *gin.Context) {
	started := h.assistantUC.TriggerSmartAlerts(c)
	msg := "Smart alerts refreshed"
	if !started {
		msg = "Refresh already in progress"
	}

	response.Success(c, http.StatusOK, msg, gin.H{"started": started})
}

// Toast godoc
// @Summary      Get active toast
// @Description  Get the transient notification currently on screen, if any
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /notifications/toast [get]
// @Security     BearerAuth
func (h *AlertHandler) Toast(c *gin.Context) {
	toast := h.assistantUC.Toast(c)
	response.Success(c, http.StatusOK, "Active toast", gin.H{"toast": toast})
}
