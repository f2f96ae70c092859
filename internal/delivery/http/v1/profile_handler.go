package v1

import (
	"net/http"

	"linkgen-gcc-backend/internal/delivery/http/response"
	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	assistantUC domain.AssistantUsecase
}

func NewProfileHandler(rg *gin.RouterGroup, assistantUC domain.AssistantUsecase) {
	handler := &ProfileHandler{assistantUC: assistantUC}

	rg.GET("/profile", handler.GetProfile)
	rg.PUT("/profile", handler.UpdateProfile)
	rg.GET("/preferences", handler.GetPreferences)
	rg.PUT("/preferences", handler.UpdatePreferences)
	rg.GET("/dashboard/stats", handler.Stats)
}

// GetProfile godoc
// @Summary      Get user profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile := h.assistantUC.Profile(c)
	response.Success(c, http.StatusOK, "User profile", profile)
}

// UpdateProfile godoc
// @Summary      Update user profile
// @Description  Replace the profile. Profile strength is derived from the LinkedIn connection and cannot be set here.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.UserProfile  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.UserProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.assistantUC.UpdateProfile(c, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", h.assistantUC.Profile(c))
}

// GetPreferences godoc
// @Summary      Get notification preferences
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /preferences [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	prefs := h.assistantUC.Preferences(c)
	response.Success(c, http.StatusOK, "User preferences", prefs)
}

// UpdatePreferences godoc
// @Summary      Update notification preferences
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        preferences  body      domain.UserPreferences  true  "Preferences JSON"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Router       /preferences [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	var req domain.UserPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.assistantUC.UpdatePreferences(c, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Preferences updated", h.assistantUC.Preferences(c))
}

// Stats godoc
// @Summary      Get dashboard stats
// @Description  Saved, smart-match, application and unread-alert counts for the dashboard tiles
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *ProfileHandler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, "Dashboard stats", h.assistantUC.Stats(c))
}
