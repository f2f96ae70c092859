package v1

import (
	"net/http"

	"linkgen-gcc-backend/internal/delivery/http/response"
	"linkgen-gcc-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	assistantUC domain.AssistantUsecase
}

func NewJobHandler(rg *gin.RouterGroup, assistantUC domain.AssistantUsecase) {
	handler := &JobHandler{assistantUC: assistantUC}

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("/:id/select", handler.Select)
		jobs.POST("/:id/save", handler.ToggleSave)
		jobs.POST("/:id/dismiss", handler.Dismiss)
	}
}

// List godoc
// @Summary      List visible jobs
// @Description  Get the job feed with dismissed postings filtered out
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs := h.assistantUC.VisibleJobs(c)
	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get a job with its cached match analysis and saved flag
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	detail, err := h.assistantUC.JobDetail(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", detail)
}

// Select godoc
// @Summary      Select a job
// @Description  Mark a job as the currently viewed posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/select [post]
// @Security     BearerAuth
func (h *JobHandler) Select(c *gin.Context) {
	if err := h.assistantUC.SelectJob(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job selected", nil)
}

// ToggleSave godoc
// @Summary      Toggle saved state
// @Description  Save or unsave a job; every Nth save also refreshes smart alerts
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/save [post]
// @Security     BearerAuth
func (h *JobHandler) ToggleSave(c *gin.Context) {
	saved, err := h.assistantUC.ToggleSave(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved state updated", gin.H{"saved": saved})
}

// Dismiss godoc
// @Summary      Dismiss a job
// @Description  Hide a job from every listing. Dismissing is permanent.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/dismiss [post]
// @Security     BearerAuth
func (h *JobHandler) Dismiss(c *gin.Context) {
	if err := h.assistantUC.Dismiss(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job dismissed", nil)
}
