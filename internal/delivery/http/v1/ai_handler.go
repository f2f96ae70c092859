package v1

import (
	"net/http"

	"linkgen-gcc-backend/internal/delivery/http/response"
	"linkgen-gcc-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// AIHandler exposes the model-backed operations: match analysis, outreach
// drafts and interview prep. All of them degrade to canned offline results
// when no model endpoint is configured.
type AIHandler struct {
	assistantUC domain.AssistantUsecase
}

func NewAIHandler(rg *gin.RouterGroup, assistantUC domain.AssistantUsecase, rateLimit gin.HandlerFunc) {
	handler := &AIHandler{assistantUC: assistantUC}

	jobs := rg.Group("/jobs")
	jobs.Use(rateLimit)
	{
		jobs.POST("/:id/analyze", handler.Analyze)
		jobs.POST("/:id/outreach/email", handler.DraftEmail)
		jobs.POST("/:id/outreach/whatsapp", handler.DraftWhatsApp)
		jobs.GET("/:id/interview-questions", handler.InterviewQuestions)
	}
}

// Analyze godoc
// @Summary      Analyze job match
// @Description  Run the AI match analysis for a job against the user profile. A score of 85 or higher raises a high-match alert.
// @Tags         ai
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/analyze [post]
// @Security     BearerAuth
func (h *AIHandler) Analyze(c *gin.Context) {
	report, err := h.assistantUC.Analyze(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Match analysis", report)
}

// DraftEmail godoc
// @Summary      Draft a cover email
// @Description  Generate a cover email for a job with a mailto deep link
// @Tags         ai
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /jobs/{id}/outreach/email [post]
// @Security     BearerAuth
func (h *AIHandler) DraftEmail(c *gin.Context) {
	draft, err := h.assistantUC.DraftCoverEmail(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Cover email draft", draft)
}

// DraftWhatsApp godoc
// @Summary      Draft a WhatsApp message
// @Description  Generate a short WhatsApp outreach message with a wa.me deep link
// @Tags         ai
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/outreach/whatsapp [post]
// @Security     BearerAuth
func (h *AIHandler) DraftWhatsApp(c *gin.Context) {
	draft, err := h.assistantUC.DraftWhatsAppMessage(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "WhatsApp draft", draft)
}

// InterviewQuestions godoc
// @Summary      Get interview questions
// @Description  Generate likely interview questions for a job with preparation tips
// @Tags         ai
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/interview-questions [get]
// @Security     BearerAuth
func (h *AIHandler) InterviewQuestions(c *gin.Context) {
	questions, err := h.assistantUC.InterviewQuestions(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview questions", gin.H{"questions": questions})
}
