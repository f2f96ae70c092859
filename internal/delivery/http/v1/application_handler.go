package v1

import (
	"net/http"

	"linkgen-gcc-backend/internal/delivery/http/response"
	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler serves the tracker view and drives the 3-step apply
// wizard. The wizard is a singleton: opening it for a new job discards any
// in-progress application.
type ApplicationHandler struct {
	assistantUC domain.AssistantUsecase
	wizardUC    domain.ApplyWizardUsecase
}

func NewApplicationHandler(rg *gin.RouterGroup, assistantUC domain.AssistantUsecase, wizardUC domain.ApplyWizardUsecase) {
	handler := &ApplicationHandler{assistantUC: assistantUC, wizardUC: wizardUC}

	rg.GET("/applications", handler.List)

	wizard := rg.Group("/applications/wizard")
	{
		wizard.POST("", handler.Open)
		wizard.GET("", handler.State)
		wizard.POST("/next", handler.Next)
		wizard.POST("/back", handler.Back)
		wizard.PUT("/contact", handler.UpdateContact)
		wizard.POST("/linkedin", handler.ConnectLinkedIn)
		wizard.POST("/submit", handler.Submit)
		wizard.DELETE("", handler.Close)
	}
}

// List godoc
// @Summary      List applications
// @Description  Get the jobs the user has applied to, for the tracker view
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	jobs := h.assistantUC.AppliedJobs(c)
	response.Success(c, http.StatusOK, "Application list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

type OpenWizardRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

type UpdateContactRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// Open godoc
// @Summary      Open the apply wizard
// @Description  Start an application for a job at the contact step, pre-filled from the profile
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      OpenWizardRequest  true  "Job to apply for"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/wizard [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Open(c *gin.Context) {
	var req OpenWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	state, err := h.wizardUC.Open(c, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application started", state)
}

// State godoc
// @Summary      Get wizard state
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/wizard [get]
// @Security     BearerAuth
func (h *ApplicationHandler) State(c *gin.Context) {
	state, err := h.wizardUC.State(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Wizard state", state)
}

// Next godoc
// @Summary      Advance to the next step
// @Description  Move forward one step. Already at review is a no-op.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/wizard/next [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Next(c *gin.Context) {
	state, err := h.wizardUC.Next(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Wizard advanced", state)
}

// Back godoc
// @Summary      Go back one step
// @Description  Move back one step. Already at contact is a no-op.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/wizard/back [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Back(c *gin.Context) {
	state, err := h.wizardUC.Back(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Wizard moved back", state)
}

// UpdateContact godoc
// @Summary      Update contact details
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateContactRequest  true  "Contact details"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/wizard/contact [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateContact(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	state, err := h.wizardUC.UpdateContact(c, req.Email, req.Phone)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contact details updated", state)
}

// ConnectLinkedIn godoc
// @Summary      Connect LinkedIn from the wizard
// @Description  Run the full LinkedIn connect flow without leaving the application
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/wizard/linkedin [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ConnectLinkedIn(c *gin.Context) {
	state, err := h.wizardUC.ConnectLinkedIn(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "LinkedIn connected", state)
}

// Submit godoc
// @Summary      Submit the application
// @Description  Record the application and close the wizard. The job is marked applied and a confirmation alert fires.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/wizard/submit [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	if err := h.wizardUC.Submit(c); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application submitted", nil)
}

// Close godoc
// @Summary      Close the wizard
// @Description  Abandon the in-progress application, discarding its state
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications/wizard [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Close(c *gin.Context) {
	h.wizardUC.Close(c)
	response.Success(c, http.StatusOK, "Application discarded", nil)
}
