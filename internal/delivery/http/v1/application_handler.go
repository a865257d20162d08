package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase, requireCandidate, requireCompany gin.HandlerFunc) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	candidate := protected.Group("/applications", requireCandidate)
	{
		candidate.POST("", handler.Create)
		candidate.GET("/my", handler.ListMine)
	}

	company := protected.Group("/applications", requireCompany)
	{
		company.GET("/job/:id", handler.ListForJob)
		company.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type CreateApplicationRequest struct {
	JobID    int64 `json:"job_id" binding:"required,gt=0"`
	ResumeID int64 `json:"resume_id" binding:"required,gt=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	application, err := h.applicationUC.CreateApplication(c.Request.Context(), userID, req.JobID, req.ResumeID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	applications, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Items(c, applications)
}

// ListForJob only works for jobs the calling company owns; anyone else gets
// not found.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	applications, err := h.applicationUC.GetJobApplications(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Items(c, applications)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	application, err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, application)
}
