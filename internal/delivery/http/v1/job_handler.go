package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase, requireCandidate, requireCompany gin.HandlerFunc) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("/active", requireCandidate, handler.ListActive)
		jobs.GET("/:id", handler.Get)
	}

	company := protected.Group("/jobs", requireCompany)
	{
		company.POST("", handler.Create)
		company.GET("/my", handler.ListMine)
		company.PUT("/:id", handler.Update)
		company.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	Title          string  `json:"title" binding:"required,min=5,max=255"`
	Description    string  `json:"description" binding:"required,min=10,max=10000"`
	Requirements   *string `json:"requirements" binding:"omitempty,max=5000"`
	SkillsRequired *string `json:"skills_required" binding:"omitempty,max=2000"`
	Location       *string `json:"location" binding:"omitempty,max=255"`
	ContactInfo    *string `json:"contact_info" binding:"omitempty,max=500"`
	IsActive       *bool   `json:"is_active"`
}

func (r *JobRequest) toDomain() *domain.JobPosting {
	job := &domain.JobPosting{
		Title:          r.Title,
		Description:    r.Description,
		Requirements:   r.Requirements,
		SkillsRequired: r.SkillsRequired,
		Location:       r.Location,
		ContactInfo:    r.ContactInfo,
		IsActive:       true,
	}
	if r.IsActive != nil {
		job.IsActive = *r.IsActive
	}
	return job
}

func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job, err := h.jobUC.CreateJob(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, job)
}

// ListMine includes inactive postings; only the owner sees those.
func (h *JobHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	jobs, err := h.jobUC.GetMyJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Items(c, jobs)
}

func (h *JobHandler) ListActive(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	jobs, err := h.jobUC.GetActiveJobs(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Items(c, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, userID, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
