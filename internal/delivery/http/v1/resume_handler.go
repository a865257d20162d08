package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, requireCandidate, requireCompany gin.HandlerFunc) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := protected.Group("/resumes")
	{
		resumes.GET("/published", requireCompany, handler.ListPublished)
		resumes.GET("/:id", handler.Get)
		resumes.GET("/:id/pdf", handler.ExportPDF)
	}

	mine := protected.Group("/resumes", requireCandidate)
	{
		mine.POST("", handler.Create)
		mine.GET("/my", handler.ListMine)
		mine.PUT("/:id", handler.Update)
		mine.DELETE("/:id", handler.Delete)
	}
}

type ResumeRequest struct {
	FullName     string `json:"full_name" binding:"required,min=2,max=255"`
	Age          int    `json:"age" binding:"required,gte=16,lte=100"`
	Objective    string `json:"objective" binding:"max=2000"`
	Education    string `json:"education" binding:"max=5000"`
	Experience   string `json:"experience" binding:"max=10000"`
	Skills       string `json:"skills" binding:"max=2000"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	ContactPhone string `json:"contact_phone" binding:"omitempty,valid_phone"`
	IsPublished  *bool  `json:"is_published"`
}

func (r *ResumeRequest) toDomain() *domain.Resume {
	resume := &domain.Resume{
		FullName:     r.FullName,
		Age:          r.Age,
		Objective:    r.Objective,
		Education:    r.Education,
		Experience:   r.Experience,
		Skills:       r.Skills,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
	}
	if r.IsPublished != nil {
		resume.IsPublished = *r.IsPublished
	}
	return resume
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	resume, err := h.resumeUC.CreateResume(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, resume)
}

func (h *ResumeHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	resumes, err := h.resumeUC.GetMyResumes(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Items(c, resumes)
}

func (h *ResumeHandler) ListPublished(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	resumes, err := h.resumeUC.GetPublishedResumes(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Items(c, resumes)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	resume, err := h.resumeUC.GetResume(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	resume, err := h.resumeUC.UpdateResume(c.Request.Context(), id, userID, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.resumeUC.DeleteResume(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

// ExportPDF streams the rendered résumé. Visibility follows the same rule as
// Get: owners always, everyone else only for published résumés.
func (h *ResumeHandler) ExportPDF(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	doc, err := h.resumeUC.ExportPDF(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="curriculo-%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", doc)
}
