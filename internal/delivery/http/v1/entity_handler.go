package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// EntityHandler exposes generic CRUD over the closed entity registry. The
// frontend uses it for list pages; everything sensitive (ownership scoping,
// column whitelists, limits) is enforced in the usecase.
type EntityHandler struct {
	entityUC domain.EntityUsecase
}

func NewEntityHandler(protected *gin.RouterGroup, entityUC domain.EntityUsecase) {
	handler := &EntityHandler{entityUC: entityUC}

	entities := protected.Group("/entities/:entity")
	{
		entities.GET("", handler.List)
		entities.POST("", handler.Create)
		entities.GET("/all", handler.ListAll)
		entities.GET("/:id", handler.Get)
		entities.PUT("/:id", handler.Update)
		entities.DELETE("/:id", handler.Delete)
	}
}

// listParams parses the shared query parameters: `query` is a JSON-encoded
// filter object, `sort` is a column name with an optional `-` prefix for
// descending, `limit` caps the page size.
func listParams(c *gin.Context) (map[string]interface{}, string, int, error) {
	filters := map[string]interface{}{}
	if raw := c.Query("query"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &filters); err != nil {
			return nil, "", 0, apperror.BadRequest("Parâmetro query inválido: esperado um objeto JSON")
		}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, "", 0, apperror.BadRequest("Parâmetro limit inválido")
		}
		limit = parsed
	}

	return filters, c.Query("sort"), limit, nil
}

func (h *EntityHandler) List(c *gin.Context) {
	filters, sort, limit, err := listParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	rows, err := h.entityUC.List(c.Request.Context(), middleware.Actor(c), c.Param("entity"), filters, sort, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Items(c, rows)
}

// ListAll skips ownership scoping for the read-mostly public views, with a
// higher row cap.
func (h *EntityHandler) ListAll(c *gin.Context) {
	filters, sort, limit, err := listParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	rows, err := h.entityUC.ListAll(c.Request.Context(), c.Param("entity"), filters, sort, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Items(c, rows)
}

func (h *EntityHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	row, err := h.entityUC.Get(c.Request.Context(), middleware.Actor(c), c.Param("entity"), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, row)
}

func (h *EntityHandler) Create(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest("Corpo da requisição inválido"))
		return
	}

	row, err := h.entityUC.Create(c.Request.Context(), middleware.Actor(c), c.Param("entity"), payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, row)
}

func (h *EntityHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest("Corpo da requisição inválido"))
		return
	}

	row, err := h.entityUC.Update(c.Request.Context(), middleware.Actor(c), c.Param("entity"), id, payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, row)
}

func (h *EntityHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.entityUC.Delete(c.Request.Context(), middleware.Actor(c), c.Param("entity"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
