package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

func NewNotificationHandler(protected *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", handler.List)
		notifications.PATCH("/:id/read", handler.MarkRead)
		notifications.PATCH("/read-all", handler.MarkAllRead)
		notifications.DELETE("/:id", handler.Delete)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	onlyUnread := c.Query("unread") == "true"

	notifications, err := h.notificationUC.ListForUser(c.Request.Context(), userID, onlyUnread)
	if err != nil {
		c.Error(err)
		return
	}
	response.Items(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.notificationUC.MarkRead(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.notificationUC.MarkAllRead(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.notificationUC.Delete(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
