package handler

import (
	"net/http"

	"DevHub/config"
	"DevHub/middleware"
	"DevHub/pkg/context"
	"DevHub/pkg/response"
	"DevHub/service"
	"DevHub/types"

	"github.com/gin-gonic/gin"
)

type Notification struct {
	Config  *config.Config
	Service service.INotificationService
}

func (h *Notification) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())

	g := r.Group("/v1/notifications", authorize)
	g.GET("", context.Wrap(h.List))
	g.GET("/unread-count", context.Wrap(h.UnreadCount))
	g.PUT("/read", context.Wrap(h.MarkRead))
	g.PUT("/read-all", context.Wrap(h.MarkAllRead))

	admin := r.Group("/v1/admin/announcements", authorize, middleware.AdminOnly())
	admin.POST("", context.Wrap(h.Announce))
}

func (h *Notification) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var q types.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, next, err := h.Service.List(c.Request.Context(), userID, &q)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.CursorResult{List: items, NextCursor: next, HasMore: next > 0})
	return nil
}

func (h *Notification) UnreadCount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	count, err := h.Service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"count": count})
	return nil
}

func (h *Notification) MarkRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.Service.MarkRead(c.Request.Context(), userID, req.IDs); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *Notification) MarkAllRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	if err := h.Service.MarkAllRead(c.Request.Context(), userID); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *Notification) Announce(c *gin.Context) error {
	var req struct {
		Title   string `json:"title" binding:"required,max=200"`
		Content string `json:"content" binding:"required,max=2000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.Service.Announce(c.Request.Context(), req.Title, req.Content); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"announced": true})
	return nil
}
