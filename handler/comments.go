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

type Comments struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comments) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	viewer := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/comments")
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("", viewer, context.Wrap(h.ListRoots))
	g.GET("/:comment_id/replies", viewer, context.Wrap(h.ListReplies))
	g.DELETE("/:comment_id", authorize, context.Wrap(h.Delete))
	g.POST("/:comment_id/like", authorize, context.Wrap(h.Like))
	g.DELETE("/:comment_id/like", authorize, context.Wrap(h.Unlike))
}

func (h *Comments) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.CommentService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *Comments) ListRoots(c *gin.Context) error {
	targetType := c.Query("target_type")
	if targetType != "project" && targetType != "snippet" {
		return response.NewError(http.StatusBadRequest, "invalid target_type")
	}

	targetID, err := strconvQueryID(c, "target_id")
	if err != nil {
		return err
	}

	var q types.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, next, err := h.CommentService.ListRoots(c.Request.Context(), targetType, targetID, context.GetUserIDOrZero(c), &q)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.CursorResult{List: items, NextCursor: next, HasMore: next > 0})
	return nil
}

func (h *Comments) ListReplies(c *gin.Context) error {
	rootID, err := paramID(c, "comment_id")
	if err != nil {
		return err
	}

	var q types.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, next, err := h.CommentService.ListReplies(c.Request.Context(), rootID, context.GetUserIDOrZero(c), &q)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.CursorResult{List: items, NextCursor: next, HasMore: next > 0})
	return nil
}

func (h *Comments) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	commentID, err := paramID(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.CommentService.Delete(c.Request.Context(), userID, roleOf(c), commentID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

func (h *Comments) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	commentID, err := paramID(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.CommentService.Like(c.Request.Context(), userID, commentID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"liked": true})
	return nil
}

func (h *Comments) Unlike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	commentID, err := paramID(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.CommentService.Unlike(c.Request.Context(), userID, commentID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"liked": false})
	return nil
}
