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

type CommunityPost struct {
	Config      *config.Config
	PostService service.ICommunityPostService
}

func (h *CommunityPost) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	viewer := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))

	r.POST("/v1/communities/:community_id/posts", authorize, context.Wrap(h.Create))
	r.GET("/v1/communities/:community_id/posts", viewer, context.Wrap(h.List))

	g := r.Group("/v1/posts")
	g.GET("/:post_id", viewer, context.Wrap(h.Get))
	g.DELETE("/:post_id", authorize, context.Wrap(h.Delete))
	g.POST("/:post_id/like", authorize, context.Wrap(h.Like))
	g.DELETE("/:post_id/like", authorize, context.Wrap(h.Unlike))
	g.POST("/:post_id/comments", authorize, context.Wrap(h.CreateComment))
	g.GET("/:post_id/comments", viewer, context.Wrap(h.ListComments))

	r.DELETE("/v1/post-comments/:comment_id", authorize, context.Wrap(h.DeleteComment))
}

func (h *CommunityPost) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.PostService.CreatePost(c.Request.Context(), userID, communityID, &req)
	if err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *CommunityPost) Get(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	item, err := h.PostService.GetPost(c.Request.Context(), postID, context.GetUserIDOrZero(c))
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *CommunityPost) List(c *gin.Context) error {
	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	var q types.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, next, err := h.PostService.ListPosts(c.Request.Context(), communityID, context.GetUserIDOrZero(c), &q)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.CursorResult{List: items, NextCursor: next, HasMore: next > 0})
	return nil
}

func (h *CommunityPost) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.PostService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

func (h *CommunityPost) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.PostService.LikePost(c.Request.Context(), userID, postID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"liked": true})
	return nil
}

func (h *CommunityPost) Unlike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.PostService.UnlikePost(c.Request.Context(), userID, postID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"liked": false})
	return nil
}

func (h *CommunityPost) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	var req types.CreatePostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.PostService.CreateComment(c.Request.Context(), userID, postID, &req)
	if err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *CommunityPost) ListComments(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	var q types.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, next, err := h.PostService.ListComments(c.Request.Context(), postID, &q)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.CursorResult{List: items, NextCursor: next, HasMore: next > 0})
	return nil
}

func (h *CommunityPost) DeleteComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	commentID, err := paramID(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.PostService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
