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

type Snippet struct {
	Config         *config.Config
	SnippetService service.ISnippetService
	LikeService    service.ILikeService
	CollectService service.ICollectService
}

func (s *Snippet) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret), s.Config.Jwt.AccessTTL())
	viewer := middleware.OptionalAuth([]byte(s.Config.Jwt.Secret))

	g := r.Group("/v1/snippets")
	g.POST("", authorize, context.Wrap(s.Create))
	g.GET("/:snippet_id", viewer, context.Wrap(s.Get))
	g.PUT("/:snippet_id", authorize, context.Wrap(s.Update))
	g.DELETE("/:snippet_id", authorize, context.Wrap(s.Delete))
	g.POST("/:snippet_id/like", authorize, context.Wrap(s.Like))
	g.DELETE("/:snippet_id/like", authorize, context.Wrap(s.Unlike))
	g.POST("/:snippet_id/save", authorize, context.Wrap(s.Save))
	g.DELETE("/:snippet_id/save", authorize, context.Wrap(s.Unsave))

	// Share links carry an opaque id instead of the numeric one.
	r.GET("/v1/share/snippets/:share_id", viewer, context.Wrap(s.GetByShareID))
	r.GET("/v1/users/:user_id/snippets", viewer, context.Wrap(s.ListByUser))
	r.GET("/v1/me/saved/snippets", authorize, context.Wrap(s.ListSaved))
}

func (s *Snippet) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.CreateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := s.SnippetService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (s *Snippet) Get(c *gin.Context) error {
	snippetID, err := paramID(c, "snippet_id")
	if err != nil {
		return err
	}

	item, err := s.SnippetService.Get(c.Request.Context(), snippetID, context.GetUserIDOrZero(c))
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (s *Snippet) GetByShareID(c *gin.Context) error {
	shareID := c.Param("share_id")
	if shareID == "" {
		return response.NewError(http.StatusBadRequest, "missing share_id")
	}

	item, err := s.SnippetService.GetByShareID(c.Request.Context(), shareID, context.GetUserIDOrZero(c))
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (s *Snippet) ListByUser(c *gin.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := s.SnippetService.ListByUser(c.Request.Context(), userID, context.GetUserIDOrZero(c), &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}

func (s *Snippet) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	snippetID, err := paramID(c, "snippet_id")
	if err != nil {
		return err
	}

	var req types.UpdateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := s.SnippetService.Update(c.Request.Context(), userID, snippetID, &req); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

func (s *Snippet) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	snippetID, err := paramID(c, "snippet_id")
	if err != nil {
		return err
	}

	if err := s.SnippetService.Delete(c.Request.Context(), userID, roleOf(c), snippetID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

func (s *Snippet) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	snippetID, err := paramID(c, "snippet_id")
	if err != nil {
		return err
	}

	if err := s.LikeService.LikeSnippet(c.Request.Context(), userID, snippetID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"liked": true})
	return nil
}

func (s *Snippet) Unlike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	snippetID, err := paramID(c, "snippet_id")
	if err != nil {
		return err
	}

	if err := s.LikeService.UnlikeSnippet(c.Request.Context(), userID, snippetID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"liked": false})
	return nil
}

func (s *Snippet) Save(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	snippetID, err := paramID(c, "snippet_id")
	if err != nil {
		return err
	}

	if err := s.CollectService.SaveSnippet(c.Request.Context(), userID, snippetID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"saved": true})
	return nil
}

func (s *Snippet) Unsave(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	snippetID, err := paramID(c, "snippet_id")
	if err != nil {
		return err
	}

	if err := s.CollectService.UnsaveSnippet(c.Request.Context(), userID, snippetID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"saved": false})
	return nil
}

func (s *Snippet) ListSaved(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := s.CollectService.ListSavedSnippets(c.Request.Context(), userID, &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}
