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

type Blog struct {
	Config  *config.Config
	Service service.IBlogService
}

func (h *Blog) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())

	g := r.Group("/v1/blog")
	g.GET("", context.Wrap(h.ListPublished))
	g.GET("/:slug", context.Wrap(h.GetBySlug))

	admin := r.Group("/v1/admin/blog", authorize, middleware.AdminOnly())
	admin.POST("", context.Wrap(h.Create))
	admin.GET("", context.Wrap(h.ListAll))
	admin.PUT("/:post_id", context.Wrap(h.Update))
	admin.DELETE("/:post_id", context.Wrap(h.Delete))
}

func (h *Blog) ListPublished(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := h.Service.ListPublished(c.Request.Context(), &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}

func (h *Blog) GetBySlug(c *gin.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.NewError(http.StatusBadRequest, "missing slug")
	}

	item, err := h.Service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *Blog) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.Service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *Blog) ListAll(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := h.Service.ListAll(c.Request.Context(), &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}

func (h *Blog) Update(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	var req types.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.Service.Update(c.Request.Context(), postID, &req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *Blog) Delete(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.Service.Delete(c.Request.Context(), postID); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
