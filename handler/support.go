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

type Support struct {
	Config  *config.Config
	Service service.ISupportService
}

func (h *Support) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())

	g := r.Group("/v1/support", authorize)
	g.POST("", context.Wrap(h.Create))
	g.GET("/mine", context.Wrap(h.ListMine))

	admin := r.Group("/v1/admin/support", authorize, middleware.AdminOnly())
	admin.GET("/open", context.Wrap(h.ListOpen))
	admin.PUT("/:request_id/resolve", context.Wrap(h.Resolve))
}

func (h *Support) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.CreateSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.Service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *Support) ListMine(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := h.Service.ListMine(c.Request.Context(), userID, &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}

func (h *Support) ListOpen(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := h.Service.ListOpen(c.Request.Context(), &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}

func (h *Support) Resolve(c *gin.Context) error {
	requestID, err := paramID(c, "request_id")
	if err != nil {
		return err
	}

	if err := h.Service.Resolve(c.Request.Context(), requestID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"resolved": true})
	return nil
}
