package handler

import (
	"net/http"

	"DevHub/config"
	"DevHub/middleware"
	"DevHub/pkg/context"
	"DevHub/pkg/response"
	"DevHub/service"

	"github.com/gin-gonic/gin"
)

type Upload struct {
	Config        *config.Config
	UploadService service.IUploadService
}

func (h *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())

	g := r.Group("/v1/upload", authorize)
	g.POST("/image", context.Wrap(h.UploadImage))
}

func (h *Upload) UploadImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	purpose := c.PostForm("purpose")
	if purpose == "" {
		purpose = service.UploadPurposePost
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "missing file")
	}

	resp, err := h.UploadService.UploadImage(c.Request.Context(), userID, purpose, header)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, resp)
	return nil
}
