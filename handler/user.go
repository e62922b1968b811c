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

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret), u.Config.Jwt.AccessTTL())
	viewer := middleware.OptionalAuth([]byte(u.Config.Jwt.Secret))

	g := r.Group("/v1/users")
	g.GET("/:user_id", viewer, context.Wrap(u.GetProfile))
	g.PUT("/me", authorize, context.Wrap(u.UpdateProfile))

	admin := r.Group("/v1/admin/users", authorize, middleware.AdminOnly())
	admin.PUT("/:user_id/ban", context.Wrap(u.Ban))
	admin.DELETE("/:user_id/ban", context.Wrap(u.Unban))
}

func (u *User) GetProfile(c *gin.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	profile, err := u.UserService.GetProfile(c.Request.Context(), userID, context.GetUserIDOrZero(c))
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, profile)
	return nil
}

func (u *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := u.UserService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

func (u *User) Ban(c *gin.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	if err := u.UserService.SetBanned(c.Request.Context(), userID, true); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"banned": true})
	return nil
}

func (u *User) Unban(c *gin.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	if err := u.UserService.SetBanned(c.Request.Context(), userID, false); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"banned": false})
	return nil
}
