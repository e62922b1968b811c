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

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret), a.Config.Jwt.AccessTTL())
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
	g.POST("/refresh", context.Wrap(a.Refresh))
	g.GET("/me", authorize, context.Wrap(a.Me))
	g.PUT("/password", authorize, context.Wrap(a.ChangePassword))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := a.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, resp)
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := a.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	response.Success(c, resp)
	return nil
}

func (a *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	pair, err := a.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	response.Success(c, pair)
	return nil
}

func (a *Auth) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	info, err := a.AuthService.Me(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	response.Success(c, info)
	return nil
}

func (a *Auth) ChangePassword(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := a.AuthService.UpdatePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}
