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

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret), f.Config.Jwt.AccessTTL())
	viewer := middleware.OptionalAuth([]byte(f.Config.Jwt.Secret))

	g := r.Group("/v1/users")
	g.POST("/:user_id/follow", authorize, context.Wrap(f.FollowUser))
	g.DELETE("/:user_id/follow", authorize, context.Wrap(f.UnfollowUser))
	g.GET("/:user_id/follow", authorize, context.Wrap(f.GetFollowStatus))
	g.GET("/:user_id/following", viewer, context.Wrap(f.GetFollowingList))
	g.GET("/:user_id/followers", viewer, context.Wrap(f.GetFollowerList))
}

func (f *Follow) FollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	if err := f.FollowService.Follow(c.Request.Context(), userID, targetID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"followed": true})
	return nil
}

func (f *Follow) UnfollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	if err := f.FollowService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"followed": false})
	return nil
}

func (f *Follow) GetFollowStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	isFollowing, err := f.FollowService.IsFollowing(c.Request.Context(), userID, targetID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"is_following": isFollowing})
	return nil
}

func (f *Follow) GetFollowingList(c *gin.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	var q types.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	q.Normalize()

	list, err := f.FollowService.GetFollowing(c.Request.Context(), userID, context.GetUserIDOrZero(c), q.Cursor, q.Limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"list": list})
	return nil
}

func (f *Follow) GetFollowerList(c *gin.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	var q types.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	q.Normalize()

	list, err := f.FollowService.GetFollowers(c.Request.Context(), userID, context.GetUserIDOrZero(c), q.Cursor, q.Limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"list": list})
	return nil
}
