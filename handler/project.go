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

type Project struct {
	Config         *config.Config
	ProjectService service.IProjectService
	LikeService    service.ILikeService
	CollectService service.ICollectService
}

func (p *Project) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret), p.Config.Jwt.AccessTTL())
	viewer := middleware.OptionalAuth([]byte(p.Config.Jwt.Secret))

	g := r.Group("/v1/projects")
	g.POST("", authorize, context.Wrap(p.Create))
	g.GET("/:project_id", viewer, context.Wrap(p.Get))
	g.PUT("/:project_id", authorize, context.Wrap(p.Update))
	g.DELETE("/:project_id", authorize, context.Wrap(p.Delete))
	g.POST("/:project_id/like", authorize, context.Wrap(p.Like))
	g.DELETE("/:project_id/like", authorize, context.Wrap(p.Unlike))
	g.POST("/:project_id/save", authorize, context.Wrap(p.Save))
	g.DELETE("/:project_id/save", authorize, context.Wrap(p.Unsave))

	r.GET("/v1/users/:user_id/projects", viewer, context.Wrap(p.ListByUser))
	r.GET("/v1/me/saved/projects", authorize, context.Wrap(p.ListSaved))
}

func (p *Project) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := p.ProjectService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (p *Project) Get(c *gin.Context) error {
	projectID, err := paramID(c, "project_id")
	if err != nil {
		return err
	}

	item, err := p.ProjectService.Get(c.Request.Context(), projectID, context.GetUserIDOrZero(c))
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (p *Project) ListByUser(c *gin.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := p.ProjectService.ListByUser(c.Request.Context(), userID, context.GetUserIDOrZero(c), &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}

func (p *Project) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	projectID, err := paramID(c, "project_id")
	if err != nil {
		return err
	}

	var req types.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := p.ProjectService.Update(c.Request.Context(), userID, projectID, &req); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

func (p *Project) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	projectID, err := paramID(c, "project_id")
	if err != nil {
		return err
	}

	if err := p.ProjectService.Delete(c.Request.Context(), userID, roleOf(c), projectID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

func (p *Project) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	projectID, err := paramID(c, "project_id")
	if err != nil {
		return err
	}

	if err := p.LikeService.LikeProject(c.Request.Context(), userID, projectID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"liked": true})
	return nil
}

func (p *Project) Unlike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	projectID, err := paramID(c, "project_id")
	if err != nil {
		return err
	}

	if err := p.LikeService.UnlikeProject(c.Request.Context(), userID, projectID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"liked": false})
	return nil
}

func (p *Project) Save(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	projectID, err := paramID(c, "project_id")
	if err != nil {
		return err
	}

	if err := p.CollectService.SaveProject(c.Request.Context(), userID, projectID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"saved": true})
	return nil
}

func (p *Project) Unsave(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	projectID, err := paramID(c, "project_id")
	if err != nil {
		return err
	}

	if err := p.CollectService.UnsaveProject(c.Request.Context(), userID, projectID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"saved": false})
	return nil
}

func (p *Project) ListSaved(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := p.CollectService.ListSavedProjects(c.Request.Context(), userID, &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}
