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

type Community struct {
	Config        *config.Config
	Service       service.ICommunityService
	MemberService service.ICommunityMemberService
	Notify        service.INotificationService
}

func (h *Community) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	viewer := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/communities")
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("", viewer, context.Wrap(h.List))
	g.GET("/:community_id", viewer, context.Wrap(h.Get))
	g.PUT("/:community_id", authorize, context.Wrap(h.Update))
	g.DELETE("/:community_id", authorize, context.Wrap(h.Delete))

	g.POST("/:community_id/join", authorize, context.Wrap(h.Join))
	g.DELETE("/:community_id/join", authorize, context.Wrap(h.Leave))
	g.GET("/:community_id/members", viewer, context.Wrap(h.GetMembers))
	g.DELETE("/:community_id/members/:user_id", authorize, context.Wrap(h.Kick))
	g.PUT("/:community_id/members/role", authorize, context.Wrap(h.SetRole))
	g.PUT("/:community_id/transfer", authorize, context.Wrap(h.Transfer))
	g.GET("/:community_id/invite", authorize, context.Wrap(h.InviteCode))
	g.POST("/:community_id/announce", authorize, context.Wrap(h.Announce))

	r.POST("/v1/invites/:code", authorize, context.Wrap(h.JoinByCode))
}

func (h *Community) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.CreateCommunityRequest
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

func (h *Community) Get(c *gin.Context) error {
	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	item, err := h.Service.Get(c.Request.Context(), communityID, context.GetUserIDOrZero(c))
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *Community) List(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := h.Service.List(c.Request.Context(), context.GetUserIDOrZero(c), &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}

func (h *Community) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	var req types.UpdateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.Service.Update(c.Request.Context(), userID, communityID, &req); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *Community) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	if err := h.Service.Delete(c.Request.Context(), userID, communityID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

func (h *Community) Join(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	if err := h.MemberService.Join(c.Request.Context(), userID, communityID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"joined": true})
	return nil
}

func (h *Community) Leave(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	if err := h.MemberService.Leave(c.Request.Context(), userID, communityID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"joined": false})
	return nil
}

func (h *Community) GetMembers(c *gin.Context) error {
	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	members := h.MemberService.GetMembers(c.Request.Context(), communityID)
	response.Success(c, gin.H{"list": members})
	return nil
}

func (h *Community) Kick(c *gin.Context) error {
	actorID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}
	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.MemberService.Kick(c.Request.Context(), actorID, communityID, targetID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"kicked": true})
	return nil
}

func (h *Community) Transfer(c *gin.Context) error {
	actorID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	var req types.TransferOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.MemberService.Transfer(c.Request.Context(), actorID, communityID, req.UserID); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"transferred": true})
	return nil
}

func (h *Community) InviteCode(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	code, err := h.Service.InviteCode(c.Request.Context(), userID, communityID)
	if err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"code": code})
	return nil
}

func (h *Community) JoinByCode(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := h.Service.ResolveInvite(c.Request.Context(), c.Param("code"))
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	if err := h.MemberService.Join(c.Request.Context(), userID, communityID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"joined": true, "community_id": communityID})
	return nil
}

func (h *Community) Announce(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	var req struct {
		Title   string `json:"title" binding:"required,max=160"`
		Content string `json:"content" binding:"required,max=4000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.Notify.AnnounceCommunity(c.Request.Context(), userID, communityID, req.Title, req.Content); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"announced": true})
	return nil
}

func (h *Community) SetRole(c *gin.Context) error {
	actorID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	communityID, err := paramID(c, "community_id")
	if err != nil {
		return err
	}

	var req types.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.MemberService.SetRole(c.Request.Context(), actorID, communityID, req.UserID, req.Role); err != nil {
		return response.NewError(http.StatusForbidden, err.Error())
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}
