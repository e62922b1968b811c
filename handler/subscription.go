package handler

import (
	"net/http"
	"net/url"
	"strings"

	"DevHub/config"
	"DevHub/middleware"
	"DevHub/pkg/context"
	"DevHub/pkg/response"
	"DevHub/service"
	"DevHub/types"

	"github.com/gin-gonic/gin"
)

type Subscription struct {
	Config        *config.Config
	Service       service.ISubscriptionService
	UploadService service.IUploadService
}

func (h *Subscription) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())

	g := r.Group("/v1/subscriptions", authorize)
	g.POST("", context.Wrap(h.Request))
	g.GET("/me", context.Wrap(h.MyStatus))

	admin := r.Group("/v1/admin/subscriptions", authorize, middleware.AdminOnly())
	admin.GET("/pending", context.Wrap(h.ListPending))
	admin.PUT("/:subscription_id/review", context.Wrap(h.Review))
	admin.GET("/receipt-url", context.Wrap(h.SignReceiptURL))
}

func (h *Subscription) Request(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.RequestProRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.Service.Request(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *Subscription) MyStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	item, err := h.Service.MyStatus(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, item)
	return nil
}

func (h *Subscription) ListPending(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	items, total, err := h.Service.ListPending(c.Request.Context(), &page)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.PageResult{List: items, Total: total})
	return nil
}

func (h *Subscription) Review(c *gin.Context) error {
	reviewerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	subscriptionID, err := paramID(c, "subscription_id")
	if err != nil {
		return err
	}

	var req types.ReviewProRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.Service.Review(c.Request.Context(), reviewerID, subscriptionID, req.Approve); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"approved": req.Approve})
	return nil
}

// SignReceiptURL turns a stored receipt URL into a short-lived signed link.
// Receipts live in a private bucket, so the raw URL is not fetchable.
func (h *Subscription) SignReceiptURL(c *gin.Context) error {
	receiptURL := c.Query("url")
	if receiptURL == "" {
		return response.NewError(http.StatusBadRequest, "missing url")
	}

	parsed, err := url.Parse(receiptURL)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid url")
	}
	objectKey := strings.TrimPrefix(parsed.Path, "/")

	signed, err := h.UploadService.SignReceiptURL(c.Request.Context(), objectKey, 600)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"url": signed})
	return nil
}
