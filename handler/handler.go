package handler

import (
	"net/http"
	"strconv"

	"DevHub/pkg/context"
	"DevHub/pkg/response"

	"github.com/gin-gonic/gin"
)

// paramID pulls a numeric path parameter, returning a ready BizError so
// handlers can bail out with one line.
func paramID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, response.NewError(http.StatusBadRequest, "missing "+name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// strconvQueryID is paramID for query-string parameters.
func strconvQueryID(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, response.NewError(http.StatusBadRequest, "missing "+name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func roleOf(c *gin.Context) string {
	v, _ := c.Get(context.CtxRole)
	role, _ := v.(string)
	return role
}
