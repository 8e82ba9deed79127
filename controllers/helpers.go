package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

// fail writes err with the status matching its class. Infrastructure
// errors never reach the client verbatim.
func fail(c *gin.Context, err error) {
	if !services.IsBusiness(err) {
		resp.ServerError(c, err)
		return
	}
	switch {
	case errors.Is(err, services.ErrLoginFailed), errors.Is(err, services.ErrAccountDisabled):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	default:
		resp.BadRequest(c, err.Error())
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryIDs accepts ids=1,2,3 as well as repeated ids parameters.
func queryIDs(c *gin.Context, name string) ([]int64, bool) {
	var ids []int64
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				resp.BadRequest(c, "invalid "+name)
				return nil, false
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		resp.BadRequest(c, name+" is required")
		return nil, false
	}
	return ids, true
}

// optionalInt reads an optional integer query parameter.
func optionalInt(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return nil, false
	}
	return &v, true
}

func bindPage(c *gin.Context) (dto.PageQuery, bool) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return q, false
	}
	return q, true
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
