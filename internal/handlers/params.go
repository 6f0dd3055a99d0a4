package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

// actorOr401 writes 401 and returns false when the request is anonymous.
func actorOr401(c *gin.Context) (access.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Login required.")
		return access.Actor{}, false
	}
	return actor, true
}

// pathID parses a positive numeric path parameter, writing 400 otherwise.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Invalid "+name+".")
		return 0, false
	}
	return uint(id), true
}

// queryID parses an optional numeric query parameter; absent means 0.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Invalid "+name+".")
		return 0, false
	}
	return uint(id), true
}

// pagination reads page (1-based) and limit with the given default and cap.
func pagination(c *gin.Context, def, max int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if limit <= 0 || limit > max {
		limit = def
	}

	return page, limit, (page - 1) * limit
}
