// Package handlers exposes the feed, post, follow and auth endpoints.
// Reads answer 200 with a JSON envelope; successful writes answer with
// a 302 redirect to the view that shows their effect, mirroring the
// classic server-rendered flow.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blogfeed/internal/interface/middleware"
)

// currentUserID returns the authenticated user's id, or 0 when the
// request carries no identity.
func currentUserID(c *gin.Context) int64 {
	raw := c.GetString(middleware.CtxUserIDKey)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func currentUsername(c *gin.Context) string {
	return c.GetString(middleware.CtxUsernameKey)
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
