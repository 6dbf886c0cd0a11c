package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blogfeed/internal/application"
	"github.com/oksasatya/go-blogfeed/pkg/response"
)

type FollowHandler struct {
	Follows *application.FollowService
	Logger  *logrus.Logger
}

func NewFollowHandler(follows *application.FollowService, logger *logrus.Logger) *FollowHandler {
	return &FollowHandler{Follows: follows, Logger: logger}
}

// Follow creates the follow edge and redirects to the author's profile.
// Trying to follow yourself is ignored, not an error.
func (h *FollowHandler) Follow(c *gin.Context) {
	username := c.Param("username")
	err := h.Follows.Follow(c.Request.Context(), currentUserID(c), username)
	if err != nil && !errors.Is(err, application.ErrSelfFollow) {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
}

// Unfollow removes the edge, if any, and redirects to the profile.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	if err := h.Follows.Unfollow(c.Request.Context(), currentUserID(c), username); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
}

func (h *FollowHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, application.ErrNotFound) {
		resp := response.Error[any](c, http.StatusNotFound, "author not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if h.Logger != nil {
		h.Logger.WithError(err).Error("follow mutation failed")
	}
	resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	c.JSON(resp.Status, resp)
}
