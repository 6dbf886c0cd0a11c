package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blogfeed/internal/application"
	"github.com/oksasatya/go-blogfeed/pkg/response"
)

type FeedHandler struct {
	Feeds   *application.FeedService
	Follows *application.FollowService
	Logger  *logrus.Logger
}

func NewFeedHandler(feeds *application.FeedService, follows *application.FollowService, logger *logrus.Logger) *FeedHandler {
	return &FeedHandler{Feeds: feeds, Follows: follows, Logger: logger}
}

// Index serves the global feed.
func (h *FeedHandler) Index(c *gin.Context) {
	page, err := h.Feeds.GetFeed(c.Request.Context(), application.AllFeed(), pageParam(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, page, "feed", nil)
	c.JSON(resp.Status, resp)
}

// GroupFeed serves posts published under one group.
func (h *FeedHandler) GroupFeed(c *gin.Context) {
	slug := c.Param("slug")
	page, err := h.Feeds.GetFeed(c.Request.Context(), application.GroupFeed(slug), pageParam(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, page, "group feed", gin.H{"group": slug})
	c.JSON(resp.Status, resp)
}

// ProfileFeed serves one author's posts plus whether the viewer follows
// them. The flag is scoped to the (viewer, author) pair.
func (h *FeedHandler) ProfileFeed(c *gin.Context) {
	username := c.Param("username")
	page, err := h.Feeds.GetFeed(c.Request.Context(), application.AuthorFeed(username), pageParam(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	following := false
	if viewerID := currentUserID(c); viewerID != 0 {
		author, aErr := h.Feeds.Users.GetByUsername(c.Request.Context(), username)
		if aErr == nil {
			var fErr error
			following, fErr = h.Follows.IsFollowing(c.Request.Context(), viewerID, author.ID)
			if fErr != nil && h.Logger != nil {
				h.Logger.WithError(fErr).WithField("author", username).Warn("follow lookup failed")
			}
		}
	}

	resp := response.Success(c, http.StatusOK, page, "profile feed", gin.H{"author": username, "following": following})
	c.JSON(resp.Status, resp)
}

// FollowFeed serves posts by the authors the viewer follows.
func (h *FeedHandler) FollowFeed(c *gin.Context) {
	page, err := h.Feeds.GetFeed(c.Request.Context(), application.FollowedFeed(currentUserID(c)), pageParam(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, page, "follow feed", nil)
	c.JSON(resp.Status, resp)
}

func (h *FeedHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		resp := response.Error[any](c, http.StatusNotFound, "not found", nil)
		c.JSON(resp.Status, resp)
	case errors.Is(err, application.ErrUnauthorized):
		resp := response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
		c.JSON(resp.Status, resp)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("feed query failed")
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		c.JSON(resp.Status, resp)
	}
}
