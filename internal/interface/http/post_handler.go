package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blogfeed/internal/application"
	"github.com/oksasatya/go-blogfeed/pkg/response"
	"github.com/oksasatya/go-blogfeed/pkg/validation"
)

type PostHandler struct {
	Posts  *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(posts *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Posts: posts, Logger: logger}
}

type createPostRequest struct {
	Text  string `form:"text" binding:"required"`
	Group string `form:"group"`
}

type editPostRequest struct {
	Text string `form:"text"`
}

type commentRequest struct {
	Text string `form:"text" binding:"required"`
}

// View serves a single post together with its comments.
func (h *PostHandler) View(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		h.notFound(c)
		return
	}
	detail, err := h.Posts.GetPost(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, detail, "post", nil)
	c.JSON(resp.Status, resp)
}

// Create stores a new post and redirects to the author's profile.
// An empty text is a form error, not a write.
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBind(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid form", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	in := application.CreatePostInput{Text: req.Text, GroupSlug: req.Group, Image: h.imageUpload(c)}
	if _, err := h.Posts.CreatePost(c.Request.Context(), currentUserID(c), in); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", currentUsername(c)))
}

// Edit applies a partial update to the requester's own post. A
// non-author is silently redirected back to the post view.
func (h *PostHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		h.notFound(c)
		return
	}
	var req editPostRequest
	if err := c.ShouldBind(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid form", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	in := application.EditPostInput{Text: req.Text, Image: h.imageUpload(c)}
	// A submitted empty group field detaches the group; an absent field
	// keeps it.
	if slug, ok := c.GetPostForm("group"); ok {
		in.GroupSlug = &slug
	}
	_, err := h.Posts.EditPost(c.Request.Context(), currentUserID(c), id, in)
	if err != nil && !errors.Is(err, application.ErrForbidden) {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
}

// Comment attaches a comment and redirects back to the post view.
func (h *PostHandler) Comment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		h.notFound(c)
		return
	}
	var req commentRequest
	if err := c.ShouldBind(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid form", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	if _, err := h.Posts.AddComment(c.Request.Context(), currentUserID(c), id, req.Text); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
}

// Delete removes the requester's own post. A non-author is silently
// redirected back, the same shape as Edit.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		h.notFound(c)
		return
	}
	err := h.Posts.DeletePost(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		if errors.Is(err, application.ErrForbidden) {
			c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
			return
		}
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", currentUsername(c)))
}

// imageUpload extracts the optional multipart image, if any.
func (h *PostHandler) imageUpload(c *gin.Context) *application.ImageUpload {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return nil
	}
	f, err := fh.Open()
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("image open failed")
		}
		return nil
	}
	return &application.ImageUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}
}

func (h *PostHandler) notFound(c *gin.Context) {
	resp := response.Error[any](c, http.StatusNotFound, "post not found", nil)
	c.JSON(resp.Status, resp)
}

func (h *PostHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		h.notFound(c)
	case errors.Is(err, application.ErrForbidden):
		resp := response.Error[any](c, http.StatusForbidden, "not the author", nil)
		c.JSON(resp.Status, resp)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("post mutation failed")
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		c.JSON(resp.Status, resp)
	}
}
