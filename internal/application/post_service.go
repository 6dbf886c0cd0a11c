package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
	"github.com/oksasatya/go-blogfeed/internal/domain/repository"
	"github.com/oksasatya/go-blogfeed/pkg/helpers"
)

// PostService owns post and comment mutations. Creating or editing a
// post does not touch the page cache; cached feed pages age out on
// their own TTL.
type PostService struct {
	Posts     repository.PostRepository
	Comments  repository.CommentRepository
	Groups    repository.GroupRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewPostService(posts repository.PostRepository, comments repository.CommentRepository, groups repository.GroupRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *PostService {
	return &PostService{
		Posts:     posts,
		Comments:  comments,
		Groups:    groups,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Logger:    logger,
	}
}

// ImageUpload carries an uploaded image towards the blob store. The
// service closes Reader once the mutation finishes, uploaded or not.
type ImageUpload struct {
	Reader      io.ReadCloser
	Filename    string
	ContentType string
}

type CreatePostInput struct {
	Text      string
	GroupSlug string // optional
	Image     *ImageUpload
}

// EditPostInput applies a partial update: empty Text keeps the prior
// text, nil GroupSlug keeps the prior group while an empty one detaches
// it, nil Image keeps the prior image.
type EditPostInput struct {
	Text      string
	GroupSlug *string
	Image     *ImageUpload
}

type PostDetail struct {
	Post     entity.Post
	Comments []entity.Comment
}

// CreatePost stores a new post owned by authorID. Text non-emptiness is
// enforced at the request boundary; an unknown group slug is ErrNotFound.
func (s *PostService) CreatePost(ctx context.Context, authorID int64, in CreatePostInput) (*entity.Post, error) {
	if in.Image != nil {
		defer func() { _ = in.Image.Reader.Close() }()
	}
	p := &entity.Post{Text: in.Text, AuthorID: authorID}

	if in.GroupSlug != "" {
		g, err := s.resolveGroup(ctx, in.GroupSlug)
		if err != nil {
			return nil, err
		}
		p.GroupID = &g.ID
		p.GroupSlug = &g.Slug
	}

	if in.Image != nil {
		url, err := s.uploadImage(ctx, authorID, in.Image)
		if err != nil {
			return nil, err
		}
		p.ImageURL = url
	}

	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "author_id": authorID}).Info("post created")
	}
	return p, nil
}

// EditPost applies the provided fields to a post the requester owns.
// A non-author requester gets ErrForbidden and the post is untouched.
func (s *PostService) EditPost(ctx context.Context, requesterID, postID int64, in EditPostInput) (*entity.Post, error) {
	if in.Image != nil {
		defer func() { _ = in.Image.Reader.Close() }()
	}
	p, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != requesterID {
		return nil, ErrForbidden
	}

	if in.Text != "" {
		p.Text = in.Text
	}
	if in.GroupSlug != nil {
		if *in.GroupSlug == "" {
			p.GroupID = nil
			p.GroupSlug = nil
		} else {
			g, err := s.resolveGroup(ctx, *in.GroupSlug)
			if err != nil {
				return nil, err
			}
			p.GroupID = &g.ID
			p.GroupSlug = &g.Slug
		}
	}
	if in.Image != nil {
		url, err := s.uploadImage(ctx, requesterID, in.Image)
		if err != nil {
			return nil, err
		}
		p.ImageURL = url
	}

	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPost returns a post together with its comments, oldest first.
func (s *PostService) GetPost(ctx context.Context, postID int64) (*PostDetail, error) {
	p, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	comments, err := s.Comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: *p, Comments: comments}, nil
}

// AddComment attaches a comment to an existing post.
func (s *PostService) AddComment(ctx context.Context, authorID, postID int64, text string) (*entity.Comment, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}
	c := &entity.Comment{Text: text, AuthorID: authorID, PostID: postID}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeletePost removes a post the requester owns. Cached feed pages that
// still contain the post keep serving it until their TTL expires.
func (s *PostService) DeletePost(ctx context.Context, requesterID, postID int64) error {
	p, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if p.AuthorID != requesterID {
		return ErrForbidden
	}
	return s.Posts.Delete(ctx, postID)
}

func (s *PostService) getPost(ctx context.Context, postID int64) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) resolveGroup(ctx context.Context, slug string) (*entity.Group, error) {
	g, err := s.Groups.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *PostService) uploadImage(ctx context.Context, authorID int64, img *ImageUpload) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(img.Filename))
	objectPath := filepath.ToSlash(filepath.Join("posts", strconv.FormatInt(authorID, 10), id+ext))
	return helpers.UploadImage(ctx, s.GCS, s.GCSBucket, objectPath, img.ContentType, img.Reader)
}
