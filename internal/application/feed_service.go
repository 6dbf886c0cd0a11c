package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blogfeed/internal/cache"
	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
	"github.com/oksasatya/go-blogfeed/internal/domain/repository"
)

// Selector picks which posts a feed is built from.
type Selector struct {
	kind   selectorKind
	arg    string
	userID int64
}

type selectorKind int

const (
	selectAll selectorKind = iota
	selectGroup
	selectAuthor
	selectFollowed
)

// AllFeed selects every post.
func AllFeed() Selector { return Selector{kind: selectAll} }

// GroupFeed selects posts published under the group with the given slug.
func GroupFeed(slug string) Selector { return Selector{kind: selectGroup, arg: slug} }

// AuthorFeed selects posts written by the given username.
func AuthorFeed(username string) Selector { return Selector{kind: selectAuthor, arg: username} }

// FollowedFeed selects posts written by authors the user follows.
// userID == 0 means no authenticated user.
func FollowedFeed(userID int64) Selector { return Selector{kind: selectFollowed, userID: userID} }

// CacheKey identifies a cached page of this selector. The requested
// (pre-clamp) page number is part of the key, matching how the page is
// addressed by the client.
func (s Selector) CacheKey(page int) string {
	switch s.kind {
	case selectGroup:
		return fmt.Sprintf("group:%s:p%d", s.arg, page)
	case selectAuthor:
		return fmt.Sprintf("author:%s:p%d", s.arg, page)
	case selectFollowed:
		return fmt.Sprintf("followed:%d:p%d", s.userID, page)
	default:
		return fmt.Sprintf("all:p%d", page)
	}
}

// FeedService is the feed query engine: it resolves a selector against
// the store, paginates, and reads through the page cache.
type FeedService struct {
	Posts    repository.PostRepository
	Users    repository.UserRepository
	Groups   repository.GroupRepository
	Follows  repository.FollowRepository
	Cache    cache.PageCache
	Logger   *logrus.Logger
	PageSize int
	CacheTTL time.Duration
}

func NewFeedService(posts repository.PostRepository, users repository.UserRepository, groups repository.GroupRepository, follows repository.FollowRepository, pc cache.PageCache, logger *logrus.Logger, pageSize int, cacheTTL time.Duration) *FeedService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &FeedService{
		Posts:    posts,
		Users:    users,
		Groups:   groups,
		Follows:  follows,
		Cache:    pc,
		Logger:   logger,
		PageSize: pageSize,
		CacheTTL: cacheTTL,
	}
}

// GetFeed returns one page of the selected feed, newest post first.
// Page numbers are 1-indexed; out-of-range pages clamp to the nearest
// valid page. A cached page is returned as-is even when the underlying
// post set has changed since it was stored.
func (s *FeedService) GetFeed(ctx context.Context, sel Selector, page int) (entity.FeedPage, error) {
	filter, err := s.resolve(ctx, sel)
	if err != nil {
		return entity.FeedPage{}, err
	}

	key := sel.CacheKey(page)
	if s.Cache != nil {
		if cached, ok, cErr := s.Cache.Get(ctx, key); cErr == nil && ok {
			return cached, nil
		} else if cErr != nil && s.Logger != nil {
			s.Logger.WithError(cErr).WithField("key", key).Warn("page cache read failed")
		}
	}

	total, err := s.Posts.Count(ctx, filter)
	if err != nil {
		return entity.FeedPage{}, err
	}

	pages := (total + s.PageSize - 1) / s.PageSize
	if pages < 1 {
		pages = 1
	}
	current := page
	if current < 1 {
		current = 1
	}
	if current > pages {
		current = pages
	}

	items, err := s.Posts.List(ctx, filter, s.PageSize, (current-1)*s.PageSize)
	if err != nil {
		return entity.FeedPage{}, err
	}

	result := entity.FeedPage{
		Items:      items,
		TotalCount: total,
		Page:       current,
		PageSize:   s.PageSize,
		HasNext:    current < pages,
		HasPrev:    current > 1,
	}

	if s.Cache != nil && s.CacheTTL > 0 {
		if cErr := s.Cache.Set(ctx, key, result, s.CacheTTL); cErr != nil && s.Logger != nil {
			s.Logger.WithError(cErr).WithField("key", key).Warn("page cache write failed")
		}
	}

	return result, nil
}

// resolve maps a selector onto a post filter, verifying that the slug
// or username it names actually exists.
func (s *FeedService) resolve(ctx context.Context, sel Selector) (repository.PostFilter, error) {
	switch sel.kind {
	case selectGroup:
		g, err := s.Groups.GetBySlug(ctx, sel.arg)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return repository.PostFilter{}, ErrNotFound
			}
			return repository.PostFilter{}, err
		}
		return repository.PostFilter{GroupID: &g.ID}, nil

	case selectAuthor:
		u, err := s.Users.GetByUsername(ctx, sel.arg)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return repository.PostFilter{}, ErrNotFound
			}
			return repository.PostFilter{}, err
		}
		return repository.PostFilter{AuthorID: &u.ID}, nil

	case selectFollowed:
		if sel.userID == 0 {
			return repository.PostFilter{}, ErrUnauthorized
		}
		ids, err := s.Follows.AuthorIDs(ctx, sel.userID)
		if err != nil {
			return repository.PostFilter{}, err
		}
		if ids == nil {
			ids = []int64{}
		}
		return repository.PostFilter{AuthorIn: ids}, nil

	default:
		return repository.PostFilter{}, nil
	}
}
