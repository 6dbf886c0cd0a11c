package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
	"github.com/oksasatya/go-blogfeed/internal/domain/repository"
)

// FollowService is the follow gate: it owns the self-follow rule and
// the one-edge-per-pair invariant on top of the follow repository.
type FollowService struct {
	Users   repository.UserRepository
	Follows repository.FollowRepository
	Logger  *logrus.Logger
}

func NewFollowService(users repository.UserRepository, follows repository.FollowRepository, logger *logrus.Logger) *FollowService {
	return &FollowService{Users: users, Follows: follows, Logger: logger}
}

// Follow ensures an edge from user to the named author. Following
// yourself returns ErrSelfFollow and writes nothing; following someone
// you already follow is a no-op.
func (s *FollowService) Follow(ctx context.Context, userID int64, authorUsername string) error {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return ErrSelfFollow
	}
	if err := s.Follows.Upsert(ctx, userID, author.ID); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "author": authorUsername}).Debug("follow edge ensured")
	}
	return nil
}

// Unfollow removes the edge if it exists. Unfollowing someone you do
// not follow is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID int64, authorUsername string) error {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.Follows.Delete(ctx, userID, author.ID)
}

// IsFollowing reports whether user follows author, scoped to exactly
// that pair.
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID int64) (bool, error) {
	if userID == 0 || userID == authorID {
		return false, nil
	}
	return s.Follows.Exists(ctx, userID, authorID)
}

func (s *FollowService) resolveAuthor(ctx context.Context, username string) (*entity.User, error) {
	author, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return author, nil
}
