package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-social/internal/apperrors"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

var (
	ErrUserNotFound     = apperrors.New(apperrors.ErrNotFound, "User not found.")
	ErrSelfFollow       = apperrors.New(apperrors.ErrValidation, "You cannot follow yourself.")
	ErrAlreadyFollowing = apperrors.New(apperrors.ErrConflict, "You already follow this user.")
	ErrFollowNotFound   = apperrors.New(apperrors.ErrNotFound, "Follow relationship not found.")
)

// UserByIDReader loads users by primary key.
type UserByIDReader interface {
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// PostCounter counts the posts of a user.
type PostCounter interface {
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

// FollowReader defines read operations on follow edges.
type FollowReader interface {
	Get(ctx context.Context, followerID, followedID int64) (*models.FollowDB, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
}

// FollowWriter defines write operations on follow edges.
type FollowWriter interface {
	Save(ctx context.Context, followerID, followedID int64) error
	Delete(ctx context.Context, followerID, followedID int64) (bool, error)
}

// UserService serves profiles and the follow graph.
type UserService struct {
	users        UserByIDReader
	posts        PostCounter
	followReader FollowReader
	followWriter FollowWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(users UserByIDReader, posts PostCounter, followReader FollowReader, followWriter FollowWriter) *UserService {
	return &UserService{
		users:        users,
		posts:        posts,
		followReader: followReader,
		followWriter: followWriter,
	}
}

// GetProfile returns the user with post, follower and following counts.
// The counts are separate queries and are not isolated from concurrent writes.
func (svc *UserService) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := &models.Profile{UserDB: *user}

	if profile.PostCount, err = svc.posts.CountByUser(ctx, userID); err != nil {
		logger.Log.Errorw("failed to count posts", "userID", userID, "err", err)
		return nil, err
	}
	if profile.FollowerCount, err = svc.followReader.CountFollowers(ctx, userID); err != nil {
		logger.Log.Errorw("failed to count followers", "userID", userID, "err", err)
		return nil, err
	}
	if profile.FollowingCount, err = svc.followReader.CountFollowing(ctx, userID); err != nil {
		logger.Log.Errorw("failed to count following", "userID", userID, "err", err)
		return nil, err
	}

	return profile, nil
}

// Follow adds the edge followerID -> followedID.
func (svc *UserService) Follow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	if err := svc.followWriter.Save(ctx, followerID, followedID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return ErrAlreadyFollowing
		}
		logger.Log.Errorw("failed to follow user", "followerID", followerID, "followedID", followedID, "err", err)
		return err
	}
	return nil
}

// Unfollow removes the edge followerID -> followedID.
func (svc *UserService) Unfollow(ctx context.Context, followerID, followedID int64) error {
	deleted, err := svc.followWriter.Delete(ctx, followerID, followedID)
	if err != nil {
		logger.Log.Errorw("failed to unfollow user", "followerID", followerID, "followedID", followedID, "err", err)
		return err
	}
	if !deleted {
		return ErrFollowNotFound
	}
	return nil
}

// IsFollowing reports whether followerID follows userID.
func (svc *UserService) IsFollowing(ctx context.Context, followerID, userID int64) (bool, error) {
	edge, err := svc.followReader.Get(ctx, followerID, userID)
	if err != nil {
		logger.Log.Errorw("failed to check follow status", "followerID", followerID, "userID", userID, "err", err)
		return false, err
	}
	return edge != nil, nil
}
