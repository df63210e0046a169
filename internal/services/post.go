package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-social/internal/apperrors"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=post.go -destination=mock_post.go -package=services

// DefaultFeedLimit bounds the feed when no limit is configured.
const DefaultFeedLimit = 100

var (
	ErrEmptyPostContent    = apperrors.New(apperrors.ErrValidation, "Post content cannot be empty.")
	ErrEmptyCommentContent = apperrors.New(apperrors.ErrValidation, "Comment content cannot be empty.")
	ErrPostNotFound        = apperrors.New(apperrors.ErrNotFound, "Post not found.")
)

// PostWriter defines write operations for posts.
type PostWriter interface {
	Save(ctx context.Context, userID int64, content string, imageURL *string) (int64, error)
}

// PostReader defines read operations for posts.
type PostReader interface {
	GetByID(ctx context.Context, postID int64) (*models.PostDB, error)
	List(ctx context.Context, limit int) ([]models.FeedPostDB, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, postID, userID int64, content string) (int64, error)
}

// CommentReader defines read operations for comments.
type CommentReader interface {
	ListByPost(ctx context.Context, postID int64) ([]models.CommentDB, error)
}

// LikeReader defines read operations for likes.
type LikeReader interface {
	Get(ctx context.Context, postID, userID int64) (*models.LikeDB, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
}

// LikeWriter defines write operations for likes.
type LikeWriter interface {
	Save(ctx context.Context, postID, userID int64) error
	Delete(ctx context.Context, postID, userID int64) error
}

// PostService handles posts, the feed, comments and likes.
type PostService struct {
	postWriter    PostWriter
	postReader    PostReader
	commentWriter CommentWriter
	commentReader CommentReader
	likeReader    LikeReader
	likeWriter    LikeWriter
	feedLimit     int
}

// NewPostService creates a new PostService. A non-positive feedLimit
// falls back to DefaultFeedLimit.
func NewPostService(
	postWriter PostWriter,
	postReader PostReader,
	commentWriter CommentWriter,
	commentReader CommentReader,
	likeReader LikeReader,
	likeWriter LikeWriter,
	feedLimit int,
) *PostService {
	if feedLimit <= 0 {
		feedLimit = DefaultFeedLimit
	}
	return &PostService{
		postWriter:    postWriter,
		postReader:    postReader,
		commentWriter: commentWriter,
		commentReader: commentReader,
		likeReader:    likeReader,
		likeWriter:    likeWriter,
		feedLimit:     feedLimit,
	}
}

// CreatePost stores a post of userID and returns its id.
func (svc *PostService) CreatePost(ctx context.Context, userID int64, content string, imageURL *string) (int64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, ErrEmptyPostContent
	}

	postID, err := svc.postWriter.Save(ctx, userID, content, nonEmpty(imageURL))
	if err != nil {
		logger.Log.Errorw("failed to create post", "userID", userID, "err", err)
		return 0, err
	}
	return postID, nil
}

// GetPost returns a post with its comments, oldest first, and its like count.
func (svc *PostService) GetPost(ctx context.Context, postID int64) (*models.PostDetail, error) {
	post, err := svc.postReader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post", "postID", postID, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := svc.commentReader.ListByPost(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "postID", postID, "err", err)
		return nil, err
	}

	likeCount, err := svc.likeReader.CountByPost(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to count likes", "postID", postID, "err", err)
		return nil, err
	}

	return &models.PostDetail{
		PostDB:    *post,
		Comments:  comments,
		LikeCount: likeCount,
	}, nil
}

// GetFeed returns the newest posts of all users with comment and like counts.
func (svc *PostService) GetFeed(ctx context.Context) ([]models.FeedPostDB, error) {
	posts, err := svc.postReader.List(ctx, svc.feedLimit)
	if err != nil {
		logger.Log.Errorw("failed to get feed", "err", err)
		return nil, err
	}
	return posts, nil
}

// AddComment stores a comment and returns its id. The post is not checked
// beforehand.
func (svc *PostService) AddComment(ctx context.Context, postID, userID int64, content string) (int64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, ErrEmptyCommentContent
	}

	commentID, err := svc.commentWriter.Save(ctx, postID, userID, content)
	if err != nil {
		logger.Log.Errorw("failed to add comment", "postID", postID, "userID", userID, "err", err)
		return 0, err
	}
	return commentID, nil
}

// ToggleLike likes the post when userID has not liked it yet and unlikes it
// otherwise. It returns the new state.
func (svc *PostService) ToggleLike(ctx context.Context, postID, userID int64) (bool, error) {
	like, err := svc.likeReader.Get(ctx, postID, userID)
	if err != nil {
		logger.Log.Errorw("failed to check like", "postID", postID, "userID", userID, "err", err)
		return false, err
	}

	if like != nil {
		if err := svc.likeWriter.Delete(ctx, postID, userID); err != nil {
			logger.Log.Errorw("failed to unlike post", "postID", postID, "userID", userID, "err", err)
			return false, err
		}
		return false, nil
	}

	if err := svc.likeWriter.Save(ctx, postID, userID); err != nil {
		logger.Log.Errorw("failed to like post", "postID", postID, "userID", userID, "err", err)
		return false, err
	}
	return true, nil
}

// IsLiked reports whether userID likes the post.
func (svc *PostService) IsLiked(ctx context.Context, postID, userID int64) (bool, error) {
	like, err := svc.likeReader.Get(ctx, postID, userID)
	if err != nil {
		logger.Log.Errorw("failed to check like", "postID", postID, "userID", userID, "err", err)
		return false, err
	}
	return like != nil, nil
}
