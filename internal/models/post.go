package models

import "time"

// PostDB represents a post row joined with its author
type PostDB struct {
	PostID            int64     `json:"id" db:"id"`                                   // Primary key
	UserID            int64     `json:"user_id" db:"user_id"`                         // Author
	Content           string    `json:"content" db:"content"`                         // Non-empty body
	ImageURL          *string   `json:"image_url" db:"image_url"`                     // Optional image
	CreatedAt         time.Time `json:"created_at" db:"created_at"`                   // Creation timestamp
	Username          string    `json:"username" db:"username"`                       // Author username
	ProfilePictureURL *string   `json:"profile_picture_url" db:"profile_picture_url"` // Author avatar
}

// FeedPostDB is a feed entry annotated with aggregate counts
type FeedPostDB struct {
	PostDB
	CommentCount int64 `json:"commentCount" db:"comment_count"`
	LikeCount    int64 `json:"likeCount" db:"like_count"`
}

// PostDetail is a single post with its comments and like count
type PostDetail struct {
	PostDB
	Comments  []CommentDB `json:"comments"`
	LikeCount int64       `json:"likeCount"`
}
