package models

import "time"

// CommentDB represents a comment row joined with its author
type CommentDB struct {
	CommentID         int64     `json:"id" db:"id"`                                   // Primary key
	PostID            int64     `json:"post_id" db:"post_id"`                         // Commented post
	UserID            int64     `json:"user_id" db:"user_id"`                         // Author
	Content           string    `json:"content" db:"content"`                         // Non-empty body
	CreatedAt         time.Time `json:"created_at" db:"created_at"`                   // Creation timestamp
	Username          string    `json:"username" db:"username"`                       // Author username
	ProfilePictureURL *string   `json:"profile_picture_url" db:"profile_picture_url"` // Author avatar
}
