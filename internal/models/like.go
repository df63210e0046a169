package models

import "time"

// LikeDB represents a like row. A (post_id, user_id) pair exists at most once.
type LikeDB struct {
	LikeID    int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
