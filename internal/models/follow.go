package models

import "time"

// FollowDB is a directed edge from follower to followed user
type FollowDB struct {
	FollowID   int64     `json:"id" db:"id"`
	FollowerID int64     `json:"follower_id" db:"follower_id"`
	FollowedID int64     `json:"followed_id" db:"followed_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
