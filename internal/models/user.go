package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID            int64     `json:"id" db:"id"`                                   // Primary key
	Username          string    `json:"username" db:"username"`                       // Unique username
	Email             string    `json:"email" db:"email"`                             // Unique email
	Password          string    `json:"-" db:"password"`                              // Bcrypt hash, never plaintext
	Bio               *string   `json:"bio" db:"bio"`                                 // Optional biography
	ProfilePictureURL *string   `json:"profile_picture_url" db:"profile_picture_url"` // Optional avatar URL
	CreatedAt         time.Time `json:"created_at" db:"created_at"`                   // Creation timestamp
}

// UserSummary is the public identity returned on login.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Profile is a user together with counts computed at read time.
type Profile struct {
	UserDB
	PostCount      int64 `json:"postCount"`
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
}
