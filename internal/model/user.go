// Package model defines domain entities for the application.
package model

import "time"

// User is an account that owns photos and galleries.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	ProfilePicture *ProfilePicture `json:"-"`
}

// ProfilePicture is the optional avatar stored on the user row.
type ProfilePicture struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// HasProfilePicture reports whether the user has non-empty picture bytes.
func (u *User) HasProfilePicture() bool {
	return u.ProfilePicture != nil && len(u.ProfilePicture.Data) > 0
}
