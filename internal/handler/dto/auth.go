package dto

import (
	"time"

	"github.com/photovault/photovault/internal/model"
)

// SignupRequest represents the request body for creating an account.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest represents the request body for signing in.
type SigninRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// NewTokenResponse wraps token as a Bearer token response.
func NewTokenResponse(token string) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "Bearer"}
}

// UserProfileResponse represents the authenticated user.
type UserProfileResponse struct {
	ID                        string    `json:"id"`
	Username                  string    `json:"username"`
	Email                     string    `json:"email"`
	CreatedAt                 time.Time `json:"createdAt"`
	UpdatedAt                 time.Time `json:"updatedAt"`
	HasProfilePicture         bool      `json:"hasProfilePicture"`
	ProfilePictureFilename    *string   `json:"profilePictureFilename"`
	ProfilePictureContentType *string   `json:"profilePictureContentType"`
	ProfilePictureSize        *int64    `json:"profilePictureSize"`
}

// ToUserProfileResponse converts a User model to its response DTO.
func ToUserProfileResponse(user *model.User) UserProfileResponse {
	resp := UserProfileResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
		HasProfilePicture: user.HasProfilePicture(),
	}
	if pic := user.ProfilePicture; pic != nil {
		resp.ProfilePictureFilename = &pic.Filename
		resp.ProfilePictureContentType = &pic.ContentType
		resp.ProfilePictureSize = &pic.Size
	}
	return resp
}
