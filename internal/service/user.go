package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/photovault/photovault/internal/auth"
	"github.com/photovault/photovault/internal/metrics"
	"github.com/photovault/photovault/internal/model"
	"github.com/photovault/photovault/internal/repository"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues bearer tokens for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// UserService handles account business logic.
type UserService struct {
	store        UserStore
	hasher       PasswordHasher
	tokens       TokenIssuer
	maxPhotoSize int64
	metrics      metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, hasher PasswordHasher, tokens TokenIssuer, maxPhotoSize int64, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if maxPhotoSize <= 0 {
		maxPhotoSize = DefaultMaxPhotoSize
	}
	return &UserService{
		store:        store,
		hasher:       hasher,
		tokens:       tokens,
		maxPhotoSize: maxPhotoSize,
		metrics:      recorder,
	}
}

// RegisterInput defines input for creating an account.
type RegisterInput struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required,min=6,max=120"`
}

// Register creates a new account with a hashed password.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	if err := s.checkAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           generateULID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, mapUserError(err, "failed to create user")
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// Signin verifies credentials and returns a signed token for the user.
// An unknown login and a wrong password are indistinguishable to the caller.
func (s *UserService) Signin(ctx context.Context, login, password string) (string, *model.User, error) {
	user, err := s.store.GetUserByUsernameOrEmail(ctx, strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncSignin("failed")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Verify(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.metrics.IncSignin("failed")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncSignin("success")

	return token, user, nil
}

// GetCurrentUser resolves the principal to its full record.
func (s *UserService) GetCurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetProfilePicture returns the user's stored picture.
func (s *UserService) GetProfilePicture(ctx context.Context, userID string) (*model.ProfilePicture, error) {
	user, err := s.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasProfilePicture() {
		return nil, ErrProfilePictureNotFound
	}
	return user.ProfilePicture, nil
}

// UpdateProfileInput defines input for a profile update.
//
// ProfilePicture semantics:
//   - nil clears the stored picture
//   - an empty upload keeps the stored picture
//   - anything else replaces it
type UpdateProfileInput struct {
	UserID         string  `validate:"required"`
	Username       string  `validate:"required,min=3,max=50"`
	Email          string  `validate:"required,email,max=100"`
	Password       string  `validate:"omitempty,min=6,max=100"`
	ProfilePicture *Upload `validate:"-"`
}

// UpdateProfile changes username, email, optional password and picture.
// Keeping the current username or email is never a conflict.
func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*model.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if strings.TrimSpace(input.Password) == "" {
		input.Password = ""
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	user, err := s.GetCurrentUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	username, email := "", ""
	if input.Username != user.Username {
		username = input.Username
	}
	if input.Email != user.Email {
		email = input.Email
	}
	if err := s.checkAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.Email = input.Email

	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	switch pic := input.ProfilePicture; {
	case pic == nil:
		user.ProfilePicture = nil
	case pic.IsEmpty():
		// keep current picture
	default:
		if err := validateImage(pic, s.maxPhotoSize); err != nil {
			return nil, err
		}
		user.ProfilePicture = &model.ProfilePicture{
			Filename:    pic.Filename,
			ContentType: pic.ContentType,
			Size:        pic.Size(),
			Data:        pic.Data,
		}
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, mapUserError(err, "failed to update user")
	}

	return user, nil
}

// checkAvailable rejects a username or email already in use.
// Empty values are skipped.
func (s *UserService) checkAvailable(ctx context.Context, username, email string) error {
	if username != "" {
		taken, err := s.store.UsernameExists(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return ErrUsernameTaken
		}
	}

	if email != "" {
		taken, err := s.store.EmailExists(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return ErrEmailTaken
		}
	}

	return nil
}

func mapUserError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrUsernameExists):
		return ErrUsernameTaken
	case errors.Is(err, repository.ErrEmailExists):
		return ErrEmailTaken
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrUserNotFound
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
