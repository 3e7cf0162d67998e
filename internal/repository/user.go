package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/photovault/photovault/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

const userColumns = `id, username, email, password_hash,
	profile_picture, profile_picture_filename, profile_picture_content_type, profile_picture_size,
	created_at, updated_at`

// CreateUser inserts a new user into the database.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) (err error) {
	ctx, span := startSpan(ctx, "CreateUser")
	defer func() { endSpan(span, err) }()

	query := `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.conn(ctx).Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return userConflict(err, "failed to create user")
	}

	return nil
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id string) (_ *model.User, err error) {
	ctx, span := startSpan(ctx, "GetUserByID")
	defer func() { endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.conn(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetUserByUsernameOrEmail retrieves a user whose username or email equals login.
// A username match wins over an email match.
func (r *Repository) GetUserByUsernameOrEmail(ctx context.Context, login string) (_ *model.User, err error) {
	ctx, span := startSpan(ctx, "GetUserByUsernameOrEmail")
	defer func() { endSpan(span, err) }()

	query := `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = $1
		ORDER BY (username = $1) DESC
		LIMIT 1
	`

	user, err := scanUser(r.conn(ctx).QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by login: %w", err)
	}

	return user, nil
}

// UsernameExists checks if a username is registered.
func (r *Repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
}

// EmailExists checks if an email is registered.
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

// UpdateUser writes the mutable profile fields, including the profile picture.
// A nil ProfilePicture clears the stored picture.
func (r *Repository) UpdateUser(ctx context.Context, user *model.User) (err error) {
	ctx, span := startSpan(ctx, "UpdateUser")
	defer func() { endSpan(span, err) }()

	query := `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4,
		    profile_picture = $5, profile_picture_filename = $6,
		    profile_picture_content_type = $7, profile_picture_size = $8,
		    updated_at = $9
		WHERE id = $1
	`

	var (
		data        []byte
		filename    *string
		contentType *string
		size        *int64
	)
	if pic := user.ProfilePicture; pic != nil {
		data = pic.Data
		filename = &pic.Filename
		contentType = &pic.ContentType
		size = &pic.Size
	}

	result, err := r.conn(ctx).Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		data,
		filename,
		contentType,
		size,
		user.UpdatedAt,
	)
	if err != nil {
		return userConflict(err, "failed to update user")
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// userConflict maps unique violations on users to sentinel errors.
func userConflict(err error, msg string) error {
	switch violatedConstraint(err) {
	case "users_username_key":
		return ErrUsernameExists
	case "users_email_key":
		return ErrEmailExists
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// scanUser scans a single row into a User model.
func scanUser(row pgx.Row) (*model.User, error) {
	var (
		user        model.User
		data        []byte
		filename    *string
		contentType *string
		size        *int64
	)
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&data,
		&filename,
		&contentType,
		&size,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if data != nil {
		pic := &model.ProfilePicture{Data: data}
		if filename != nil {
			pic.Filename = *filename
		}
		if contentType != nil {
			pic.ContentType = *contentType
		}
		if size != nil {
			pic.Size = *size
		} else {
			pic.Size = int64(len(data))
		}
		user.ProfilePicture = pic
	}

	return &user, nil
}
