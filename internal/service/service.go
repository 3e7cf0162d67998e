// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"

	"github.com/photovault/photovault/internal/model"
	"github.com/photovault/photovault/internal/repository"
)

// Service errors. The HTTP layer maps each of these to a status code.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrForbidden          = errors.New("resource belongs to another user")

	ErrUserNotFound    = errors.New("user not found")
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrGalleryNotFound = errors.New("gallery not found")

	ErrUsernameTaken        = errors.New("username is already taken")
	ErrEmailTaken           = errors.New("email is already in use")
	ErrDuplicateGalleryName = errors.New("gallery with this name already exists")

	ErrProfilePictureNotFound = errors.New("profile picture not found")
)

// Transactor runs fn inside one storage transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserStore is the persistence contract of UserService.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsernameOrEmail(ctx context.Context, login string) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, user *model.User) error
}

// PhotoStore is the persistence contract of PhotoService.
type PhotoStore interface {
	Transactor
	CreatePhoto(ctx context.Context, photo *model.Photo) error
	GetPhotoByID(ctx context.Context, id string) (*model.Photo, error)
	ListPhotos(ctx context.Context, userID string, filter model.PhotoFilter, page model.Page) ([]*model.Photo, int64, error)
	UpdatePhoto(ctx context.Context, photo *model.Photo) error
	DeletePhoto(ctx context.Context, id string) error
	GetPhotoOwners(ctx context.Context, ids []string) (map[string]string, error)
	DeletePhotos(ctx context.Context, ids []string) (int64, error)
	GetGalleryForUser(ctx context.Context, id, userID string) (*model.Gallery, error)
}

// GalleryStore is the persistence contract of GalleryService.
type GalleryStore interface {
	Transactor
	CreateGallery(ctx context.Context, gallery *model.Gallery) error
	GetGalleryForUser(ctx context.Context, id, userID string) (*model.Gallery, error)
	GalleryNameExists(ctx context.Context, userID, name string) (bool, error)
	ListGalleries(ctx context.Context, userID string, previewLimit int) ([]*model.Gallery, error)
	ListGalleriesPage(ctx context.Context, userID string, page model.Page, previewLimit int) ([]*model.Gallery, int64, error)
	ListGalleryOptions(ctx context.Context, userID string) ([]model.GalleryOption, error)
	ListGalleryPhotos(ctx context.Context, galleryID string, limit int) ([]*model.Photo, error)
	CountGalleryPhotos(ctx context.Context, galleryID string) (int64, error)
	UpdateGallery(ctx context.Context, gallery *model.Gallery) error
	DeleteGallery(ctx context.Context, id, userID string) error
	GetPhotoOwners(ctx context.Context, ids []string) (map[string]string, error)
	MovePhotos(ctx context.Context, ids []string, galleryID *string) (int64, error)
	DeletePhotosInGallery(ctx context.Context, galleryID string) (int64, error)
	DetachPhotosFromGallery(ctx context.Context, galleryID string) (int64, error)
}

// Paged is one page of results with its position in the full listing.
type Paged[T any] struct {
	Items         []T
	TotalElements int64
	TotalPages    int
	Page          model.Page
}

// IsFirst reports whether this is the first page.
func (p Paged[T]) IsFirst() bool { return p.Page.Number == 0 }

// IsLast reports whether no page follows this one.
func (p Paged[T]) IsLast() bool { return p.Page.Number+1 >= p.TotalPages }

func newPaged[T any](items []T, total int64, page model.Page) Paged[T] {
	return Paged[T]{
		Items:         items,
		TotalElements: total,
		TotalPages:    page.TotalPages(total),
		Page:          page,
	}
}

// generateULID creates a new ULID string.
func generateULID() string {
	return ulid.Make().String()
}

// checkOwnership applies the bulk ownership rule: every id must belong to
// userID (else ErrForbidden) and every id must exist (else notFound).
// Ownership is checked across the whole batch before existence.
func checkOwnership(owners map[string]string, ids []string, userID string, notFound error) error {
	for _, id := range ids {
		if owner, ok := owners[id]; ok && owner != userID {
			return ErrForbidden
		}
	}
	for _, id := range ids {
		if _, ok := owners[id]; !ok {
			return notFound
		}
	}
	return nil
}

// dedupe removes repeated ids, keeping first occurrence order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

var (
	_ UserStore    = (*repository.Repository)(nil)
	_ PhotoStore   = (*repository.Repository)(nil)
	_ GalleryStore = (*repository.Repository)(nil)
)
