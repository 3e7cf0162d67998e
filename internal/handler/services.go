package handler

//go:generate mockgen -source=services.go -destination=mocks_test.go -package=handler

import (
	"context"

	"github.com/photovault/photovault/internal/model"
	"github.com/photovault/photovault/internal/service"
)

// UserService is the account contract used by AuthHandler.
type UserService interface {
	Register(ctx context.Context, input service.RegisterInput) (*model.User, error)
	Signin(ctx context.Context, login, password string) (string, *model.User, error)
	GetCurrentUser(ctx context.Context, userID string) (*model.User, error)
	GetProfilePicture(ctx context.Context, userID string) (*model.ProfilePicture, error)
	UpdateProfile(ctx context.Context, input service.UpdateProfileInput) (*model.User, error)
}

// PhotoService is the photo contract used by PhotoHandler.
type PhotoService interface {
	List(ctx context.Context, input service.ListPhotosInput) (service.Paged[*model.Photo], error)
	Get(ctx context.Context, photoID, userID string) (*model.Photo, error)
	GetMetadata(ctx context.Context, photoID, userID string) (model.PhotoMetadata, error)
	Download(ctx context.Context, photoID, userID string) (*model.Photo, error)
	Create(ctx context.Context, input service.CreatePhotoInput) (*model.Photo, error)
	BulkCreate(ctx context.Context, input service.BulkCreatePhotosInput) ([]*model.Photo, error)
	Update(ctx context.Context, input service.UpdatePhotoInput) (*model.Photo, error)
	Delete(ctx context.Context, photoID, userID string) error
	BulkDelete(ctx context.Context, photoIDs []string, userID string) error
}

// GalleryService is the gallery contract used by GalleryHandler.
type GalleryService interface {
	Create(ctx context.Context, userID string, input service.GalleryInput) (*model.Gallery, error)
	List(ctx context.Context, userID string) ([]*model.Gallery, error)
	ListPage(ctx context.Context, userID string, number, size int) (service.Paged[*model.Gallery], error)
	Get(ctx context.Context, galleryID, userID string) (*model.Gallery, error)
	GetPreview(ctx context.Context, galleryID, userID string) (*model.Gallery, error)
	Update(ctx context.Context, galleryID, userID string, input service.GalleryInput) (*model.Gallery, error)
	Delete(ctx context.Context, galleryID, userID string, deletePhotos bool) error
	MovePhotos(ctx context.Context, photoIDs []string, targetGalleryID *string, userID string) error
	ListForDropdown(ctx context.Context, userID string) ([]model.GalleryOption, error)
}

var (
	_ UserService    = (*service.UserService)(nil)
	_ PhotoService   = (*service.PhotoService)(nil)
	_ GalleryService = (*service.GalleryService)(nil)
)
