package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/photovault/photovault/internal/metrics"
	"github.com/photovault/photovault/internal/model"
	"github.com/photovault/photovault/internal/repository"
)

// Page size limits for listings.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPageOffset bounds Number*Size so the row offset never overflows.
	MaxPageOffset = 1<<31 - 1
)

// PhotoService handles photo business logic. Every single-photo operation
// is scoped to the owning user.
type PhotoService struct {
	store        PhotoStore
	maxPhotoSize int64
	metrics      metrics.Recorder
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(store PhotoStore, maxPhotoSize int64, recorder metrics.Recorder) *PhotoService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if maxPhotoSize <= 0 {
		maxPhotoSize = DefaultMaxPhotoSize
	}
	return &PhotoService{
		store:        store,
		maxPhotoSize: maxPhotoSize,
		metrics:      recorder,
	}
}

// ListPhotosInput defines input for listing photos.
type ListPhotosInput struct {
	UserID string
	Filter model.PhotoFilter
	Page   int
	Size   int
}

// List returns one page of the user's photos matching the gallery filter.
func (s *PhotoService) List(ctx context.Context, input ListPhotosInput) (Paged[*model.Photo], error) {
	page := NormalizePage(input.Page, input.Size)

	photos, total, err := s.store.ListPhotos(ctx, input.UserID, input.Filter, page)
	if err != nil {
		return Paged[*model.Photo]{}, fmt.Errorf("failed to list photos: %w", err)
	}

	return newPaged(photos, total, page), nil
}

// Get returns a photo owned by userID.
func (s *PhotoService) Get(ctx context.Context, photoID, userID string) (*model.Photo, error) {
	photo, err := s.store.GetPhotoByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	if !photo.IsOwnedBy(userID) {
		return nil, ErrForbidden
	}

	return photo, nil
}

// GetMetadata returns the byte-free view of a photo owned by userID.
func (s *PhotoService) GetMetadata(ctx context.Context, photoID, userID string) (model.PhotoMetadata, error) {
	photo, err := s.Get(ctx, photoID, userID)
	if err != nil {
		return model.PhotoMetadata{}, err
	}
	return photo.Metadata(), nil
}

// Download returns a photo with its bytes. A photo without stored bytes
// is reported as not found.
func (s *PhotoService) Download(ctx context.Context, photoID, userID string) (*model.Photo, error) {
	photo, err := s.Get(ctx, photoID, userID)
	if err != nil {
		return nil, err
	}
	if len(photo.Data) == 0 {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}

// CreatePhotoInput defines input for a single upload.
type CreatePhotoInput struct {
	UserID      string
	Title       string
	Description *string
	File        *Upload
	GalleryID   *string
}

// Create validates and stores one uploaded image.
func (s *PhotoService) Create(ctx context.Context, input CreatePhotoInput) (*model.Photo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := validateText(title, input.Description); err != nil {
		return nil, err
	}
	if input.File == nil {
		return nil, fmt.Errorf("%w: file is required", ErrInvalidInput)
	}
	if err := validateImage(input.File, s.maxPhotoSize); err != nil {
		return nil, err
	}

	if err := s.checkGallery(ctx, input.GalleryID, input.UserID); err != nil {
		return nil, err
	}

	photo := newPhoto(input.UserID, title, input.Description, input.File, input.GalleryID)
	if err := s.store.CreatePhoto(ctx, photo); err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	s.metrics.AddPhotosUploaded(1)
	s.metrics.AddPhotoBytesUploaded(photo.Size)

	return photo, nil
}

// BulkCreatePhotosInput defines input for a multi-file upload.
// Titles and Descriptions are matched to Files by index and may be shorter.
type BulkCreatePhotosInput struct {
	UserID       string
	Files        []*Upload
	Titles       []string
	Descriptions []string
	GalleryID    *string
}

// BulkCreate stores every file or none. A missing or blank title falls back
// to the filename without its extension; a blank description is absent.
func (s *PhotoService) BulkCreate(ctx context.Context, input BulkCreatePhotosInput) ([]*model.Photo, error) {
	if len(input.Files) == 0 {
		return nil, fmt.Errorf("%w: no files provided", ErrInvalidInput)
	}

	photos := make([]*model.Photo, 0, len(input.Files))
	for i, file := range input.Files {
		if file == nil {
			return nil, fmt.Errorf("%w: file %d is missing", ErrInvalidInput, i+1)
		}
		if err := validateImage(file, s.maxPhotoSize); err != nil {
			return nil, fmt.Errorf("file %q: %w", file.Filename, err)
		}

		title := model.TitleFromFilename(file.Filename)
		if i < len(input.Titles) {
			if t := strings.TrimSpace(input.Titles[i]); t != "" {
				title = t
			}
		}

		var description *string
		if i < len(input.Descriptions) && strings.TrimSpace(input.Descriptions[i]) != "" {
			d := input.Descriptions[i]
			description = &d
		}

		if err := validateText(title, description); err != nil {
			return nil, fmt.Errorf("file %q: %w", file.Filename, err)
		}

		photos = append(photos, newPhoto(input.UserID, title, description, file, input.GalleryID))
	}

	err := s.store.InTx(ctx, func(ctx context.Context) error {
		if err := s.checkGallery(ctx, input.GalleryID, input.UserID); err != nil {
			return err
		}
		for _, photo := range photos {
			if err := s.store.CreatePhoto(ctx, photo); err != nil {
				return fmt.Errorf("failed to create photo: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var total int64
	for _, p := range photos {
		total += p.Size
	}
	s.metrics.AddPhotosUploaded(len(photos))
	s.metrics.AddPhotoBytesUploaded(total)

	return photos, nil
}

// UpdatePhotoInput defines input for updating a photo.
//
// Title and Description replace the stored values unconditionally.
// File replaces the image only when non-empty. GalleryID is applied only
// when SetGallery is true, and a nil GalleryID then means unorganized.
type UpdatePhotoInput struct {
	PhotoID     string
	UserID      string
	Title       string
	Description *string
	File        *Upload
	SetGallery  bool
	GalleryID   *string
}

// Update changes metadata and optionally the image and gallery of a photo.
func (s *PhotoService) Update(ctx context.Context, input UpdatePhotoInput) (*model.Photo, error) {
	photo, err := s.Get(ctx, input.PhotoID, input.UserID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := validateText(title, input.Description); err != nil {
		return nil, err
	}

	photo.Title = title
	photo.Description = input.Description

	if !input.File.IsEmpty() {
		if err := validateImage(input.File, s.maxPhotoSize); err != nil {
			return nil, err
		}
		photo.OriginalFilename = input.File.Filename
		photo.ContentType = input.File.ContentType
		photo.Size = input.File.Size()
		photo.Data = input.File.Data
	}

	if input.SetGallery {
		if err := s.checkGallery(ctx, input.GalleryID, input.UserID); err != nil {
			return nil, err
		}
		photo.GalleryID = input.GalleryID
	}

	if err := s.store.UpdatePhoto(ctx, photo); err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}

	s.metrics.IncPhotoUpdated()

	return photo, nil
}

// Delete hard-deletes a photo owned by userID.
func (s *PhotoService) Delete(ctx context.Context, photoID, userID string) error {
	if _, err := s.Get(ctx, photoID, userID); err != nil {
		return err
	}

	if err := s.store.DeletePhoto(ctx, photoID); err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	s.metrics.AddPhotosDeleted(1)

	return nil
}

// BulkDelete deletes every listed photo or none. All ids are checked for
// ownership, then for existence, before anything is deleted.
func (s *PhotoService) BulkDelete(ctx context.Context, photoIDs []string, userID string) error {
	ids := dedupe(photoIDs)
	if len(ids) == 0 {
		return fmt.Errorf("%w: no photo ids provided", ErrInvalidInput)
	}

	var deleted int64
	err := s.store.InTx(ctx, func(ctx context.Context) error {
		owners, err := s.store.GetPhotoOwners(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load photos: %w", err)
		}
		if err := checkOwnership(owners, ids, userID, ErrPhotoNotFound); err != nil {
			return err
		}

		deleted, err = s.store.DeletePhotos(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to delete photos: %w", err)
		}
		if deleted != int64(len(ids)) {
			return ErrPhotoNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.AddPhotosDeleted(int(deleted))

	return nil
}

// checkGallery requires a non-nil galleryID to name a gallery of userID.
func (s *PhotoService) checkGallery(ctx context.Context, galleryID *string, userID string) error {
	if galleryID == nil {
		return nil
	}
	if _, err := s.store.GetGalleryForUser(ctx, *galleryID, userID); err != nil {
		if errors.Is(err, repository.ErrGalleryNotFound) {
			return ErrGalleryNotFound
		}
		return fmt.Errorf("failed to get gallery: %w", err)
	}
	return nil
}

func newPhoto(userID, title string, description *string, file *Upload, galleryID *string) *model.Photo {
	return &model.Photo{
		ID:               generateULID(),
		Title:            title,
		Description:      description,
		OriginalFilename: file.Filename,
		ContentType:      file.ContentType,
		Size:             file.Size(),
		Data:             file.Data,
		UserID:           userID,
		GalleryID:        galleryID,
		CreatedAt:        time.Now().UTC(),
	}
}

func validateText(title string, description *string) error {
	if len(title) > 255 {
		return fmt.Errorf("%w: title must be at most 255 characters", ErrInvalidInput)
	}
	if description != nil && len(*description) > 500 {
		return fmt.Errorf("%w: description must be at most 500 characters", ErrInvalidInput)
	}
	return nil
}

// NormalizePage applies defaults and bounds to page parameters. A page
// number past the largest addressable offset is clamped; it lists empty.
func NormalizePage(number, size int) model.Page {
	if number < 0 {
		number = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if number > MaxPageOffset/size {
		number = MaxPageOffset / size
	}
	return model.Page{Number: number, Size: size}
}
