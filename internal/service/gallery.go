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

// GalleryService handles gallery business logic and photo-to-gallery assignment.
// Galleries of other users are reported as not found, never as forbidden.
type GalleryService struct {
	store   GalleryStore
	metrics metrics.Recorder
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(store GalleryStore, recorder metrics.Recorder) *GalleryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &GalleryService{
		store:   store,
		metrics: recorder,
	}
}

// GalleryInput defines input for creating or updating a gallery.
type GalleryInput struct {
	Name        string  `validate:"required,min=1,max=100"`
	Description *string `validate:"omitempty,max=500"`
}

// Create adds a gallery for userID. Names are unique per user.
func (s *GalleryService) Create(ctx context.Context, userID string, input GalleryInput) (*model.Gallery, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	exists, err := s.store.GalleryNameExists(ctx, userID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check gallery name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateGalleryName
	}

	now := time.Now().UTC()
	gallery := &model.Gallery{
		ID:          generateULID(),
		Name:        input.Name,
		Description: input.Description,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Photos:      []*model.Photo{},
	}

	if err := s.store.CreateGallery(ctx, gallery); err != nil {
		if errors.Is(err, repository.ErrGalleryNameExists) {
			return nil, ErrDuplicateGalleryName
		}
		return nil, fmt.Errorf("failed to create gallery: %w", err)
	}

	s.metrics.IncGalleryCreated()

	return gallery, nil
}

// List returns every gallery of userID, newest first, with photo counts
// and preview photos.
func (s *GalleryService) List(ctx context.Context, userID string) ([]*model.Gallery, error) {
	galleries, err := s.store.ListGalleries(ctx, userID, model.PreviewPhotoLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	return galleries, nil
}

// ListPage is the paginated variant of List.
func (s *GalleryService) ListPage(ctx context.Context, userID string, number, size int) (Paged[*model.Gallery], error) {
	page := NormalizePage(number, size)

	galleries, total, err := s.store.ListGalleriesPage(ctx, userID, page, model.PreviewPhotoLimit)
	if err != nil {
		return Paged[*model.Gallery]{}, fmt.Errorf("failed to list galleries: %w", err)
	}

	return newPaged(galleries, total, page), nil
}

// Get returns a gallery of userID with its full photo list.
func (s *GalleryService) Get(ctx context.Context, galleryID, userID string) (*model.Gallery, error) {
	return s.withPhotos(ctx, galleryID, userID, 0)
}

// GetPreview returns a gallery of userID with its first preview photos.
func (s *GalleryService) GetPreview(ctx context.Context, galleryID, userID string) (*model.Gallery, error) {
	return s.withPhotos(ctx, galleryID, userID, model.PreviewPhotoLimit)
}

// Update renames or re-describes a gallery. Keeping the current name is
// not a conflict.
func (s *GalleryService) Update(ctx context.Context, galleryID, userID string, input GalleryInput) (*model.Gallery, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	gallery, err := s.lookup(ctx, galleryID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != gallery.Name {
		exists, err := s.store.GalleryNameExists(ctx, userID, input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check gallery name: %w", err)
		}
		if exists {
			return nil, ErrDuplicateGalleryName
		}
	}

	gallery.Name = input.Name
	gallery.Description = input.Description
	gallery.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateGallery(ctx, gallery); err != nil {
		switch {
		case errors.Is(err, repository.ErrGalleryNameExists):
			return nil, ErrDuplicateGalleryName
		case errors.Is(err, repository.ErrGalleryNotFound):
			return nil, ErrGalleryNotFound
		}
		return nil, fmt.Errorf("failed to update gallery: %w", err)
	}

	count, err := s.store.CountGalleryPhotos(ctx, gallery.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count gallery photos: %w", err)
	}
	gallery.PhotoCount = count

	return gallery, nil
}

// Delete removes a gallery. With deletePhotos its photos are deleted,
// otherwise they become unorganized. Both steps share one transaction.
func (s *GalleryService) Delete(ctx context.Context, galleryID, userID string, deletePhotos bool) error {
	var affected int64
	err := s.store.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.lookup(ctx, galleryID, userID); err != nil {
			return err
		}

		var err error
		if deletePhotos {
			affected, err = s.store.DeletePhotosInGallery(ctx, galleryID)
		} else {
			affected, err = s.store.DetachPhotosFromGallery(ctx, galleryID)
		}
		if err != nil {
			return fmt.Errorf("failed to dispose gallery photos: %w", err)
		}

		if err := s.store.DeleteGallery(ctx, galleryID, userID); err != nil {
			if errors.Is(err, repository.ErrGalleryNotFound) {
				return ErrGalleryNotFound
			}
			return fmt.Errorf("failed to delete gallery: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.IncGalleryDeleted(deletePhotos)
	if deletePhotos {
		s.metrics.AddPhotosDeleted(int(affected))
	}

	return nil
}

// MovePhotos assigns every listed photo to targetGalleryID, or to
// unorganized when it is nil. The whole batch is validated first and
// applied in one transaction.
func (s *GalleryService) MovePhotos(ctx context.Context, photoIDs []string, targetGalleryID *string, userID string) error {
	ids := dedupe(photoIDs)
	if len(ids) == 0 {
		return fmt.Errorf("%w: photo ids list cannot be empty", ErrInvalidInput)
	}

	err := s.store.InTx(ctx, func(ctx context.Context) error {
		owners, err := s.store.GetPhotoOwners(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load photos: %w", err)
		}
		if err := checkOwnership(owners, ids, userID, ErrPhotoNotFound); err != nil {
			return err
		}

		if targetGalleryID != nil {
			if _, err := s.lookup(ctx, *targetGalleryID, userID); err != nil {
				return err
			}
		}

		moved, err := s.store.MovePhotos(ctx, ids, targetGalleryID)
		if err != nil {
			return fmt.Errorf("failed to move photos: %w", err)
		}
		if moved != int64(len(ids)) {
			return ErrPhotoNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.AddPhotosMoved(len(ids))

	return nil
}

// ListForDropdown returns id and name of every gallery, newest first.
func (s *GalleryService) ListForDropdown(ctx context.Context, userID string) ([]model.GalleryOption, error) {
	options, err := s.store.ListGalleryOptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	return options, nil
}

func (s *GalleryService) lookup(ctx context.Context, galleryID, userID string) (*model.Gallery, error) {
	gallery, err := s.store.GetGalleryForUser(ctx, galleryID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrGalleryNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}
	return gallery, nil
}

func (s *GalleryService) withPhotos(ctx context.Context, galleryID, userID string, limit int) (*model.Gallery, error) {
	gallery, err := s.lookup(ctx, galleryID, userID)
	if err != nil {
		return nil, err
	}

	photos, err := s.store.ListGalleryPhotos(ctx, gallery.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery photos: %w", err)
	}
	if photos == nil {
		photos = []*model.Photo{}
	}
	gallery.Photos = photos

	count := int64(len(photos))
	if limit > 0 {
		count, err = s.store.CountGalleryPhotos(ctx, gallery.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count gallery photos: %w", err)
		}
	}
	gallery.PhotoCount = count

	return gallery, nil
}
