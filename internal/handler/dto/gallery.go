package dto

import (
	"time"

	"github.com/photovault/photovault/internal/model"
)

// GalleryRequest represents the request body for creating or updating a gallery.
type GalleryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// MovePhotosRequest reassigns photos. A null targetGalleryId moves them
// to unorganized.
type MovePhotosRequest struct {
	PhotoIDs        []string `json:"photoIds" validate:"required,min=1,dive,required"`
	TargetGalleryID *string  `json:"targetGalleryId"`
}

// GalleryResponse represents a gallery with its photo annotations.
type GalleryResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	UserID        string          `json:"userId"`
	PhotoCount    int64           `json:"photoCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	PreviewPhotos []PhotoResponse `json:"previewPhotos"`
}

// GalleryDetailResponse is a gallery with its full photo list.
type GalleryDetailResponse struct {
	GalleryResponse
	Photos []PhotoResponse `json:"photos"`
}

// ToGalleryResponse converts a Gallery model. Its Photos become the preview.
func ToGalleryResponse(g *model.Gallery) GalleryResponse {
	return GalleryResponse{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		UserID:        g.UserID,
		PhotoCount:    g.PhotoCount,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
		PreviewPhotos: ToPhotoResponses(g.Photos),
	}
}

// ToGalleryDetailResponse converts a Gallery whose Photos is the full list.
func ToGalleryDetailResponse(g *model.Gallery) GalleryDetailResponse {
	resp := GalleryDetailResponse{
		GalleryResponse: ToGalleryResponse(g),
		Photos:          ToPhotoResponses(g.Photos),
	}
	if len(resp.PreviewPhotos) > model.PreviewPhotoLimit {
		resp.PreviewPhotos = resp.PreviewPhotos[:model.PreviewPhotoLimit]
	}
	return resp
}

// ToGalleryResponses converts a slice, never returning nil.
func ToGalleryResponses(galleries []*model.Gallery) []GalleryResponse {
	out := make([]GalleryResponse, len(galleries))
	for i, g := range galleries {
		out[i] = ToGalleryResponse(g)
	}
	return out
}
