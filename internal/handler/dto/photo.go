package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/photovault/photovault/internal/model"
)

// PhotoResponse represents a photo without its bytes.
type PhotoResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      *string   `json:"description"`
	OriginalFilename string    `json:"originalFilename"`
	ContentType      string    `json:"contentType"`
	Size             int64     `json:"size"`
	GalleryID        *string   `json:"galleryId"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToPhotoResponse converts a Photo model to its response DTO.
func ToPhotoResponse(photo *model.Photo) PhotoResponse {
	return PhotoResponse{
		ID:               photo.ID,
		Title:            photo.Title,
		Description:      photo.Description,
		OriginalFilename: photo.OriginalFilename,
		ContentType:      photo.ContentType,
		Size:             photo.Size,
		GalleryID:        photo.GalleryID,
		CreatedAt:        photo.CreatedAt,
	}
}

// ToPhotoResponses converts a slice, never returning nil.
func ToPhotoResponses(photos []*model.Photo) []PhotoResponse {
	out := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		out[i] = ToPhotoResponse(p)
	}
	return out
}

// BulkDeleteRequest lists photo ids to delete. The body may be either
// {"ids": [...]} or a bare JSON array.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// UnmarshalJSON accepts both accepted body shapes.
func (r *BulkDeleteRequest) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err == nil {
		r.IDs = ids
		return nil
	}

	var obj struct {
		IDs []string `json:"ids"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("expected an array of ids or an object with ids: %w", err)
	}
	r.IDs = obj.IDs
	return nil
}
