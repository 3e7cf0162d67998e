package model

import (
	"strings"
	"time"
)

// Photo is an uploaded image owned by exactly one user.
// GalleryID is nil for unorganized photos.
type Photo struct {
	ID               string
	Title            string
	Description      *string
	OriginalFilename string
	ContentType      string
	Size             int64
	Data             []byte
	UserID           string
	GalleryID        *string
	CreatedAt        time.Time
}

// IsOwnedBy reports whether userID owns the photo.
func (p *Photo) IsOwnedBy(userID string) bool {
	return p.UserID == userID
}

// DownloadFilename returns the stored filename or a photo-<id> fallback.
func (p *Photo) DownloadFilename() string {
	if p.OriginalFilename != "" {
		return p.OriginalFilename
	}
	return "photo-" + p.ID
}

// DownloadContentType returns the stored content type or application/octet-stream.
func (p *Photo) DownloadContentType() string {
	if p.ContentType != "" {
		return p.ContentType
	}
	return "application/octet-stream"
}

// PhotoMetadata is the byte-free view of a photo.
type PhotoMetadata struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      *string `json:"description"`
	OriginalFilename string  `json:"originalFilename"`
	ContentType      string  `json:"contentType"`
	Size             int64   `json:"size"`
}

// Metadata returns the byte-free view of p.
func (p *Photo) Metadata() PhotoMetadata {
	return PhotoMetadata{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		OriginalFilename: p.OriginalFilename,
		ContentType:      p.ContentType,
		Size:             p.Size,
	}
}

// GalleryScope selects which photos a listing covers.
type GalleryScope int

const (
	// ScopeAny matches every photo of the user.
	ScopeAny GalleryScope = iota
	// ScopeGallery matches photos in one gallery.
	ScopeGallery
	// ScopeUnorganized matches photos without a gallery.
	ScopeUnorganized
)

// PhotoFilter is the tri-state gallery filter for photo listings.
type PhotoFilter struct {
	Scope     GalleryScope
	GalleryID string
}

// AnyGallery matches all photos.
func AnyGallery() PhotoFilter { return PhotoFilter{Scope: ScopeAny} }

// InGallery matches photos of the given gallery.
func InGallery(id string) PhotoFilter { return PhotoFilter{Scope: ScopeGallery, GalleryID: id} }

// Unorganized matches photos with no gallery.
func Unorganized() PhotoFilter { return PhotoFilter{Scope: ScopeUnorganized} }

// TitleFromFilename strips the extension from a filename.
// A leading dot is not treated as an extension separator.
func TitleFromFilename(filename string) string {
	if filename == "" {
		return "Untitled"
	}
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}
