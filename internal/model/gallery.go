package model

import "time"

// PreviewPhotoLimit is how many photos a gallery preview carries.
const PreviewPhotoLimit = 4

// Gallery groups photos of one user. Name is unique per user.
type Gallery struct {
	ID          string
	Name        string
	Description *string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated by listing queries only.
	PhotoCount int64
	Photos     []*Photo
}

// GalleryOption is the lightweight id and name pair used for pickers.
type GalleryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Page describes a requested page of results. Number is zero-based.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset of the page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// TotalPages returns the page count for total rows.
func (p Page) TotalPages(total int64) int {
	if p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
