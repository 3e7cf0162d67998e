// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/photovault/photovault/internal/model"

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// APIResponse is a bare acknowledgement.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PageResponse is the page envelope shared by every paginated listing.
type PageResponse[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Size             int   `json:"size"`
	Number           int   `json:"number"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
}

// NewPageResponse builds the envelope for content at page.
func NewPageResponse[T any](content []T, total int64, totalPages int, page model.Page) PageResponse[T] {
	if content == nil {
		content = []T{}
	}
	return PageResponse[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Size:             page.Size,
		Number:           page.Number,
		NumberOfElements: len(content),
		First:            page.Number == 0,
		Last:             page.Number+1 >= totalPages,
	}
}
