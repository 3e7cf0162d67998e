package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/photovault/photovault/internal/auth"
	"github.com/photovault/photovault/internal/handler/dto"
	"github.com/photovault/photovault/internal/service"
)

// GalleryHandler serves gallery endpoints.
type GalleryHandler struct {
	galleries GalleryService
	logger    *slog.Logger
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(galleries GalleryService, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{galleries: galleries, logger: logger}
}

// Create adds a gallery.
// POST /api/galleries
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.GalleryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	gallery, err := h.galleries.Create(r.Context(), auth.MustUserIDFromContext(r.Context()), service.GalleryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGalleryResponse(gallery))
}

// List returns all galleries with counts and previews.
// GET /api/galleries
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	galleries, err := h.galleries.List(r.Context(), auth.MustUserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToGalleryResponses(galleries))
}

// Page returns one page of galleries.
// GET /api/galleries/page?page=&size=
func (h *GalleryHandler) Page(w http.ResponseWriter, r *http.Request) {
	number, err := queryInt(r, "page", 0)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	size, err := queryInt(r, "size", service.DefaultPageSize)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	result, err := h.galleries.ListPage(r.Context(), auth.MustUserIDFromContext(r.Context()), number, size)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewPageResponse(
		dto.ToGalleryResponses(result.Items), result.TotalElements, result.TotalPages, result.Page))
}

// Dropdown returns id and name pairs for pickers.
// GET /api/galleries/dropdown
func (h *GalleryHandler) Dropdown(w http.ResponseWriter, r *http.Request) {
	options, err := h.galleries.ListForDropdown(r.Context(), auth.MustUserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// Get returns a gallery with every photo.
// GET /api/galleries/{id}
func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	gallery, err := h.galleries.Get(r.Context(), chi.URLParam(r, "id"), auth.MustUserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToGalleryDetailResponse(gallery))
}

// Preview returns a gallery with its first photos only.
// GET /api/galleries/{id}/preview
func (h *GalleryHandler) Preview(w http.ResponseWriter, r *http.Request) {
	gallery, err := h.galleries.GetPreview(r.Context(), chi.URLParam(r, "id"), auth.MustUserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToGalleryResponse(gallery))
}

// Update renames or re-describes a gallery.
// PUT /api/galleries/{id}
func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.GalleryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	gallery, err := h.galleries.Update(r.Context(), chi.URLParam(r, "id"), auth.MustUserIDFromContext(r.Context()), service.GalleryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGalleryResponse(gallery))
}

// Delete removes a gallery. With deletePhotos=true its photos go too;
// otherwise they become unorganized.
// DELETE /api/galleries/{id}?deletePhotos=
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deletePhotos, err := queryBool(r, "deletePhotos", false)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	galleryID := chi.URLParam(r, "id")
	if err := h.galleries.Delete(r.Context(), galleryID, auth.MustUserIDFromContext(r.Context()), deletePhotos); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("gallery_deleted",
		slog.String("gallery_id", galleryID),
		slog.Bool("delete_photos", deletePhotos),
	)
	w.WriteHeader(http.StatusNoContent)
}

// MovePhotos reassigns photos to a gallery or to unorganized.
// POST /api/galleries/move-photos
func (h *GalleryHandler) MovePhotos(w http.ResponseWriter, r *http.Request) {
	var req dto.MovePhotosRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	var target *string
	if req.TargetGalleryID != nil {
		target = galleryTarget(*req.TargetGalleryID)
	}

	if err := h.galleries.MovePhotos(r.Context(), req.PhotoIDs, target, auth.MustUserIDFromContext(r.Context())); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
