package handler

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/photovault/photovault/internal/auth"
	"github.com/photovault/photovault/internal/handler/dto"
	"github.com/photovault/photovault/internal/model"
	"github.com/photovault/photovault/internal/service"
)

// PhotoHandler serves photo endpoints. Every route requires a principal.
type PhotoHandler struct {
	photos         PhotoService
	logger         *slog.Logger
	maxRequestSize int64
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(photos PhotoService, logger *slog.Logger, maxRequestSize int64) *PhotoHandler {
	return &PhotoHandler{
		photos:         photos,
		logger:         logger,
		maxRequestSize: maxRequestSize,
	}
}

// List returns one page of photos.
// GET /api/photos?page=&size=&galleryId=&unorganized=
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	size, err := queryInt(r, "size", service.DefaultPageSize)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	filter, err := photoFilter(r)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	result, err := h.photos.List(r.Context(), service.ListPhotosInput{
		UserID: auth.MustUserIDFromContext(r.Context()),
		Filter: filter,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewPageResponse(
		dto.ToPhotoResponses(result.Items), result.TotalElements, result.TotalPages, result.Page))
}

// photoFilter reads the tri-state gallery filter. unorganized=true wins over
// a galleryId; galleryId=unorganized is accepted as a synonym.
func photoFilter(r *http.Request) (model.PhotoFilter, error) {
	unorganized, err := queryBool(r, "unorganized", false)
	if err != nil {
		return model.PhotoFilter{}, err
	}
	if unorganized {
		return model.Unorganized(), nil
	}

	galleryID := strings.TrimSpace(r.URL.Query().Get("galleryId"))
	switch {
	case galleryID == "":
		return model.AnyGallery(), nil
	case strings.EqualFold(galleryID, "unorganized"):
		return model.Unorganized(), nil
	default:
		return model.InGallery(galleryID), nil
	}
}

// Get returns one photo.
// GET /api/photos/{id}
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	photo, err := h.photos.Get(r.Context(), chi.URLParam(r, "id"), auth.MustUserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPhotoResponse(photo))
}

// Metadata returns the byte-free view of a photo.
// GET /api/photos/{id}/metadata
func (h *PhotoHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	meta, err := h.photos.GetMetadata(r.Context(), chi.URLParam(r, "id"), auth.MustUserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// Download streams the image bytes as an attachment.
// GET /api/photos/{id}/file
func (h *PhotoHandler) Download(w http.ResponseWriter, r *http.Request) {
	photo, err := h.photos.Download(r.Context(), chi.URLParam(r, "id"), auth.MustUserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": photo.DownloadFilename()})
	if disposition == "" {
		disposition = fmt.Sprintf("attachment; filename=%q", "photo-"+photo.ID)
	}

	w.Header().Set("Content-Type", photo.DownloadContentType())
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Length", strconv.Itoa(len(photo.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(photo.Data)
}

// Create uploads one photo.
// POST /api/photos (multipart: title, description?, file, galleryId?)
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxRequestSize); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, err := firstUpload(r, "file")
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	if file == nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "file is required")
		return
	}

	title, _ := formValue(r, "title")
	galleryID, _ := formValue(r, "galleryId")

	photo, err := h.photos.Create(r.Context(), service.CreatePhotoInput{
		UserID:      auth.MustUserIDFromContext(r.Context()),
		Title:       title,
		Description: optionalText(r, "description"),
		File:        file,
		GalleryID:   galleryTarget(galleryID),
	})
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPhotoResponse(photo))
}

// BulkCreate uploads several photos as one batch.
// POST /api/photos/bulk (multipart: files[], titles[]?, descriptions[]?, galleryId?)
func (h *PhotoHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxRequestSize); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := formFiles(r, "files")
	files := make([]*service.Upload, 0, len(headers))
	for _, fh := range headers {
		upload, err := readUpload(fh)
		if err != nil {
			handleServiceError(w, r, h.logger, err)
			return
		}
		files = append(files, upload)
	}

	galleryID, _ := formValue(r, "galleryId")

	photos, err := h.photos.BulkCreate(r.Context(), service.BulkCreatePhotosInput{
		UserID:       auth.MustUserIDFromContext(r.Context()),
		Files:        files,
		Titles:       r.MultipartForm.Value["titles"],
		Descriptions: r.MultipartForm.Value["descriptions"],
		GalleryID:    galleryTarget(galleryID),
	})
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPhotoResponses(photos))
}

// Update changes a photo. The gallery is only touched when a galleryId
// part is present.
// PUT /api/photos/{id} (multipart: title, description?, file?, galleryId?)
func (h *PhotoHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxRequestSize); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, err := firstUpload(r, "file")
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	title, _ := formValue(r, "title")
	galleryID, setGallery := formValue(r, "galleryId")

	photo, err := h.photos.Update(r.Context(), service.UpdatePhotoInput{
		PhotoID:     chi.URLParam(r, "id"),
		UserID:      auth.MustUserIDFromContext(r.Context()),
		Title:       title,
		Description: optionalText(r, "description"),
		File:        file,
		SetGallery:  setGallery,
		GalleryID:   galleryTarget(galleryID),
	})
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPhotoResponse(photo))
}

// Delete removes one photo.
// DELETE /api/photos/{id}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.photos.Delete(r.Context(), chi.URLParam(r, "id"), auth.MustUserIDFromContext(r.Context())); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BulkDelete removes several photos, all or nothing.
// DELETE /api/photos/bulk
func (h *PhotoHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDeleteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	if err := h.photos.BulkDelete(r.Context(), req.IDs, auth.MustUserIDFromContext(r.Context())); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
