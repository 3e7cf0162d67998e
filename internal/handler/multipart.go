package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/photovault/photovault/internal/service"
)

// multipartMemory is kept in memory before parts spill to temp files.
const multipartMemory = 32 << 20

// parseMultipart bounds the body to maxBytes and parses it.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: request exceeds %d bytes", service.ErrInvalidInput, maxBytes)
		}
		return fmt.Errorf("%w: malformed multipart request", service.ErrInvalidInput)
	}
	return nil
}

// formValue returns the first value of key and whether the part was sent.
func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// optionalText returns nil for an absent or blank field.
func optionalText(r *http.Request, key string) *string {
	v, ok := formValue(r, key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

// formFiles returns the file parts sent under key.
func formFiles(r *http.Request, key string) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	return r.MultipartForm.File[key]
}

// readUpload loads one file part into memory.
func readUpload(fh *multipart.FileHeader) (*service.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %q: %w", fh.Filename, err)
	}
	return &service.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// firstUpload reads the first file sent under key, or nil when none was.
func firstUpload(r *http.Request, key string) (*service.Upload, error) {
	files := formFiles(r, key)
	if len(files) == 0 {
		return nil, nil
	}
	return readUpload(files[0])
}

// galleryTarget interprets a galleryId form value. Blank and the literal
// "unorganized" both mean no gallery.
func galleryTarget(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "unorganized") {
		return nil
	}
	return &v
}

// queryInt parses an integer query parameter, returning def when absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", service.ErrInvalidInput, key)
	}
	return n, nil
}

// queryBool parses a boolean query parameter, returning def when absent.
func queryBool(r *http.Request, key string, def bool) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", service.ErrInvalidInput, key)
	}
	return b, nil
}
