package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxPhotoSize is the per-image upload cap (8 MiB).
const DefaultMaxPhotoSize int64 = 8 * 1024 * 1024

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs struct tag validation and reports the first failure
// as an ErrInvalidInput.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describeFieldError(verrs[0]))
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// Upload is an uploaded file as read from the request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the byte length of the upload.
func (u *Upload) Size() int64 {
	return int64(len(u.Data))
}

// IsEmpty reports whether the upload carries no bytes.
func (u *Upload) IsEmpty() bool {
	return u == nil || len(u.Data) == 0
}

// validateImage enforces the image content type and size cap.
func validateImage(u *Upload, maxSize int64) error {
	if u.IsEmpty() {
		return fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if u.Size() > maxSize {
		return fmt.Errorf("%w: file size exceeds maximum allowed size of %dMB", ErrInvalidInput, maxSize/(1024*1024))
	}
	if !strings.HasPrefix(u.ContentType, "image/") {
		return fmt.Errorf("%w: only image files are allowed", ErrInvalidInput)
	}
	if len(u.Filename) > 255 {
		return fmt.Errorf("%w: filename must be at most 255 characters", ErrInvalidInput)
	}
	if len(u.ContentType) > 100 {
		return fmt.Errorf("%w: content type must be at most 100 characters", ErrInvalidInput)
	}
	return nil
}
