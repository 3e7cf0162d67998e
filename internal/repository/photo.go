package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/photovault/photovault/internal/model"
)

// ErrPhotoNotFound is returned when no photo matches the lookup.
var ErrPhotoNotFound = errors.New("photo not found")

// photoMetaColumns excludes the image bytes, which only downloads need.
const photoMetaColumns = `id, title, description, original_filename, content_type, size, user_id, gallery_id, created_at`

// CreatePhoto inserts a new photo into the database.
func (r *Repository) CreatePhoto(ctx context.Context, photo *model.Photo) (err error) {
	ctx, span := startSpan(ctx, "CreatePhoto")
	defer func() { endSpan(span, err) }()

	query := `
		INSERT INTO photos (id, title, description, original_filename, content_type, size, data, user_id, gallery_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.conn(ctx).Exec(ctx, query,
		photo.ID,
		photo.Title,
		photo.Description,
		nullIfEmpty(photo.OriginalFilename),
		nullIfEmpty(photo.ContentType),
		photo.Size,
		photo.Data,
		photo.UserID,
		photo.GalleryID,
		photo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}

	return nil
}

// GetPhotoByID retrieves a photo including its image bytes.
func (r *Repository) GetPhotoByID(ctx context.Context, id string) (_ *model.Photo, err error) {
	ctx, span := startSpan(ctx, "GetPhotoByID")
	defer func() { endSpan(span, err) }()

	query := `SELECT ` + photoMetaColumns + `, data FROM photos WHERE id = $1`

	var (
		photo *model.Photo
		data  []byte
	)
	photo, err = scanPhoto(r.conn(ctx).QueryRow(ctx, query, id), &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to get photo by ID: %w", err)
	}
	photo.Data = data

	return photo, nil
}

// ListPhotos returns one page of a user's photos, newest first, without
// image bytes, along with the total number of matching photos.
func (r *Repository) ListPhotos(ctx context.Context, userID string, filter model.PhotoFilter, page model.Page) (_ []*model.Photo, _ int64, err error) {
	ctx, span := startSpan(ctx, "ListPhotos")
	defer func() { endSpan(span, err) }()

	where := ` WHERE user_id = $1`
	args := []any{userID}

	switch filter.Scope {
	case model.ScopeGallery:
		where += ` AND gallery_id = $2`
		args = append(args, filter.GalleryID)
	case model.ScopeUnorganized:
		where += ` AND gallery_id IS NULL`
	}

	var total int64
	if err = r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM photos`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count photos: %w", err)
	}

	query := `SELECT ` + photoMetaColumns + ` FROM photos` + where +
		fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, page.Size, page.Offset())

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	photos := make([]*model.Photo, 0, page.Size)
	for rows.Next() {
		photo, err := scanPhoto(rows, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating photos: %w", err)
	}

	return photos, total, nil
}

// UpdatePhoto writes title, description, file fields and gallery assignment.
func (r *Repository) UpdatePhoto(ctx context.Context, photo *model.Photo) (err error) {
	ctx, span := startSpan(ctx, "UpdatePhoto")
	defer func() { endSpan(span, err) }()

	query := `
		UPDATE photos
		SET title = $2, description = $3, original_filename = $4, content_type = $5,
		    size = $6, data = $7, gallery_id = $8
		WHERE id = $1
	`

	result, err := r.conn(ctx).Exec(ctx, query,
		photo.ID,
		photo.Title,
		photo.Description,
		nullIfEmpty(photo.OriginalFilename),
		nullIfEmpty(photo.ContentType),
		photo.Size,
		photo.Data,
		photo.GalleryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

// DeletePhoto hard-deletes a photo.
func (r *Repository) DeletePhoto(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "DeletePhoto")
	defer func() { endSpan(span, err) }()

	result, err := r.conn(ctx).Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

// GetPhotoOwners maps each existing id in ids to its owning user id.
// Missing ids are absent from the result.
func (r *Repository) GetPhotoOwners(ctx context.Context, ids []string) (_ map[string]string, err error) {
	ctx, span := startSpan(ctx, "GetPhotoOwners")
	defer func() { endSpan(span, err) }()

	rows, err := r.conn(ctx).Query(ctx, `SELECT id, user_id FROM photos WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get photo owners: %w", err)
	}
	defer rows.Close()

	owners := make(map[string]string, len(ids))
	for rows.Next() {
		var id, userID string
		if err := rows.Scan(&id, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan photo owner: %w", err)
		}
		owners[id] = userID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo owners: %w", err)
	}

	return owners, nil
}

// DeletePhotos hard-deletes every photo in ids and returns the deleted count.
func (r *Repository) DeletePhotos(ctx context.Context, ids []string) (_ int64, err error) {
	ctx, span := startSpan(ctx, "DeletePhotos")
	defer func() { endSpan(span, err) }()

	result, err := r.conn(ctx).Exec(ctx, `DELETE FROM photos WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete photos: %w", err)
	}

	return result.RowsAffected(), nil
}

// MovePhotos sets the gallery of every photo in ids. A nil galleryID
// moves them to unorganized.
func (r *Repository) MovePhotos(ctx context.Context, ids []string, galleryID *string) (_ int64, err error) {
	ctx, span := startSpan(ctx, "MovePhotos")
	defer func() { endSpan(span, err) }()

	result, err := r.conn(ctx).Exec(ctx,
		`UPDATE photos SET gallery_id = $2 WHERE id = ANY($1)`,
		pq.Array(ids), galleryID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to move photos: %w", err)
	}

	return result.RowsAffected(), nil
}

// DeletePhotosInGallery hard-deletes every photo of a gallery.
func (r *Repository) DeletePhotosInGallery(ctx context.Context, galleryID string) (_ int64, err error) {
	ctx, span := startSpan(ctx, "DeletePhotosInGallery")
	defer func() { endSpan(span, err) }()

	result, err := r.conn(ctx).Exec(ctx, `DELETE FROM photos WHERE gallery_id = $1`, galleryID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete gallery photos: %w", err)
	}

	return result.RowsAffected(), nil
}

// DetachPhotosFromGallery moves every photo of a gallery to unorganized.
func (r *Repository) DetachPhotosFromGallery(ctx context.Context, galleryID string) (_ int64, err error) {
	ctx, span := startSpan(ctx, "DetachPhotosFromGallery")
	defer func() { endSpan(span, err) }()

	result, err := r.conn(ctx).Exec(ctx, `UPDATE photos SET gallery_id = NULL WHERE gallery_id = $1`, galleryID)
	if err != nil {
		return 0, fmt.Errorf("failed to detach gallery photos: %w", err)
	}

	return result.RowsAffected(), nil
}

// ListGalleryPhotos returns a gallery's photos ordered by id ascending,
// without image bytes. A limit of zero returns all of them.
func (r *Repository) ListGalleryPhotos(ctx context.Context, galleryID string, limit int) (_ []*model.Photo, err error) {
	ctx, span := startSpan(ctx, "ListGalleryPhotos")
	defer func() { endSpan(span, err) }()

	query := `SELECT ` + photoMetaColumns + ` FROM photos WHERE gallery_id = $1 ORDER BY id ASC`
	args := []any{galleryID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery photos: %w", err)
	}
	defer rows.Close()

	var photos []*model.Photo
	for rows.Next() {
		photo, err := scanPhoto(rows, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery photos: %w", err)
	}

	return photos, nil
}

// scanPhoto scans photoMetaColumns, plus data when data is non-nil.
func scanPhoto(row pgx.Row, data *[]byte) (*model.Photo, error) {
	var (
		photo       model.Photo
		filename    *string
		contentType *string
	)
	dest := []any{
		&photo.ID,
		&photo.Title,
		&photo.Description,
		&filename,
		&contentType,
		&photo.Size,
		&photo.UserID,
		&photo.GalleryID,
		&photo.CreatedAt,
	}
	if data != nil {
		dest = append(dest, data)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if filename != nil {
		photo.OriginalFilename = *filename
	}
	if contentType != nil {
		photo.ContentType = *contentType
	}

	return &photo, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
