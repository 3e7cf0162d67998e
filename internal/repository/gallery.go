package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/photovault/photovault/internal/model"
)

// Common errors for gallery repository operations.
var (
	ErrGalleryNotFound   = errors.New("gallery not found")
	ErrGalleryNameExists = errors.New("gallery name already exists")
)

const galleryColumns = `id, name, description, user_id, created_at, updated_at`

// CreateGallery inserts a new gallery into the database.
func (r *Repository) CreateGallery(ctx context.Context, gallery *model.Gallery) (err error) {
	ctx, span := startSpan(ctx, "CreateGallery")
	defer func() { endSpan(span, err) }()

	query := `
		INSERT INTO galleries (id, name, description, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.conn(ctx).Exec(ctx, query,
		gallery.ID,
		gallery.Name,
		gallery.Description,
		gallery.UserID,
		gallery.CreatedAt,
		gallery.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrGalleryNameExists
		}
		return fmt.Errorf("failed to create gallery: %w", err)
	}

	return nil
}

// GetGalleryForUser retrieves a gallery owned by userID. A gallery owned by
// someone else is reported as not found.
func (r *Repository) GetGalleryForUser(ctx context.Context, id, userID string) (_ *model.Gallery, err error) {
	ctx, span := startSpan(ctx, "GetGalleryForUser")
	defer func() { endSpan(span, err) }()

	query := `SELECT ` + galleryColumns + ` FROM galleries WHERE id = $1 AND user_id = $2`

	gallery, err := scanGallery(r.conn(ctx).QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGalleryNotFound
		}
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}

	return gallery, nil
}

// GalleryNameExists checks if userID already has a gallery called name.
func (r *Repository) GalleryNameExists(ctx context.Context, userID, name string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM galleries WHERE user_id = $1 AND name = $2)`,
		userID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check gallery name: %w", err)
	}
	return exists, nil
}

// ListGalleries returns the user's galleries, newest first, with photo
// counts and up to previewLimit preview photos each.
func (r *Repository) ListGalleries(ctx context.Context, userID string, previewLimit int) (_ []*model.Gallery, err error) {
	ctx, span := startSpan(ctx, "ListGalleries")
	defer func() { endSpan(span, err) }()

	query := `
		SELECT g.id, g.name, g.description, g.user_id, g.created_at, g.updated_at,
		       (SELECT COUNT(*) FROM photos p WHERE p.gallery_id = g.id)
		FROM galleries g
		WHERE g.user_id = $1
		ORDER BY g.created_at DESC, g.id DESC
	`

	galleries, err := r.queryGalleries(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	if err := r.attachPreviews(ctx, galleries, previewLimit); err != nil {
		return nil, err
	}

	return galleries, nil
}

// ListGalleriesPage returns one page of ListGalleries and the total count.
func (r *Repository) ListGalleriesPage(ctx context.Context, userID string, page model.Page, previewLimit int) (_ []*model.Gallery, _ int64, err error) {
	ctx, span := startSpan(ctx, "ListGalleriesPage")
	defer func() { endSpan(span, err) }()

	var total int64
	if err = r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM galleries WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count galleries: %w", err)
	}

	query := `
		SELECT g.id, g.name, g.description, g.user_id, g.created_at, g.updated_at,
		       (SELECT COUNT(*) FROM photos p WHERE p.gallery_id = g.id)
		FROM galleries g
		WHERE g.user_id = $1
		ORDER BY g.created_at DESC, g.id DESC
		LIMIT $2 OFFSET $3
	`

	galleries, err := r.queryGalleries(ctx, query, userID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachPreviews(ctx, galleries, previewLimit); err != nil {
		return nil, 0, err
	}

	return galleries, total, nil
}

// ListGalleryOptions returns id and name of every gallery, newest first.
func (r *Repository) ListGalleryOptions(ctx context.Context, userID string) (_ []model.GalleryOption, err error) {
	ctx, span := startSpan(ctx, "ListGalleryOptions")
	defer func() { endSpan(span, err) }()

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name FROM galleries WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery options: %w", err)
	}
	defer rows.Close()

	options := []model.GalleryOption{}
	for rows.Next() {
		var opt model.GalleryOption
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, fmt.Errorf("failed to scan gallery option: %w", err)
		}
		options = append(options, opt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery options: %w", err)
	}

	return options, nil
}

// CountGalleryPhotos returns the number of photos in a gallery.
func (r *Repository) CountGalleryPhotos(ctx context.Context, galleryID string) (int64, error) {
	var count int64
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM photos WHERE gallery_id = $1`, galleryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count gallery photos: %w", err)
	}
	return count, nil
}

// UpdateGallery writes name, description and updated_at.
func (r *Repository) UpdateGallery(ctx context.Context, gallery *model.Gallery) (err error) {
	ctx, span := startSpan(ctx, "UpdateGallery")
	defer func() { endSpan(span, err) }()

	query := `
		UPDATE galleries
		SET name = $3, description = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.conn(ctx).Exec(ctx, query,
		gallery.ID,
		gallery.UserID,
		gallery.Name,
		gallery.Description,
		gallery.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrGalleryNameExists
		}
		return fmt.Errorf("failed to update gallery: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrGalleryNotFound
	}

	return nil
}

// DeleteGallery removes a gallery row owned by userID.
func (r *Repository) DeleteGallery(ctx context.Context, id, userID string) (err error) {
	ctx, span := startSpan(ctx, "DeleteGallery")
	defer func() { endSpan(span, err) }()

	result, err := r.conn(ctx).Exec(ctx, `DELETE FROM galleries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete gallery: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrGalleryNotFound
	}

	return nil
}

func (r *Repository) queryGalleries(ctx context.Context, query string, args ...any) ([]*model.Gallery, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	defer rows.Close()

	galleries := []*model.Gallery{}
	for rows.Next() {
		var g model.Gallery
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.UserID, &g.CreatedAt, &g.UpdatedAt, &g.PhotoCount); err != nil {
			return nil, fmt.Errorf("failed to scan gallery: %w", err)
		}
		galleries = append(galleries, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating galleries: %w", err)
	}

	return galleries, nil
}

// attachPreviews loads the first limit photos (by id) of every gallery in
// one query and assigns them to Photos.
func (r *Repository) attachPreviews(ctx context.Context, galleries []*model.Gallery, limit int) error {
	if len(galleries) == 0 || limit <= 0 {
		return nil
	}

	ids := make([]string, len(galleries))
	byID := make(map[string]*model.Gallery, len(galleries))
	for i, g := range galleries {
		ids[i] = g.ID
		byID[g.ID] = g
		g.Photos = []*model.Photo{}
	}

	query := `
		SELECT ` + photoMetaColumns + `
		FROM (
			SELECT p.*, ROW_NUMBER() OVER (PARTITION BY p.gallery_id ORDER BY p.id ASC) AS rn
			FROM photos p
			WHERE p.gallery_id = ANY($1)
		) ranked
		WHERE rn <= $2
		ORDER BY gallery_id, id ASC
	`

	rows, err := r.conn(ctx).Query(ctx, query, pq.Array(ids), limit)
	if err != nil {
		return fmt.Errorf("failed to load gallery previews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		photo, err := scanPhoto(rows, nil)
		if err != nil {
			return fmt.Errorf("failed to scan preview photo: %w", err)
		}
		if photo.GalleryID == nil {
			continue
		}
		if g, ok := byID[*photo.GalleryID]; ok {
			g.Photos = append(g.Photos, photo)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating preview photos: %w", err)
	}

	return nil
}

// scanGallery scans a single row into a Gallery model.
func scanGallery(row pgx.Row) (*model.Gallery, error) {
	var g model.Gallery
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.UserID,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	return &g, err
}
