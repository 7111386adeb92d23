package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/app/models"
)

// GalleryRepository handles database operations for gallery images
type GalleryRepository struct {
	db *pgxpool.Pool
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
	}
}

func (r *GalleryRepository) insert(ctx context.Context, db DBTX, image *models.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (category, image, caption, is_public)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id
	`

	return db.QueryRow(ctx, query,
		image.Category,
		image.Image,
		image.Caption,
	).Scan(&image.ID)
}

// Insert creates a new gallery image in draft state
func (r *GalleryRepository) Insert(ctx context.Context, image *models.GalleryImage) (int64, error) {
	if err := r.insert(ctx, r.db, image); err != nil {
		return 0, err
	}
	return image.ID, nil
}

// InsertPublished creates a gallery image and publishes it in one transaction
func (r *GalleryRepository) InsertPublished(ctx context.Context, image *models.GalleryImage) (int64, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.insert(ctx, tx, image); err != nil {
			return err
		}
		return r.setPublic(ctx, tx, image.ID)
	})
	if err != nil {
		return 0, err
	}
	image.IsPublic = true
	return image.ID, nil
}

// Update rewrites the editable fields. Visibility is not touched here.
func (r *GalleryRepository) Update(ctx context.Context, image *models.GalleryImage) error {
	query := `
		UPDATE gallery_images
		SET category = $2, image = $3, caption = $4
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query,
		image.ID,
		image.Category,
		image.Image,
		image.Caption,
	)
}

func (r *GalleryRepository) setPublic(ctx context.Context, db DBTX, id int64) error {
	return execAffectingOne(ctx, db, `UPDATE gallery_images SET is_public = TRUE WHERE id = $1`, id)
}

// SetPublic marks a gallery image as public
func (r *GalleryRepository) SetPublic(ctx context.Context, id int64) error {
	return r.setPublic(ctx, r.db, id)
}

// Delete removes a gallery image permanently
func (r *GalleryRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM gallery_images WHERE id = $1`, id)
}

const galleryColumns = `id, category, image, caption, is_public`

func scanGalleryImage(row pgx.Row) (models.GalleryImage, error) {
	var g models.GalleryImage
	err := row.Scan(
		&g.ID,
		&g.Category,
		&g.Image,
		&g.Caption,
		&g.IsPublic,
	)
	return g, err
}

// GetByID retrieves a gallery image by ID regardless of visibility
func (r *GalleryRepository) GetByID(ctx context.Context, id int64) (*models.GalleryImage, error) {
	query := fmt.Sprintf(`SELECT %s FROM gallery_images WHERE id = $1`, galleryColumns)

	g, err := scanGalleryImage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &g, nil
}

// GetAllPublic retrieves all public gallery images
func (r *GalleryRepository) GetAllPublic(ctx context.Context) ([]models.GalleryImage, error) {
	query := fmt.Sprintf(`SELECT %s FROM gallery_images WHERE is_public ORDER BY id`, galleryColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.GalleryImage, error) {
		return scanGalleryImage(rows)
	})
}

// GetPublicByCategory retrieves public gallery images in a category
func (r *GalleryRepository) GetPublicByCategory(ctx context.Context, category string) ([]models.GalleryImage, error) {
	query := fmt.Sprintf(`SELECT %s FROM gallery_images WHERE is_public AND category = $1 ORDER BY id`, galleryColumns)

	return collectList(ctx, r.db, query, []any{category}, func(rows pgx.Rows) (models.GalleryImage, error) {
		return scanGalleryImage(rows)
	})
}
