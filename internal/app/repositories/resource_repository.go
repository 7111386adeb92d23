package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/app/models"
)

// ResourceRepository handles database operations for learning resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
	}
}

func (r *ResourceRepository) insert(ctx context.Context, db DBTX, resource *models.Resource) error {
	query := `
		INSERT INTO resources (title, category, description, link, is_public)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id
	`

	return db.QueryRow(ctx, query,
		resource.Title,
		resource.Category,
		resource.Description,
		resource.Link,
	).Scan(&resource.ID)
}

// Insert creates a new resource in draft state
func (r *ResourceRepository) Insert(ctx context.Context, resource *models.Resource) (int64, error) {
	if err := r.insert(ctx, r.db, resource); err != nil {
		return 0, err
	}
	return resource.ID, nil
}

// InsertPublished creates a resource and publishes it in one transaction
func (r *ResourceRepository) InsertPublished(ctx context.Context, resource *models.Resource) (int64, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.insert(ctx, tx, resource); err != nil {
			return err
		}
		return r.setPublic(ctx, tx, resource.ID)
	})
	if err != nil {
		return 0, err
	}
	resource.IsPublic = true
	return resource.ID, nil
}

// Update rewrites the editable fields. Visibility is not touched here.
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	query := `
		UPDATE resources
		SET title = $2, category = $3, description = $4, link = $5
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query,
		resource.ID,
		resource.Title,
		resource.Category,
		resource.Description,
		resource.Link,
	)
}

func (r *ResourceRepository) setPublic(ctx context.Context, db DBTX, id int64) error {
	return execAffectingOne(ctx, db, `UPDATE resources SET is_public = TRUE WHERE id = $1`, id)
}

// SetPublic marks a resource as public
func (r *ResourceRepository) SetPublic(ctx context.Context, id int64) error {
	return r.setPublic(ctx, r.db, id)
}

// Delete removes a resource permanently
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM resources WHERE id = $1`, id)
}

const resourceColumns = `id, title, category, description, link, is_public`

func scanResource(row pgx.Row) (models.Resource, error) {
	var res models.Resource
	err := row.Scan(
		&res.ID,
		&res.Title,
		&res.Category,
		&res.Description,
		&res.Link,
		&res.IsPublic,
	)
	return res, err
}

// GetByID retrieves a resource by ID regardless of visibility
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM resources WHERE id = $1`, resourceColumns)

	res, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &res, nil
}

// GetAllPublic retrieves all public resources
func (r *ResourceRepository) GetAllPublic(ctx context.Context) ([]models.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM resources WHERE is_public ORDER BY id`, resourceColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.Resource, error) {
		return scanResource(rows)
	})
}

// GetPublicByCategory retrieves public resources in a category
func (r *ResourceRepository) GetPublicByCategory(ctx context.Context, category string) ([]models.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM resources WHERE is_public AND category = $1 ORDER BY id`, resourceColumns)

	return collectList(ctx, r.db, query, []any{category}, func(rows pgx.Rows) (models.Resource, error) {
		return scanResource(rows)
	})
}
