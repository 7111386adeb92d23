package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/app/models"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

func (r *AnnouncementRepository) insert(ctx context.Context, db DBTX, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, category, posted_at, is_public)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id
	`

	return db.QueryRow(ctx, query,
		announcement.Title,
		announcement.Content,
		announcement.Category,
		announcement.PostedAt,
	).Scan(&announcement.ID)
}

// Insert creates a new announcement in draft state
func (r *AnnouncementRepository) Insert(ctx context.Context, announcement *models.Announcement) (int64, error) {
	if err := r.insert(ctx, r.db, announcement); err != nil {
		return 0, err
	}
	return announcement.ID, nil
}

// InsertPublished creates an announcement and publishes it in one transaction
func (r *AnnouncementRepository) InsertPublished(ctx context.Context, announcement *models.Announcement) (int64, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.insert(ctx, tx, announcement); err != nil {
			return err
		}
		return r.setPublic(ctx, tx, announcement.ID)
	})
	if err != nil {
		return 0, err
	}
	announcement.IsPublic = true
	return announcement.ID, nil
}

// Update rewrites the editable fields. The original posting time is kept.
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $2, content = $3, category = $4
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query,
		announcement.ID,
		announcement.Title,
		announcement.Content,
		announcement.Category,
	)
}

func (r *AnnouncementRepository) setPublic(ctx context.Context, db DBTX, id int64) error {
	return execAffectingOne(ctx, db, `UPDATE announcements SET is_public = TRUE WHERE id = $1`, id)
}

// SetPublic marks an announcement as public
func (r *AnnouncementRepository) SetPublic(ctx context.Context, id int64) error {
	return r.setPublic(ctx, r.db, id)
}

// Delete removes an announcement permanently
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM announcements WHERE id = $1`, id)
}

const announcementColumns = `id, title, content, category, posted_at, is_public`

func scanAnnouncement(row pgx.Row) (models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Category,
		&a.PostedAt,
		&a.IsPublic,
	)
	return a, err
}

// GetByID retrieves an announcement by ID regardless of visibility
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	query := fmt.Sprintf(`SELECT %s FROM announcements WHERE id = $1`, announcementColumns)

	a, err := scanAnnouncement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &a, nil
}

// GetAllPublic retrieves all public announcements, newest first
func (r *AnnouncementRepository) GetAllPublic(ctx context.Context) ([]models.Announcement, error) {
	query := fmt.Sprintf(`SELECT %s FROM announcements WHERE is_public ORDER BY posted_at DESC`, announcementColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.Announcement, error) {
		return scanAnnouncement(rows)
	})
}

// GetPublicByCategory retrieves public announcements in a category, newest
// first
func (r *AnnouncementRepository) GetPublicByCategory(ctx context.Context, category string) ([]models.Announcement, error) {
	query := fmt.Sprintf(`SELECT %s FROM announcements WHERE is_public AND category = $1 ORDER BY posted_at DESC`, announcementColumns)

	return collectList(ctx, r.db, query, []any{category}, func(rows pgx.Rows) (models.Announcement, error) {
		return scanAnnouncement(rows)
	})
}
