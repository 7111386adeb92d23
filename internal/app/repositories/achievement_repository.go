package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/app/models"
)

// AchievementRepository handles database operations for achievements
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{
		db: db,
	}
}

func (r *AchievementRepository) insert(ctx context.Context, db DBTX, achievement *models.Achievement) error {
	query := `
		INSERT INTO achievements (title, category, description, date, recipients, is_public)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id
	`

	return db.QueryRow(ctx, query,
		achievement.Title,
		achievement.Category,
		achievement.Description,
		achievement.Date,
		achievement.Recipients,
	).Scan(&achievement.ID)
}

// Insert creates a new achievement in draft state
func (r *AchievementRepository) Insert(ctx context.Context, achievement *models.Achievement) (int64, error) {
	if err := r.insert(ctx, r.db, achievement); err != nil {
		return 0, err
	}
	return achievement.ID, nil
}

// InsertPublished creates an achievement and publishes it in one transaction
func (r *AchievementRepository) InsertPublished(ctx context.Context, achievement *models.Achievement) (int64, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.insert(ctx, tx, achievement); err != nil {
			return err
		}
		return r.setPublic(ctx, tx, achievement.ID)
	})
	if err != nil {
		return 0, err
	}
	achievement.IsPublic = true
	return achievement.ID, nil
}

// Update rewrites the editable fields. Visibility is not touched here.
func (r *AchievementRepository) Update(ctx context.Context, achievement *models.Achievement) error {
	query := `
		UPDATE achievements
		SET title = $2, category = $3, description = $4, date = $5, recipients = $6
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query,
		achievement.ID,
		achievement.Title,
		achievement.Category,
		achievement.Description,
		achievement.Date,
		achievement.Recipients,
	)
}

func (r *AchievementRepository) setPublic(ctx context.Context, db DBTX, id int64) error {
	return execAffectingOne(ctx, db, `UPDATE achievements SET is_public = TRUE WHERE id = $1`, id)
}

// SetPublic marks an achievement as public
func (r *AchievementRepository) SetPublic(ctx context.Context, id int64) error {
	return r.setPublic(ctx, r.db, id)
}

// Delete removes an achievement permanently
func (r *AchievementRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM achievements WHERE id = $1`, id)
}

const achievementColumns = `id, title, category, description, date, recipients, is_public`

func scanAchievement(row pgx.Row) (models.Achievement, error) {
	var a models.Achievement
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Category,
		&a.Description,
		&a.Date,
		&a.Recipients,
		&a.IsPublic,
	)
	return a, err
}

// GetByID retrieves an achievement by ID regardless of visibility
func (r *AchievementRepository) GetByID(ctx context.Context, id int64) (*models.Achievement, error) {
	query := fmt.Sprintf(`SELECT %s FROM achievements WHERE id = $1`, achievementColumns)

	a, err := scanAchievement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &a, nil
}

// GetAllPublic retrieves all public achievements, most recent first
func (r *AchievementRepository) GetAllPublic(ctx context.Context) ([]models.Achievement, error) {
	query := fmt.Sprintf(`SELECT %s FROM achievements WHERE is_public ORDER BY date DESC`, achievementColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.Achievement, error) {
		return scanAchievement(rows)
	})
}

// GetPublicByCategory retrieves public achievements in a category, most
// recent first
func (r *AchievementRepository) GetPublicByCategory(ctx context.Context, category string) ([]models.Achievement, error) {
	query := fmt.Sprintf(`SELECT %s FROM achievements WHERE is_public AND category = $1 ORDER BY date DESC`, achievementColumns)

	return collectList(ctx, r.db, query, []any{category}, func(rows pgx.Rows) (models.Achievement, error) {
		return scanAchievement(rows)
	})
}
