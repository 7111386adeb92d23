package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/app/models"
)

// CollaborationRepository handles database operations for industry
// collaborations
type CollaborationRepository struct {
	db *pgxpool.Pool
}

// NewCollaborationRepository creates a new collaboration repository
func NewCollaborationRepository(db *pgxpool.Pool) *CollaborationRepository {
	return &CollaborationRepository{
		db: db,
	}
}

func (r *CollaborationRepository) insert(ctx context.Context, db DBTX, collaboration *models.Collaboration) error {
	query := `
		INSERT INTO collaborations (company_name, problem_statement, internship_opportunity, contact_info, is_public)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id
	`

	return db.QueryRow(ctx, query,
		collaboration.CompanyName,
		collaboration.ProblemStatement,
		collaboration.InternshipOpportunity,
		collaboration.ContactInfo,
	).Scan(&collaboration.ID)
}

// Insert creates a new collaboration in draft state
func (r *CollaborationRepository) Insert(ctx context.Context, collaboration *models.Collaboration) (int64, error) {
	if err := r.insert(ctx, r.db, collaboration); err != nil {
		return 0, err
	}
	return collaboration.ID, nil
}

// InsertPublished creates a collaboration and publishes it in one transaction
func (r *CollaborationRepository) InsertPublished(ctx context.Context, collaboration *models.Collaboration) (int64, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.insert(ctx, tx, collaboration); err != nil {
			return err
		}
		return r.setPublic(ctx, tx, collaboration.ID)
	})
	if err != nil {
		return 0, err
	}
	collaboration.IsPublic = true
	return collaboration.ID, nil
}

// Update rewrites the editable fields. Visibility is not touched here.
func (r *CollaborationRepository) Update(ctx context.Context, collaboration *models.Collaboration) error {
	query := `
		UPDATE collaborations
		SET company_name = $2, problem_statement = $3, internship_opportunity = $4, contact_info = $5
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query,
		collaboration.ID,
		collaboration.CompanyName,
		collaboration.ProblemStatement,
		collaboration.InternshipOpportunity,
		collaboration.ContactInfo,
	)
}

func (r *CollaborationRepository) setPublic(ctx context.Context, db DBTX, id int64) error {
	return execAffectingOne(ctx, db, `UPDATE collaborations SET is_public = TRUE WHERE id = $1`, id)
}

// SetPublic marks a collaboration as public
func (r *CollaborationRepository) SetPublic(ctx context.Context, id int64) error {
	return r.setPublic(ctx, r.db, id)
}

// Delete removes a collaboration permanently
func (r *CollaborationRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM collaborations WHERE id = $1`, id)
}

const collaborationColumns = `id, company_name, problem_statement, internship_opportunity, contact_info, is_public`

func scanCollaboration(row pgx.Row) (models.Collaboration, error) {
	var c models.Collaboration
	err := row.Scan(
		&c.ID,
		&c.CompanyName,
		&c.ProblemStatement,
		&c.InternshipOpportunity,
		&c.ContactInfo,
		&c.IsPublic,
	)
	return c, err
}

// GetByID retrieves a collaboration by ID regardless of visibility
func (r *CollaborationRepository) GetByID(ctx context.Context, id int64) (*models.Collaboration, error) {
	query := fmt.Sprintf(`SELECT %s FROM collaborations WHERE id = $1`, collaborationColumns)

	c, err := scanCollaboration(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &c, nil
}

// GetAllPublic retrieves all public collaborations
func (r *CollaborationRepository) GetAllPublic(ctx context.Context) ([]models.Collaboration, error) {
	query := fmt.Sprintf(`SELECT %s FROM collaborations WHERE is_public ORDER BY id`, collaborationColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.Collaboration, error) {
		return scanCollaboration(rows)
	})
}
