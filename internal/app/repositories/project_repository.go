package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/app/models"
)

// ProjectRepository handles database operations for student projects.
// Unlike the other content types, projects carry an owner (submitted_by) and
// are normally created by non-admin users.
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

func (r *ProjectRepository) insert(ctx context.Context, db DBTX, project *models.Project) error {
	query := `
		INSERT INTO projects (title, description, tech_used, team_members, demo_link, submitted_by, submitted_at, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING id
	`

	return db.QueryRow(ctx, query,
		project.Title,
		project.Description,
		project.TechUsed,
		project.TeamMembers,
		project.DemoLink,
		project.SubmittedBy,
		project.SubmittedAt,
	).Scan(&project.ID)
}

// Insert creates a new project in draft state
func (r *ProjectRepository) Insert(ctx context.Context, project *models.Project) (int64, error) {
	if err := r.insert(ctx, r.db, project); err != nil {
		return 0, err
	}
	return project.ID, nil
}

// InsertPublished creates a project and publishes it in one transaction
func (r *ProjectRepository) InsertPublished(ctx context.Context, project *models.Project) (int64, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.insert(ctx, tx, project); err != nil {
			return err
		}
		return r.setPublic(ctx, tx, project.ID)
	})
	if err != nil {
		return 0, err
	}
	project.IsPublic = true
	return project.ID, nil
}

// Update rewrites the editable fields. Ownership and visibility are not
// touched here.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $2, description = $3, tech_used = $4, team_members = $5, demo_link = $6
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query,
		project.ID,
		project.Title,
		project.Description,
		project.TechUsed,
		project.TeamMembers,
		project.DemoLink,
	)
}

func (r *ProjectRepository) setPublic(ctx context.Context, db DBTX, id int64) error {
	return execAffectingOne(ctx, db, `UPDATE projects SET is_public = TRUE WHERE id = $1`, id)
}

// SetPublic marks a project as public
func (r *ProjectRepository) SetPublic(ctx context.Context, id int64) error {
	return r.setPublic(ctx, r.db, id)
}

// Delete removes a project permanently
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM projects WHERE id = $1`, id)
}

const projectColumns = `id, title, description, tech_used, team_members, demo_link, submitted_by, submitted_at, is_public`

func scanProject(row pgx.Row) (models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.TechUsed,
		&p.TeamMembers,
		&p.DemoLink,
		&p.SubmittedBy,
		&p.SubmittedAt,
		&p.IsPublic,
	)
	return p, err
}

// GetByID retrieves a project by ID regardless of visibility
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)

	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &p, nil
}

// GetAllPublic retrieves all public projects, newest first
func (r *ProjectRepository) GetAllPublic(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE is_public ORDER BY submitted_at DESC`, projectColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.Project, error) {
		return scanProject(rows)
	})
}

// GetBySubmitter retrieves every project a user has submitted, public or not,
// newest first
func (r *ProjectRepository) GetBySubmitter(ctx context.Context, userID int64) ([]models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE submitted_by = $1 ORDER BY submitted_at DESC`, projectColumns)

	return collectList(ctx, r.db, query, []any{userID}, func(rows pgx.Rows) (models.Project, error) {
		return scanProject(rows)
	})
}
