package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/app/models"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *pgxpool.Pool
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *pgxpool.Pool) *TeamMemberRepository {
	return &TeamMemberRepository{
		db: db,
	}
}

func (r *TeamMemberRepository) insert(ctx context.Context, db DBTX, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (name, role, department, photo, is_public)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id
	`

	return db.QueryRow(ctx, query, member.Name, member.Role, member.Department, member.Photo).Scan(&member.ID)
}

// Insert creates a new team member in draft state
func (r *TeamMemberRepository) Insert(ctx context.Context, member *models.TeamMember) (int64, error) {
	if err := r.insert(ctx, r.db, member); err != nil {
		return 0, err
	}
	return member.ID, nil
}

// InsertPublished creates a team member and publishes it in one transaction
func (r *TeamMemberRepository) InsertPublished(ctx context.Context, member *models.TeamMember) (int64, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.insert(ctx, tx, member); err != nil {
			return err
		}
		return r.setPublic(ctx, tx, member.ID)
	})
	if err != nil {
		return 0, err
	}
	member.IsPublic = true
	return member.ID, nil
}

// Update rewrites the editable fields. Visibility is not touched here.
func (r *TeamMemberRepository) Update(ctx context.Context, member *models.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, role = $3, department = $4, photo = $5
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query, member.ID, member.Name, member.Role, member.Department, member.Photo)
}

func (r *TeamMemberRepository) setPublic(ctx context.Context, db DBTX, id int64) error {
	return execAffectingOne(ctx, db, `UPDATE team_members SET is_public = TRUE WHERE id = $1`, id)
}

// SetPublic marks a team member as public
func (r *TeamMemberRepository) SetPublic(ctx context.Context, id int64) error {
	return r.setPublic(ctx, r.db, id)
}

// Delete removes a team member permanently
func (r *TeamMemberRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM team_members WHERE id = $1`, id)
}

func scanTeamMember(row pgx.Row) (models.TeamMember, error) {
	var m models.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Department, &m.Photo, &m.IsPublic)
	return m, err
}

const teamMemberColumns = `id, name, role, department, photo, is_public`

// GetByID retrieves a team member by ID regardless of visibility
func (r *TeamMemberRepository) GetByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM team_members WHERE id = $1`, teamMemberColumns)

	m, err := scanTeamMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &m, nil
}

// GetAllPublic retrieves all public team members in insertion order
func (r *TeamMemberRepository) GetAllPublic(ctx context.Context) ([]models.TeamMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM team_members WHERE is_public ORDER BY id`, teamMemberColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.TeamMember, error) {
		return scanTeamMember(rows)
	})
}

// GetPublicByRole retrieves public team members holding the given role
func (r *TeamMemberRepository) GetPublicByRole(ctx context.Context, role string) ([]models.TeamMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM team_members WHERE is_public AND role = $1 ORDER BY id`, teamMemberColumns)

	return collectList(ctx, r.db, query, []any{role}, func(rows pgx.Rows) (models.TeamMember, error) {
		return scanTeamMember(rows)
	})
}

// GetPublicByDepartment retrieves public team members of a department
func (r *TeamMemberRepository) GetPublicByDepartment(ctx context.Context, department string) ([]models.TeamMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM team_members WHERE is_public AND department = $1 ORDER BY id`, teamMemberColumns)

	return collectList(ctx, r.db, query, []any{department}, func(rows pgx.Rows) (models.TeamMember, error) {
		return scanTeamMember(rows)
	})
}
