package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/pkg/apperrors"
)

// DBTX is the querying surface shared by *pgxpool.Pool and pgx.Tx, so the
// same statement helpers run inside and outside transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all repository instances
type Repositories struct {
	UserRepository          *UserRepository
	TeamMemberRepository    *TeamMemberRepository
	EventRepository         *EventRepository
	GalleryRepository       *GalleryRepository
	ProjectRepository       *ProjectRepository
	AchievementRepository   *AchievementRepository
	AnnouncementRepository  *AnnouncementRepository
	CollaborationRepository *CollaborationRepository
	ResourceRepository      *ResourceRepository
	RegistrationRepository  *RegistrationRepository
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		TeamMemberRepository:    NewTeamMemberRepository(db),
		EventRepository:         NewEventRepository(db),
		GalleryRepository:       NewGalleryRepository(db),
		ProjectRepository:       NewProjectRepository(db),
		AchievementRepository:   NewAchievementRepository(db),
		AnnouncementRepository:  NewAnnouncementRepository(db),
		CollaborationRepository: NewCollaborationRepository(db),
		ResourceRepository:      NewResourceRepository(db),
		RegistrationRepository:  NewRegistrationRepository(db),
	}
}

// collectList runs a query and scans every row with scan. A query with no
// matches yields an empty slice, never nil, so list endpoints serialize [].
func collectList[T any](ctx context.Context, db DBTX, query string, args []any, scan func(rows pgx.Rows) (T, error)) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// execAffectingOne runs a statement that must touch exactly one row, mapping
// a zero-row result to the content-not-found sentinel
func execAffectingOne(ctx context.Context, db DBTX, query string, args ...any) error {
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}
	return nil
}

// mapNoRows converts pgx.ErrNoRows into the content-not-found sentinel
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrContentNotFound
	}
	return err
}
