package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/app/models"
)

// EventRepository handles database operations for events. Photos are stored
// as an ordered text array of blob refs; the order is display order and the
// first entry is the thumbnail.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func (r *EventRepository) insert(ctx context.Context, db DBTX, event *models.Event) error {
	query := `
		INSERT INTO events (name, date, description, is_past, outcomes, registration_link, photos, poster, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
		RETURNING id
	`

	return db.QueryRow(ctx, query,
		event.Name,
		event.Date,
		event.Description,
		event.IsPast,
		event.Outcomes,
		event.RegistrationLink,
		event.Photos,
		event.Poster,
	).Scan(&event.ID)
}

// Insert creates a new event in draft state
func (r *EventRepository) Insert(ctx context.Context, event *models.Event) (int64, error) {
	if err := r.insert(ctx, r.db, event); err != nil {
		return 0, err
	}
	return event.ID, nil
}

// InsertPublished creates an event and publishes it in one transaction
func (r *EventRepository) InsertPublished(ctx context.Context, event *models.Event) (int64, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.insert(ctx, tx, event); err != nil {
			return err
		}
		return r.setPublic(ctx, tx, event.ID)
	})
	if err != nil {
		return 0, err
	}
	event.IsPublic = true
	return event.ID, nil
}

// Update rewrites the editable fields. Visibility is not touched here.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET name = $2, date = $3, description = $4, is_past = $5, outcomes = $6,
		    registration_link = $7, photos = $8, poster = $9
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query,
		event.ID,
		event.Name,
		event.Date,
		event.Description,
		event.IsPast,
		event.Outcomes,
		event.RegistrationLink,
		event.Photos,
		event.Poster,
	)
}

func (r *EventRepository) setPublic(ctx context.Context, db DBTX, id int64) error {
	return execAffectingOne(ctx, db, `UPDATE events SET is_public = TRUE WHERE id = $1`, id)
}

// SetPublic marks an event as public
func (r *EventRepository) SetPublic(ctx context.Context, id int64) error {
	return r.setPublic(ctx, r.db, id)
}

// Delete removes an event permanently
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM events WHERE id = $1`, id)
}

const eventColumns = `id, name, date, description, is_past, outcomes, registration_link, photos, poster, is_public`

func scanEvent(row pgx.Row) (models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Date,
		&e.Description,
		&e.IsPast,
		&e.Outcomes,
		&e.RegistrationLink,
		&e.Photos,
		&e.Poster,
		&e.IsPublic,
	)
	return e, err
}

// GetByID retrieves an event by ID regardless of visibility
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	e, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &e, nil
}

// GetPublicUpcoming retrieves public upcoming events, soonest first
func (r *EventRepository) GetPublicUpcoming(ctx context.Context) ([]models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE is_public AND NOT is_past ORDER BY date`, eventColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.Event, error) {
		return scanEvent(rows)
	})
}

// GetPublicPast retrieves public past events, most recent first
func (r *EventRepository) GetPublicPast(ctx context.Context) ([]models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE is_public AND is_past ORDER BY date DESC`, eventColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.Event, error) {
		return scanEvent(rows)
	})
}
