package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaryan/councilhub/internal/pkg/apperrors"
)

// stubRows walks a fixed value list in place of a live result set.
type stubRows struct {
	values []string
	pos    int
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Scan(dest ...any) error                       { return nil }
func (r *stubRows) Values() ([]any, error)                       { return nil, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func (r *stubRows) Next() bool {
	if r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *stubRows) current() string {
	return r.values[r.pos-1]
}

// stubDB serves canned rows and command tags through the DBTX surface.
type stubDB struct {
	rows    *stubRows
	execTag pgconn.CommandTag
	execErr error
}

func (db *stubDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return db.execTag, db.execErr
}

func (db *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.rows, nil
}

func (db *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func scanStub(rows pgx.Rows) (string, error) {
	return rows.(*stubRows).current(), nil
}

func TestCollectListEmptyResultIsNotNil(t *testing.T) {
	db := &stubDB{rows: &stubRows{}}

	items, err := collectList(context.Background(), db, "SELECT 1", nil, scanStub)
	require.NoError(t, err)
	require.NotNil(t, items, "empty listings must serialize as [], not null")
	assert.Len(t, items, 0)
}

func TestCollectListScansEveryRow(t *testing.T) {
	db := &stubDB{rows: &stubRows{values: []string{"first", "second"}}}

	items, err := collectList(context.Background(), db, "SELECT 1", nil, scanStub)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, items)
}

func TestExecAffectingOneZeroRows(t *testing.T) {
	db := &stubDB{execTag: pgconn.NewCommandTag("UPDATE 0")}

	err := execAffectingOne(context.Background(), db, "UPDATE t SET x = 1 WHERE id = $1", int64(9))
	assert.ErrorIs(t, err, apperrors.ErrContentNotFound)
}

func TestExecAffectingOneSuccess(t *testing.T) {
	db := &stubDB{execTag: pgconn.NewCommandTag("UPDATE 1")}

	err := execAffectingOne(context.Background(), db, "UPDATE t SET x = 1 WHERE id = $1", int64(9))
	assert.NoError(t, err)
}

func TestMapNoRows(t *testing.T) {
	assert.ErrorIs(t, mapNoRows(pgx.ErrNoRows), apperrors.ErrContentNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapNoRows(other))
}
