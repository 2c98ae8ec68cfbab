//go:build unit

package pgconv

import (
	"database/sql"
	"testing"
	"time"

	"roomescape/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	pd := DateToPgtype(2025, time.December, 31)
	require.True(t, pd.Valid)

	y, m, d := DateFromPgtype(pd)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.December, m)
	assert.Equal(t, 31, d)
}

func TestClockToPgtype(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		micros int64
	}{
		{"midnight", 0, 0, 0},
		{"ten thirty", 10, 30, int64(10*time.Hour+30*time.Minute) / 1000},
		{"last minute", 23, 59, int64(23*time.Hour+59*time.Minute) / 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := ClockToPgtype(tt.hour, tt.minute)
			assert.True(t, pt.Valid)
			assert.Equal(t, tt.micros, pt.Microseconds)

			h, m, err := ClockFromPgtype(pt)
			require.NoError(t, err)
			assert.Equal(t, tt.hour, h)
			assert.Equal(t, tt.minute, m)
		})
	}
}

func TestClockFromPgtype_Invalid(t *testing.T) {
	_, _, err := ClockFromPgtype(pgtype.Time{})
	assert.ErrorIs(t, err, ErrInvalidTimeValue)
}

func TestErrorClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: PgErrCodeUniqueViolation}
	fk := &pgconn.PgError{Code: PgErrCodeForeignKeyViolation}

	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(errs.Wrap(pgx.ErrNoRows, "wrapped")))
	assert.False(t, IsNoRows(unique))

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(errs.Wrap(unique, "wrapped")))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(assert.AnError))
}
