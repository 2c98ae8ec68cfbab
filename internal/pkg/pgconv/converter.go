package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	PgErrCodeUniqueViolation     = "23505"
	PgErrCodeForeignKeyViolation = "23503"
)

var ErrInvalidTimeValue = errors.New("invalid pgtype.Time value")

const microsPerMinute = int64(time.Minute / time.Microsecond)

func DateToPgtype(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) (year int, month time.Month, day int) {
	return pd.Time.Date()
}

// ClockToPgtype encodes a time of day with minute precision.
func ClockToPgtype(hour, minute int) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(hour*60+minute) * microsPerMinute,
		Valid:        true,
	}
}

func ClockFromPgtype(pt pgtype.Time) (hour, minute int, err error) {
	if !pt.Valid {
		return 0, 0, ErrInvalidTimeValue
	}
	minutes := pt.Microseconds / microsPerMinute
	return int(minutes / 60), int(minutes % 60), nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func IsPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func IsUniqueViolation(err error) bool {
	return IsPgErrCode(err, PgErrCodeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return IsPgErrCode(err, PgErrCodeForeignKeyViolation)
}
