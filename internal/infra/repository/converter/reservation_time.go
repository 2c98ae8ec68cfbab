package converter

import (
	"roomescape/internal/domain/reservationtime"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func StartAtToInfra(s reservationtime.StartAt) pgtype.Time {
	return pgconv.ClockToPgtype(s.Hour(), s.Minute())
}

func StartAtFromInfra(pt pgtype.Time) (reservationtime.StartAt, error) {
	hour, minute, err := pgconv.ClockFromPgtype(pt)
	if err != nil {
		return reservationtime.StartAt{}, err
	}
	return reservationtime.StartAtOf(hour, minute)
}

func ReservationTimeFromInfra(row sqlc.ReservationTime) (*reservationtime.ReservationTime, error) {
	startAt, err := StartAtFromInfra(row.StartAt)
	if err != nil {
		return nil, err
	}
	return reservationtime.ReconstructReservationTime(row.ID, startAt), nil
}
