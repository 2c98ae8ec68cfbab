package converter

import (
	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/domain/theme"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		Name:    res.Name().String(),
		Date:    DateToInfra(res.Date()),
		TimeID:  res.TimeID(),
		ThemeID: res.ThemeID(),
	}
}

func DateToInfra(d reservation.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Year(), d.Month(), d.Day())
}

func DateFromInfra(pd pgtype.Date) reservation.Date {
	return reservation.DateOf(pgconv.DateFromPgtype(pd))
}

func ReservationFromListRow(row sqlc.ListReservationsRow) (*reservation.Reservation, error) {
	name, err := reservation.NewName(row.Name)
	if err != nil {
		return nil, err
	}

	startAt, err := StartAtFromInfra(row.TimeStartAt)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		name,
		DateFromInfra(row.Date),
		reservationtime.ReconstructReservationTime(row.TimeID, startAt),
		theme.ReconstructTheme(row.ThemeID, row.ThemeName, row.ThemeDescription, row.ThemeThumbnail),
	), nil
}
