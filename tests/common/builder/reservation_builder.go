//go:build unit || e2e

package builder

import (
	"time"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/domain/theme"
	reqdto "roomescape/internal/handler/dto/request"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"
)

type ReservationBuilder struct {
	ID      int64
	Name    string
	Date    string
	TimeID  int64
	StartAt string
	ThemeID int64
	Theme   *ThemeBuilder
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:      1,
		Name:    "브라운",
		Date:    time.Now().AddDate(0, 0, 7).Format(time.DateOnly),
		TimeID:  1,
		StartAt: "10:00",
		ThemeID: 1,
		Theme:   NewThemeBuilder(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	name, err := reservation.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	date, err := reservation.NewDate(r.Date)
	if err != nil {
		return nil, err
	}
	startAt, err := reservationtime.NewStartAt(r.StartAt)
	if err != nil {
		return nil, err
	}
	t := reservationtime.ReconstructReservationTime(r.TimeID, startAt)
	th := r.buildTheme()
	return reservation.ReconstructReservation(r.ID, name, date, t, th), nil
}

// MustBuildDomain panics on invalid builder state; use only with valid fixtures.
func (r *ReservationBuilder) MustBuildDomain() *reservation.Reservation {
	res, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ReservationBuilder) BuildInfra() sqlc.ListReservationsRow {
	date, _ := time.Parse(time.DateOnly, r.Date)
	hour, minute := clockOf(r.StartAt)
	th := r.buildTheme()
	return sqlc.ListReservationsRow{
		ID:               r.ID,
		Name:             r.Name,
		Date:             pgconv.DateToPgtype(date.Year(), date.Month(), date.Day()),
		TimeID:           r.TimeID,
		TimeStartAt:      pgconv.ClockToPgtype(hour, minute),
		ThemeID:          r.ThemeID,
		ThemeName:        th.Name(),
		ThemeDescription: th.Description(),
		ThemeThumbnail:   th.Thumbnail(),
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	timeID, themeID := r.TimeID, r.ThemeID
	return reqdto.CreateReservationRequest{
		Name:    r.Name,
		Date:    r.Date,
		TimeID:  &timeID,
		ThemeID: &themeID,
	}
}

func (r *ReservationBuilder) buildTheme() *theme.Theme {
	return theme.ReconstructTheme(r.ThemeID, r.Theme.Name, r.Theme.Description, r.Theme.Thumbnail)
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithName(name string) *ReservationBuilder {
	r.Name = name
	return r
}

func (r *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithTime(id int64, startAt string) *ReservationBuilder {
	r.TimeID = id
	r.StartAt = startAt
	return r
}

func (r *ReservationBuilder) WithThemeID(id int64) *ReservationBuilder {
	r.ThemeID = id
	return r
}

func (r *ReservationBuilder) AsPast() *ReservationBuilder {
	r.Date = time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	return r
}
