package reservation

import (
	"time"

	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/domain/theme"
)

// Reservation books one (date, time, theme) slot for one name.
// Time and theme are referenced by identity; the copies held here are for display.
type Reservation struct {
	id    int64
	name  Name
	date  Date
	time  *reservationtime.ReservationTime
	theme *theme.Theme
}

func NewReservation(name Name, date Date, t *reservationtime.ReservationTime, th *theme.Theme) *Reservation {
	return &Reservation{
		name:  name,
		date:  date,
		time:  t,
		theme: th,
	}
}

func ReconstructReservation(id int64, name Name, date Date, t *reservationtime.ReservationTime, th *theme.Theme) *Reservation {
	return &Reservation{
		id:    id,
		name:  name,
		date:  date,
		time:  t,
		theme: th,
	}
}

func (r *Reservation) WithID(id int64) *Reservation {
	return ReconstructReservation(id, r.name, r.date, r.time, r.theme)
}

// ScheduledAt is the start of the booked slot in now's location.
func (r *Reservation) ScheduledAt(loc *time.Location) time.Time {
	startAt := r.time.StartAt()
	return r.date.At(startAt.Hour(), startAt.Minute(), loc)
}

// IsAfter reports whether the slot starts strictly after now.
func (r *Reservation) IsAfter(now time.Time) bool {
	return r.ScheduledAt(now.Location()).After(now)
}

func (r *Reservation) ID() int64                              { return r.id }
func (r *Reservation) Name() Name                             { return r.name }
func (r *Reservation) Date() Date                             { return r.date }
func (r *Reservation) Time() *reservationtime.ReservationTime { return r.time }
func (r *Reservation) Theme() *theme.Theme                    { return r.theme }
func (r *Reservation) TimeID() int64                          { return r.time.ID() }
func (r *Reservation) ThemeID() int64                         { return r.theme.ID() }
