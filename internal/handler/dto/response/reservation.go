package response

import (
	"roomescape/internal/domain/reservation"
)

type ReservationResponse struct {
	ID    int64                   `json:"id"`
	Name  string                  `json:"name"`
	Date  string                  `json:"date"`
	Time  ReservationTimeResponse `json:"time"`
	Theme ThemeResponse           `json:"theme"`
}

func FromReservation(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:    r.ID(),
		Name:  r.Name().String(),
		Date:  r.Date().String(),
		Time:  FromReservationTime(r.Time()),
		Theme: FromTheme(r.Theme()),
	}
}

func FromReservations(rs []*reservation.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, len(rs))
	for i, r := range rs {
		res[i] = FromReservation(r)
	}
	return res
}
