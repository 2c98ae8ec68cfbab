package response

import (
	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/usecase"
)

type ReservationTimeResponse struct {
	ID      int64  `json:"id"`
	StartAt string `json:"startAt"`
}

func FromReservationTime(t *reservationtime.ReservationTime) ReservationTimeResponse {
	return ReservationTimeResponse{
		ID:      t.ID(),
		StartAt: t.StartAt().String(),
	}
}

func FromReservationTimes(ts []*reservationtime.ReservationTime) []ReservationTimeResponse {
	res := make([]ReservationTimeResponse, len(ts))
	for i, t := range ts {
		res[i] = FromReservationTime(t)
	}
	return res
}

type AvailableTimeResponse struct {
	ID      int64  `json:"id"`
	StartAt string `json:"startAt"`
	Booked  bool   `json:"booked"`
}

func FromTimeAvailabilities(items []usecase.TimeAvailability) []AvailableTimeResponse {
	res := make([]AvailableTimeResponse, len(items))
	for i, it := range items {
		res[i] = AvailableTimeResponse{
			ID:      it.Time.ID(),
			StartAt: it.Time.StartAt().String(),
			Booked:  it.Booked,
		}
	}
	return res
}
