package request

import (
	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/reservationtime"
)

type CreateReservationTimeRequest struct {
	StartAt string `json:"startAt" binding:"required" example:"10:00"`
}

func (CreateReservationTimeRequest) fieldMessages() map[string]string {
	return map[string]string{
		"startAt": reservationtime.InvalidStartAtMessage,
	}
}

type AvailableTimesQuery struct {
	Date    string `form:"date" binding:"required"`
	ThemeID int64  `form:"themeId" binding:"required"`
}

func (AvailableTimesQuery) fieldMessages() map[string]string {
	return map[string]string{
		"date":    reservation.InvalidDateMessage,
		"themeId": InvalidThemeIDMessage,
	}
}
