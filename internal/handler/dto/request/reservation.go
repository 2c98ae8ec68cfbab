package request

import (
	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/reservationtime"
)

const InvalidThemeIDMessage = "올바르지 않은 테마입니다."

// An absent timeId or themeId fails binding; 0 is left to the lookup.
type CreateReservationRequest struct {
	Name    string `json:"name" binding:"required" example:"브라운"`
	Date    string `json:"date" binding:"required" example:"2025-05-01"`
	TimeID  *int64 `json:"timeId" binding:"required" example:"1"`
	ThemeID *int64 `json:"themeId" binding:"required" example:"1"`
}

func (CreateReservationRequest) fieldMessages() map[string]string {
	return map[string]string{
		"name":    reservation.InvalidNameMessage,
		"date":    reservation.InvalidDateMessage,
		"timeId":  reservationtime.InvalidStartAtMessage,
		"themeId": InvalidThemeIDMessage,
	}
}
