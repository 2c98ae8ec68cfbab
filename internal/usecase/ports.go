package usecase

import (
	"context"

	"roomescape/internal/domain/member"
	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/domain/theme"
)

type ReservationRepository interface {
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
	Save(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsBySlot(ctx context.Context, date reservation.Date, timeID, themeID int64) (bool, error)
	ExistsByTimeID(ctx context.Context, timeID int64) (bool, error)
	ExistsByThemeID(ctx context.Context, themeID int64) (bool, error)
	FindBookedTimeIDs(ctx context.Context, date reservation.Date, themeID int64) ([]int64, error)
}

type ReservationTimeRepository interface {
	FindAll(ctx context.Context) ([]*reservationtime.ReservationTime, error)
	FindByID(ctx context.Context, id int64) (*reservationtime.ReservationTime, error)
	Save(ctx context.Context, t *reservationtime.ReservationTime) (*reservationtime.ReservationTime, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByStartAt(ctx context.Context, startAt reservationtime.StartAt) (bool, error)
}

type ThemeRepository interface {
	FindAll(ctx context.Context) ([]*theme.Theme, error)
	FindByID(ctx context.Context, id int64) (*theme.Theme, error)
	Save(ctx context.Context, t *theme.Theme) (*theme.Theme, error)
	DeleteByID(ctx context.Context, id int64) error
}

type MemberRepository interface {
	FindAll(ctx context.Context) ([]*member.Member, error)
	Save(ctx context.Context, m *member.Member) (*member.Member, error)
	ExistsByEmail(ctx context.Context, email member.Email) (bool, error)
}
