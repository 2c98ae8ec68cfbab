package usecase

import (
	"context"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/domain/theme"
	"roomescape/internal/infra"
	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/errs"
)

type CreateReservationInput struct {
	Name    string
	Date    string
	TimeID  int64
	ThemeID int64
}

type ReservationUseCase interface {
	Create(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error)
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
	DeleteByID(ctx context.Context, id int64) error
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	timeRepo        ReservationTimeRepository
	themeRepo       ThemeRepository
	clock           clock.Clock
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	timeRepo ReservationTimeRepository,
	themeRepo ThemeRepository,
	clock clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		timeRepo:        timeRepo,
		themeRepo:       themeRepo,
		clock:           clock,
	}
}

// Create checks input, references, schedule and slot availability, in that order.
func (u *reservationUseCaseImpl) Create(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error) {
	name, err := reservation.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	date, err := reservation.NewDate(in.Date)
	if err != nil {
		return nil, err
	}

	rt, err := u.findTime(ctx, in.TimeID)
	if err != nil {
		return nil, err
	}
	th, err := u.findTheme(ctx, in.ThemeID)
	if err != nil {
		return nil, err
	}

	res := reservation.NewReservation(name, date, rt, th)
	if !res.IsAfter(u.clock.Now()) {
		return nil, reservation.ErrPastSchedule
	}

	booked, err := u.reservationRepo.ExistsBySlot(ctx, date, rt.ID(), th.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if booked {
		return nil, reservation.ErrDuplicateSlot
	}

	saved, err := u.reservationRepo.Save(ctx, res)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.DuplicateFrom(err, reservation.DuplicateSlotMessage)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return saved, nil
}

func (u *reservationUseCaseImpl) findTime(ctx context.Context, id int64) (*reservationtime.ReservationTime, error) {
	rt, err := u.timeRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.ErrTimeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rt, nil
}

func (u *reservationUseCaseImpl) findTheme(ctx context.Context, id int64) (*theme.Theme, error) {
	th, err := u.themeRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.ErrThemeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return th, nil
}

func (u *reservationUseCaseImpl) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	reservations, err := u.reservationRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reservations, nil
}

// DeleteByID succeeds when nothing matches the id.
func (u *reservationUseCaseImpl) DeleteByID(ctx context.Context, id int64) error {
	if err := u.reservationRepo.DeleteByID(ctx, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
