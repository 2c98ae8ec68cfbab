package usecase

import (
	"context"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/infra"
	"roomescape/internal/pkg/errs"
)

// TimeAvailability pairs a time slot with whether it is taken for a given date and theme.
type TimeAvailability struct {
	Time   *reservationtime.ReservationTime
	Booked bool
}

type ReservationTimeUseCase interface {
	Create(ctx context.Context, startAt string) (*reservationtime.ReservationTime, error)
	FindAll(ctx context.Context) ([]*reservationtime.ReservationTime, error)
	DeleteByID(ctx context.Context, id int64) error
	FindAvailableTimes(ctx context.Context, date string, themeID int64) ([]TimeAvailability, error)
}

type reservationTimeUseCaseImpl struct {
	timeRepo        ReservationTimeRepository
	reservationRepo ReservationRepository
}

func NewReservationTimeUseCase(
	timeRepo ReservationTimeRepository,
	reservationRepo ReservationRepository,
) ReservationTimeUseCase {
	return &reservationTimeUseCaseImpl{
		timeRepo:        timeRepo,
		reservationRepo: reservationRepo,
	}
}

func (u *reservationTimeUseCaseImpl) Create(ctx context.Context, startAt string) (*reservationtime.ReservationTime, error) {
	rt, err := reservationtime.NewReservationTime(startAt)
	if err != nil {
		return nil, err
	}

	exists, err := u.timeRepo.ExistsByStartAt(ctx, rt.StartAt())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, reservationtime.ErrDuplicateStartAt
	}

	saved, err := u.timeRepo.Save(ctx, rt)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.DuplicateFrom(err, reservationtime.DuplicateStartAtMessage)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return saved, nil
}

func (u *reservationTimeUseCaseImpl) FindAll(ctx context.Context) ([]*reservationtime.ReservationTime, error) {
	times, err := u.timeRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return times, nil
}

func (u *reservationTimeUseCaseImpl) DeleteByID(ctx context.Context, id int64) error {
	inUse, err := u.reservationRepo.ExistsByTimeID(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if inUse {
		return reservationtime.ErrInUse
	}

	if err := u.timeRepo.DeleteByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.ConflictFrom(err, reservationtime.InUseMessage)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// FindAvailableTimes lists every time slot, marking the ones already booked
// for the theme on the date. The theme itself is not looked up.
func (u *reservationTimeUseCaseImpl) FindAvailableTimes(ctx context.Context, date string, themeID int64) ([]TimeAvailability, error) {
	d, err := reservation.NewDate(date)
	if err != nil {
		return nil, err
	}

	times, err := u.timeRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookedIDs, err := u.reservationRepo.FindBookedTimeIDs(ctx, d, themeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	booked := make(map[int64]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	result := make([]TimeAvailability, 0, len(times))
	for _, t := range times {
		_, ok := booked[t.ID()]
		result = append(result, TimeAvailability{Time: t, Booked: ok})
	}
	return result, nil
}
