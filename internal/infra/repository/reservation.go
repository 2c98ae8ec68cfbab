package repository

import (
	"context"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/infra"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservation, error)
	ListReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationsRow, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id int64) error
	ExistsReservationBySlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsReservationBySlotParams) (bool, error)
	ExistsReservationByTimeID(ctx context.Context, db sqlc.DBTX, timeID int64) (bool, error)
	ExistsReservationByThemeID(ctx context.Context, db sqlc.DBTX, themeID int64) (bool, error)
	ListBookedTimeIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedTimeIDsParams) ([]int64, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromListRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation row", err, infra.KindDBFailure)
		}
		result = append(result, res)
	}
	return result, nil
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return res.WithID(row.ID), nil
}

func (r *ReservationRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.queries.DeleteReservation(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	return nil
}

func (r *ReservationRepository) ExistsBySlot(ctx context.Context, date reservation.Date, timeID, themeID int64) (bool, error) {
	exists, err := r.queries.ExistsReservationBySlot(ctx, r.db, sqlc.ExistsReservationBySlotParams{
		Date:    converter.DateToInfra(date),
		TimeID:  timeID,
		ThemeID: themeID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation slot", err)
	}
	return exists, nil
}

func (r *ReservationRepository) ExistsByTimeID(ctx context.Context, timeID int64) (bool, error) {
	exists, err := r.queries.ExistsReservationByTimeID(ctx, r.db, timeID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservations by time", err)
	}
	return exists, nil
}

func (r *ReservationRepository) ExistsByThemeID(ctx context.Context, themeID int64) (bool, error) {
	exists, err := r.queries.ExistsReservationByThemeID(ctx, r.db, themeID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservations by theme", err)
	}
	return exists, nil
}

// FindBookedTimeIDs returns the time ids already reserved for the theme on the date.
func (r *ReservationRepository) FindBookedTimeIDs(ctx context.Context, date reservation.Date, themeID int64) ([]int64, error) {
	ids, err := r.queries.ListBookedTimeIDs(ctx, r.db, sqlc.ListBookedTimeIDsParams{
		Date:    converter.DateToInfra(date),
		ThemeID: themeID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked time ids", err)
	}
	return ids, nil
}
