package repository

import (
	"context"

	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/infra"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationTimeQueries interface {
	CreateReservationTime(ctx context.Context, db sqlc.DBTX, startAt pgtype.Time) (sqlc.ReservationTime, error)
	ListReservationTimes(ctx context.Context, db sqlc.DBTX) ([]sqlc.ReservationTime, error)
	GetReservationTimeByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ReservationTime, error)
	DeleteReservationTime(ctx context.Context, db sqlc.DBTX, id int64) error
	ExistsReservationTimeByStartAt(ctx context.Context, db sqlc.DBTX, startAt pgtype.Time) (bool, error)
}

type ReservationTimeRepository struct {
	queries ReservationTimeQueries
	db      sqlc.DBTX
}

func NewReservationTimeRepository(queries ReservationTimeQueries, db sqlc.DBTX) *ReservationTimeRepository {
	return &ReservationTimeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationTimeRepository) FindAll(ctx context.Context) ([]*reservationtime.ReservationTime, error) {
	rows, err := r.queries.ListReservationTimes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation times", err)
	}

	result := make([]*reservationtime.ReservationTime, 0, len(rows))
	for _, row := range rows {
		t, err := converter.ReservationTimeFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation time row", err, infra.KindDBFailure)
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *ReservationTimeRepository) FindByID(ctx context.Context, id int64) (*reservationtime.ReservationTime, error) {
	row, err := r.queries.GetReservationTimeByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation time", err)
	}

	t, err := converter.ReservationTimeFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation time row", err, infra.KindDBFailure)
	}
	return t, nil
}

func (r *ReservationTimeRepository) Save(ctx context.Context, t *reservationtime.ReservationTime) (*reservationtime.ReservationTime, error) {
	row, err := r.queries.CreateReservationTime(ctx, r.db, converter.StartAtToInfra(t.StartAt()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation time", err)
	}
	return t.WithID(row.ID), nil
}

func (r *ReservationTimeRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.queries.DeleteReservationTime(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete reservation time", err)
	}
	return nil
}

func (r *ReservationTimeRepository) ExistsByStartAt(ctx context.Context, startAt reservationtime.StartAt) (bool, error) {
	exists, err := r.queries.ExistsReservationTimeByStartAt(ctx, r.db, converter.StartAtToInfra(startAt))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation time", err)
	}
	return exists, nil
}
