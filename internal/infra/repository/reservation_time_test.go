//go:build unit

package repository

import (
	"context"
	"testing"

	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/infra"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationTimeQueries struct {
	mock.Mock
}

func (m *MockReservationTimeQueries) CreateReservationTime(ctx context.Context, db sqlc.DBTX, startAt pgtype.Time) (sqlc.ReservationTime, error) {
	args := m.Called(ctx, db, startAt)
	return args.Get(0).(sqlc.ReservationTime), args.Error(1)
}

func (m *MockReservationTimeQueries) ListReservationTimes(ctx context.Context, db sqlc.DBTX) ([]sqlc.ReservationTime, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.ReservationTime), args.Error(1)
}

func (m *MockReservationTimeQueries) GetReservationTimeByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ReservationTime, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.ReservationTime), args.Error(1)
}

func (m *MockReservationTimeQueries) DeleteReservationTime(ctx context.Context, db sqlc.DBTX, id int64) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockReservationTimeQueries) ExistsReservationTimeByStartAt(ctx context.Context, db sqlc.DBTX, startAt pgtype.Time) (bool, error) {
	args := m.Called(ctx, db, startAt)
	return args.Bool(0), args.Error(1)
}

func TestReservationTimeRepository_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		mockRow   sqlc.ReservationTime
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:    "success",
			mockRow: sqlc.ReservationTime{ID: 1, StartAt: pgconv.ClockToPgtype(13, 0)},
		},
		{
			name:      "not found",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationTimeQueries)
			mockQueries.On("GetReservationTimeByID", mock.Anything, mock.Anything, int64(1)).Return(tt.mockRow, tt.mockError)

			repo := NewReservationTimeRepository(mockQueries, new(mockDBTX))

			got, err := repo.FindByID(context.Background(), 1)

			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), got.ID())
				assert.Equal(t, "13:00", got.StartAt().String())
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationTimeRepository_Save(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockReservationTimeQueries)
		mockQueries.On("CreateReservationTime", mock.Anything, mock.Anything, pgconv.ClockToPgtype(10, 0)).
			Return(sqlc.ReservationTime{ID: 5, StartAt: pgconv.ClockToPgtype(10, 0)}, nil)

		repo := NewReservationTimeRepository(mockQueries, new(mockDBTX))
		rt, err := reservationtime.NewReservationTime("10:00")
		require.NoError(t, err)

		saved, err := repo.Save(context.Background(), rt)

		require.NoError(t, err)
		assert.Equal(t, int64(5), saved.ID())
		assert.True(t, saved.IsPersisted())
		assert.False(t, rt.IsPersisted())
		mockQueries.AssertExpectations(t)
	})

	t.Run("unique violation", func(t *testing.T) {
		mockQueries := new(MockReservationTimeQueries)
		mockQueries.On("CreateReservationTime", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.ReservationTime{}, errUniqueViolation)

		repo := NewReservationTimeRepository(mockQueries, new(mockDBTX))
		rt, err := reservationtime.NewReservationTime("10:00")
		require.NoError(t, err)

		_, err = repo.Save(context.Background(), rt)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestReservationTimeRepository_FindAll(t *testing.T) {
	mockQueries := new(MockReservationTimeQueries)
	mockQueries.On("ListReservationTimes", mock.Anything, mock.Anything).Return([]sqlc.ReservationTime{
		{ID: 1, StartAt: pgconv.ClockToPgtype(10, 0)},
		{ID: 2, StartAt: pgconv.ClockToPgtype(23, 59)},
	}, nil)

	repo := NewReservationTimeRepository(mockQueries, new(mockDBTX))

	got, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "10:00", got[0].StartAt().String())
	assert.Equal(t, "23:59", got[1].StartAt().String())
}

func TestReservationTimeRepository_DeleteByID(t *testing.T) {
	mockQueries := new(MockReservationTimeQueries)
	mockQueries.On("DeleteReservationTime", mock.Anything, mock.Anything, int64(1)).Return(errForeignKeyViolation)

	repo := NewReservationTimeRepository(mockQueries, new(mockDBTX))

	err := repo.DeleteByID(context.Background(), 1)

	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	mockQueries.AssertExpectations(t)
}

func TestReservationTimeRepository_ExistsByStartAt(t *testing.T) {
	mockQueries := new(MockReservationTimeQueries)
	mockQueries.On("ExistsReservationTimeByStartAt", mock.Anything, mock.Anything, pgconv.ClockToPgtype(9, 5)).Return(false, nil)

	repo := NewReservationTimeRepository(mockQueries, new(mockDBTX))
	startAt, err := reservationtime.NewStartAt("09:05")
	require.NoError(t, err)

	exists, err := repo.ExistsByStartAt(context.Background(), startAt)

	require.NoError(t, err)
	assert.False(t, exists)
	mockQueries.AssertExpectations(t)
}
