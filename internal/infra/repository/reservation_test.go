//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/domain/theme"
	"roomescape/internal/infra"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationQueries struct {
	mock.Mock
}

func (m *MockReservationQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservation, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservation), args.Error(1)
}

func (m *MockReservationQueries) ListReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationsRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.ListReservationsRow), args.Error(1)
}

func (m *MockReservationQueries) DeleteReservation(ctx context.Context, db sqlc.DBTX, id int64) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockReservationQueries) ExistsReservationBySlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsReservationBySlotParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationQueries) ExistsReservationByTimeID(ctx context.Context, db sqlc.DBTX, timeID int64) (bool, error) {
	args := m.Called(ctx, db, timeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationQueries) ExistsReservationByThemeID(ctx context.Context, db sqlc.DBTX, themeID int64) (bool, error) {
	args := m.Called(ctx, db, themeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationQueries) ListBookedTimeIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedTimeIDsParams) ([]int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]int64), args.Error(1)
}

func newTestReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	name, err := reservation.NewName("브라운")
	require.NoError(t, err)
	startAt, err := reservationtime.StartAtOf(10, 0)
	require.NoError(t, err)
	return reservation.NewReservation(
		name,
		reservation.DateOf(2025, time.May, 1),
		reservationtime.ReconstructReservationTime(1, startAt),
		theme.ReconstructTheme(2, "레벨2 탈출", "우테코 레벨2를 탈출하는 내용입니다.", "https://example.com/thumb.png"),
	)
}

func TestReservationRepository_Save(t *testing.T) {
	expectedParams := sqlc.CreateReservationParams{
		Name:    "브라운",
		Date:    pgconv.DateToPgtype(2025, time.May, 1),
		TimeID:  1,
		ThemeID: 2,
	}

	tests := []struct {
		name      string
		mockRow   sqlc.Reservation
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:    "success",
			mockRow: sqlc.Reservation{ID: 10},
		},
		{
			name:      "unique violation",
			mockError: errUniqueViolation,
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "foreign key violation",
			mockError: errForeignKeyViolation,
			wantKind:  infra.KindForeignKeyViolated,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationQueries)
			mockQueries.On("CreateReservation", mock.Anything, mock.Anything, expectedParams).Return(tt.mockRow, tt.mockError)

			repo := NewReservationRepository(mockQueries, new(mockDBTX))

			saved, err := repo.Save(context.Background(), newTestReservation(t))

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, saved)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(10), saved.ID())
				assert.Equal(t, "브라운", saved.Name().String())
				assert.Equal(t, int64(1), saved.TimeID())
				assert.Equal(t, int64(2), saved.ThemeID())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_FindAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("ListReservations", mock.Anything, mock.Anything).Return([]sqlc.ListReservationsRow{
			{
				ID:               1,
				Name:             "브라운",
				Date:             pgconv.DateToPgtype(2025, time.May, 1),
				TimeID:           3,
				TimeStartAt:      pgconv.ClockToPgtype(10, 30),
				ThemeID:          4,
				ThemeName:        "레벨2 탈출",
				ThemeDescription: "desc",
				ThemeThumbnail:   "thumb",
			},
		}, nil)

		repo := NewReservationRepository(mockQueries, new(mockDBTX))

		got, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID())
		assert.Equal(t, "2025-05-01", got[0].Date().String())
		assert.Equal(t, int64(3), got[0].Time().ID())
		assert.Equal(t, "10:30", got[0].Time().StartAt().String())
		assert.Equal(t, "레벨2 탈출", got[0].Theme().Name())
		mockQueries.AssertExpectations(t)
	})

	t.Run("invalid stored time", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("ListReservations", mock.Anything, mock.Anything).Return([]sqlc.ListReservationsRow{
			{ID: 1, Name: "브라운", Date: pgconv.DateToPgtype(2025, time.May, 1)},
		}, nil)

		repo := NewReservationRepository(mockQueries, new(mockDBTX))

		got, err := repo.FindAll(context.Background())

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("ListReservations", mock.Anything, mock.Anything).Return([]sqlc.ListReservationsRow(nil), assert.AnError)

		repo := NewReservationRepository(mockQueries, new(mockDBTX))

		_, err := repo.FindAll(context.Background())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestReservationRepository_FindBookedTimeIDs(t *testing.T) {
	mockQueries := new(MockReservationQueries)
	mockQueries.On("ListBookedTimeIDs", mock.Anything, mock.Anything, sqlc.ListBookedTimeIDsParams{
		Date:    pgconv.DateToPgtype(2025, time.May, 1),
		ThemeID: 2,
	}).Return([]int64{1, 3}, nil)

	repo := NewReservationRepository(mockQueries, new(mockDBTX))

	ids, err := repo.FindBookedTimeIDs(context.Background(), reservation.DateOf(2025, time.May, 1), 2)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
	mockQueries.AssertExpectations(t)
}

func TestReservationRepository_ExistsBySlot(t *testing.T) {
	mockQueries := new(MockReservationQueries)
	mockQueries.On("ExistsReservationBySlot", mock.Anything, mock.Anything, sqlc.ExistsReservationBySlotParams{
		Date:    pgconv.DateToPgtype(2025, time.May, 1),
		TimeID:  1,
		ThemeID: 2,
	}).Return(true, nil)

	repo := NewReservationRepository(mockQueries, new(mockDBTX))

	exists, err := repo.ExistsBySlot(context.Background(), reservation.DateOf(2025, time.May, 1), 1, 2)

	require.NoError(t, err)
	assert.True(t, exists)
	mockQueries.AssertExpectations(t)
}

func TestReservationRepository_DeleteByID(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationQueries)
			mockQueries.On("DeleteReservation", mock.Anything, mock.Anything, int64(7)).Return(tt.mockError)

			repo := NewReservationRepository(mockQueries, new(mockDBTX))

			err := repo.DeleteByID(context.Background(), 7)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
