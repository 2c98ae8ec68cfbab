//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/reservationtime"
	"roomescape/internal/handler/api"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/handler/httperr"
	"roomescape/internal/usecase"
	"roomescape/tests/common/builder"
	"roomescape/tests/common/httptest"
	"roomescape/tests/common/testutil"
	usecasemock "roomescape/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockReservationUseCase
	handler     *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockUseCase)

	s.router.GET("/reservations", s.handler.FindAll)
	s.router.POST("/reservations", s.handler.Create)
	s.router.DELETE("/reservations/:id", s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseBinding struct {
	name      string
	mutate    func(m map[string]any)
	expectMsg string
}

// ================================================================================
// TestFindAll
// ================================================================================

func (s *ReservationHandlerTestSuite) TestFindAll() {
	url := "/reservations"

	s.Run("success: returns reservations with time and theme", func() {
		first := builder.NewReservationBuilder().MustBuildDomain()
		second := builder.NewReservationBuilder().WithID(2).WithName("솔라").WithTime(2, "11:00").MustBuildDomain()
		s.mockUseCase.EXPECT().FindAll(gomock.Any()).Return([]*reservation.Reservation{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := []resdto.ReservationResponse{resdto.FromReservation(first), resdto.FromReservation(second)}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
		s.Equal("11:00", body[1].Time.StartAt)
	})

	s.Run("success: returns empty array when nothing is booked", func() {
		s.mockUseCase.EXPECT().FindAll(gomock.Any()).Return([]*reservation.Reservation{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 500 Internal Server Error on unexpected failure", func() {
		s.mockUseCase.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, httperr.InternalErrorMessage)
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder().WithID(7)
	reqBody := b.BuildCreateRequestDTO()
	created := b.MustBuildDomain()
	wantInput := usecase.CreateReservationInput{
		Name:    reqBody.Name,
		Date:    reqBody.Date,
		TimeID:  *reqBody.TimeID,
		ThemeID: *reqBody.ThemeID,
	}

	s.Run("success: returns 201 Created with Location header", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), wantInput).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/reservations/7"})
		if diff := cmp.Diff(resdto.FromReservation(created), body); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 Bad Request with a per-field message on binding errors", func() {
		cases := []testCaseBinding{
			{name: "missing field: name", mutate: testutil.Field("name", nil), expectMsg: reservation.InvalidNameMessage},
			{name: "empty name", mutate: testutil.Field("name", ""), expectMsg: reservation.InvalidNameMessage},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectMsg: reservation.InvalidDateMessage},
			{name: "missing field: timeId", mutate: testutil.Field("timeId", nil), expectMsg: reservationtime.InvalidStartAtMessage},
			{name: "timeId is a string", mutate: testutil.Field("timeId", "abc"), expectMsg: reservationtime.InvalidStartAtMessage},
			{name: "missing field: themeId", mutate: testutil.Field("themeId", nil), expectMsg: "올바르지 않은 테마입니다."},
			{name: "date is a number", mutate: testutil.Field("date", 20250501), expectMsg: reservation.InvalidDateMessage},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request with default message on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"name":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "올바르지 않은 요청입니다.")
	})

	s.Run("error: zero ids reach the usecase and fail the lookup", func() {
		cases := []struct {
			name      string
			field     string
			input     usecase.CreateReservationInput
			returnErr error
			expectMsg string
		}{
			{
				name:      "timeId 0",
				field:     "timeId",
				input:     usecase.CreateReservationInput{Name: wantInput.Name, Date: wantInput.Date, TimeID: 0, ThemeID: wantInput.ThemeID},
				returnErr: reservation.ErrTimeNotFound,
				expectMsg: reservation.TimeNotFoundMessage,
			},
			{
				name:      "themeId 0",
				field:     "themeId",
				input:     usecase.CreateReservationInput{Name: wantInput.Name, Date: wantInput.Date, TimeID: wantInput.TimeID, ThemeID: 0},
				returnErr: reservation.ErrThemeNotFound,
				expectMsg: reservation.ThemeNotFoundMessage,
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Create(gomock.Any(), tc.input).Return(nil, tc.returnErr).Times(1)

				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(tc.field, 0))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			useCaseErr     error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "name validation", useCaseErr: reservation.ErrInvalidName, expectedStatus: http.StatusBadRequest, expectedMsg: reservation.InvalidNameMessage},
			{name: "unknown time", useCaseErr: reservation.ErrTimeNotFound, expectedStatus: http.StatusBadRequest, expectedMsg: reservation.TimeNotFoundMessage},
			{name: "unknown theme", useCaseErr: reservation.ErrThemeNotFound, expectedStatus: http.StatusBadRequest, expectedMsg: reservation.ThemeNotFoundMessage},
			{name: "past schedule", useCaseErr: reservation.ErrPastSchedule, expectedStatus: http.StatusBadRequest, expectedMsg: reservation.PastScheduleMessage},
			{name: "duplicate slot", useCaseErr: reservation.ErrDuplicateSlot, expectedStatus: http.StatusBadRequest, expectedMsg: reservation.DuplicateSlotMessage},
			{name: "database failure", useCaseErr: usecase.ErrDatabaseOperationFailed, expectedStatus: http.StatusInternalServerError, expectedMsg: httperr.InternalErrorMessage},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Create(gomock.Any(), wantInput).Return(nil, tc.useCaseErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().DeleteByID(gomock.Any(), int64(3)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/3", nil)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 400 Bad Request for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, api.InvalidIDMessage)
	})

	s.Run("error: 500 Internal Server Error on database failure", func() {
		s.mockUseCase.EXPECT().DeleteByID(gomock.Any(), int64(3)).Return(usecase.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/3", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, httperr.InternalErrorMessage)
	})
}
