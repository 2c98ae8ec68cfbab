//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"roomescape/internal/domain/theme"
	"roomescape/internal/handler/api"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/usecase"
	"roomescape/tests/common/builder"
	"roomescape/tests/common/httptest"
	"roomescape/tests/common/testutil"
	usecasemock "roomescape/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ThemeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockThemeUseCase
	handler     *api.ThemeHandler
}

func (s *ThemeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockThemeUseCase(s.mockCtrl)
	s.handler = api.NewThemeHandler(s.mockUseCase)

	s.router.GET("/themes", s.handler.FindAll)
	s.router.POST("/themes", s.handler.Create)
	s.router.DELETE("/themes/:id", s.handler.Delete)
}

func (s *ThemeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestThemeHandlerSuite(t *testing.T) {
	suite.Run(t, new(ThemeHandlerTestSuite))
}

func (s *ThemeHandlerTestSuite) TestFindAll() {
	s.Run("success: returns theme list", func() {
		th := builder.NewThemeBuilder().MustBuildDomain()
		s.mockUseCase.EXPECT().FindAll(gomock.Any()).Return([]*theme.Theme{th}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/themes", nil)

		var body []resdto.ThemeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.ThemeResponse{resdto.FromTheme(th)}, body)
	})
}

func (s *ThemeHandlerTestSuite) TestCreate() {
	url := "/themes"
	b := builder.NewThemeBuilder().WithID(5)
	reqBody := b.BuildCreateRequestDTO()
	wantInput := usecase.CreateThemeInput{
		Name:        reqBody.Name,
		Description: reqBody.Description,
		Thumbnail:   reqBody.Thumbnail,
	}

	s.Run("success: returns 201 Created with Location header", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), wantInput).Return(b.MustBuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ThemeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(5), body.ID)
		s.Equal(reqBody.Name, body.Name)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/themes/5"})
	})

	s.Run("error: 400 Bad Request with a per-field message", func() {
		cases := []testCaseBinding{
			{name: "missing field: name", mutate: testutil.Field("name", nil), expectMsg: theme.ErrEmptyName.Error()},
			{name: "missing field: description", mutate: testutil.Field("description", nil), expectMsg: theme.ErrEmptyDescription.Error()},
			{name: "missing field: thumbnail", mutate: testutil.Field("thumbnail", nil), expectMsg: theme.ErrEmptyThumbnail.Error()},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	s.Run("error: blank name is rejected by the usecase", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", "   "))
		in := wantInput
		in.Name = "   "
		s.mockUseCase.EXPECT().Create(gomock.Any(), in).Return(nil, theme.ErrEmptyName).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, theme.ErrEmptyName.Error())
	})
}

func (s *ThemeHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().DeleteByID(gomock.Any(), int64(2)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/themes/2", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when the theme is in use", func() {
		s.mockUseCase.EXPECT().DeleteByID(gomock.Any(), int64(2)).Return(theme.ErrInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/themes/2", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, theme.InUseMessage)
	})
}
