//go:build e2e

package reservation_test

import (
	"context"
	"net/http"

	"roomescape/internal/domain/member"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/tests/common/builder"
	"roomescape/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

func (s *ReservationSuite) TestMembers() {
	s.Run("Normal case: sign up stores a hash and hides it", func() {
		t := s.T()
		reqBody := builder.NewMemberBuilder().BuildSignUpRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/members", reqBody)
		var created resdto.MemberResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotContains(t, w.Body.String(), "password")

		var hash string
		err := s.DB.QueryRow(context.Background(), "SELECT password_hash FROM member WHERE id = $1", created.ID).Scan(&hash)
		require.NoError(t, err)
		require.NotEqual(t, reqBody.Password, hash)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/members", reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, member.DuplicateEmailMessage)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/members", nil)
		var list []resdto.MemberResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Equal(t, []resdto.MemberResponse{created}, list)
	})
}
