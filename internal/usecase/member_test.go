//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"roomescape/internal/domain/member"
	"roomescape/internal/infra"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/pkg/password"
	"roomescape/internal/usecase"
	usecasemock "roomescape/tests/mock/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newMemberUseCase(t *testing.T) (*usecasemock.MockMemberRepository, usecase.MemberUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	members := usecasemock.NewMockMemberRepository(ctrl)
	return members, usecase.NewMemberUseCase(members, password.NewBcryptHasherWithCost(bcrypt.MinCost))
}

func TestMemberUseCase_SignUp(t *testing.T) {
	ctx := context.Background()
	input := usecase.SignUpInput{Name: "리니", Email: "lini@email.com", Password: "lini123"}

	t.Run("stores a bcrypt hash", func(t *testing.T) {
		members, uc := newMemberUseCase(t)
		members.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
		members.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *member.Member) (*member.Member, error) {
				return m.WithID(1), nil
			})

		got, err := uc.SignUp(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID())
		assert.NotEqual(t, "lini123", got.PasswordHash())
		assert.NoError(t, password.ComparePassword(got.PasswordHash(), "lini123"))
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			in    usecase.SignUpInput
			errIs error
		}{
			{"blank name", usecase.SignUpInput{Name: "", Email: "a@b.com", Password: "p"}, member.ErrEmptyName},
			{"bad email", usecase.SignUpInput{Name: "n", Email: "not-an-email", Password: "p"}, member.ErrInvalidEmail},
			{"blank password", usecase.SignUpInput{Name: "n", Email: "a@b.com", Password: " "}, member.ErrEmptyPassword},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, uc := newMemberUseCase(t)

				_, err := uc.SignUp(ctx, tt.in)

				assert.ErrorIs(t, err, tt.errIs)
			})
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		members, uc := newMemberUseCase(t)
		members.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := uc.SignUp(ctx, input)

		assert.ErrorIs(t, err, errs.ErrDuplicate)
		assert.EqualError(t, err, member.DuplicateEmailMessage)
	})

	t.Run("unique violation on save", func(t *testing.T) {
		members, uc := newMemberUseCase(t)
		members.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
		members.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to create member", &pgconn.PgError{Code: "23505"}))

		_, err := uc.SignUp(ctx, input)

		assert.ErrorIs(t, err, errs.ErrDuplicate)
	})
}
