package usecase

import (
	"context"

	"roomescape/internal/domain/member"
	"roomescape/internal/infra"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/pkg/password"
)

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

type MemberUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (*member.Member, error)
	FindAll(ctx context.Context) ([]*member.Member, error)
}

type memberUseCaseImpl struct {
	memberRepo MemberRepository
	hasher     password.Hasher
}

func NewMemberUseCase(memberRepo MemberRepository, hasher password.Hasher) MemberUseCase {
	return &memberUseCaseImpl{
		memberRepo: memberRepo,
		hasher:     hasher,
	}
}

func (u *memberUseCaseImpl) SignUp(ctx context.Context, in SignUpInput) (*member.Member, error) {
	name, err := member.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	email, err := member.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	pw, err := member.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}

	exists, err := u.memberRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, member.ErrDuplicateEmail
	}

	hash, err := u.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	saved, err := u.memberRepo.Save(ctx, member.NewMember(name, email, hash))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.DuplicateFrom(err, member.DuplicateEmailMessage)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return saved, nil
}

func (u *memberUseCaseImpl) FindAll(ctx context.Context) ([]*member.Member, error) {
	members, err := u.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return members, nil
}
