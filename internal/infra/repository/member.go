package repository

import (
	"context"

	"roomescape/internal/domain/member"
	"roomescape/internal/infra"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

type MemberQueries interface {
	CreateMember(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMemberParams) (sqlc.Member, error)
	ListMembers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Member, error)
	ExistsMemberByEmail(ctx context.Context, db sqlc.DBTX, email string) (bool, error)
}

type MemberRepository struct {
	queries MemberQueries
	db      sqlc.DBTX
}

func NewMemberRepository(queries MemberQueries, db sqlc.DBTX) *MemberRepository {
	return &MemberRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]*member.Member, error) {
	rows, err := r.queries.ListMembers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list members", err)
	}

	result := make([]*member.Member, 0, len(rows))
	for _, row := range rows {
		m, err := converter.MemberFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert member row", err, infra.KindDBFailure)
		}
		result = append(result, m)
	}
	return result, nil
}

func (r *MemberRepository) Save(ctx context.Context, m *member.Member) (*member.Member, error) {
	row, err := r.queries.CreateMember(ctx, r.db, converter.MemberToInfra(m))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create member", err)
	}
	return m.WithID(row.ID), nil
}

func (r *MemberRepository) ExistsByEmail(ctx context.Context, email member.Email) (bool, error) {
	exists, err := r.queries.ExistsMemberByEmail(ctx, r.db, email.Value())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check member email", err)
	}
	return exists, nil
}
