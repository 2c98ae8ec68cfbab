package converter

import (
	"roomescape/internal/domain/member"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

func MemberToInfra(m *member.Member) sqlc.CreateMemberParams {
	return sqlc.CreateMemberParams{
		Name:         m.Name().Value(),
		Email:        m.Email().Value(),
		PasswordHash: m.PasswordHash(),
	}
}

func MemberFromInfra(row sqlc.Member) (*member.Member, error) {
	name, err := member.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	email, err := member.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	return member.ReconstructMember(row.ID, name, email, row.PasswordHash), nil
}
