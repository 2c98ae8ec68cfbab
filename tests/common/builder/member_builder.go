//go:build unit || e2e

package builder

import (
	"roomescape/internal/domain/member"
	reqdto "roomescape/internal/handler/dto/request"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

type MemberBuilder struct {
	ID           int64
	Name         string
	Email        string
	Password     string
	PasswordHash string
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		ID:           1,
		Name:         "리니",
		Email:        "lini@email.com",
		Password:     "password123",
		PasswordHash: testPasswordHash,
	}
}

func (b *MemberBuilder) BuildDomain() (*member.Member, error) {
	name, err := member.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	email, err := member.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return member.ReconstructMember(b.ID, name, email, b.PasswordHash), nil
}

func (b *MemberBuilder) MustBuildDomain() *member.Member {
	m, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return m
}

func (b *MemberBuilder) BuildInfra() sqlc.Member {
	return sqlc.Member{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
	}
}

func (b *MemberBuilder) BuildSignUpRequestDTO() reqdto.SignUpRequest {
	return reqdto.SignUpRequest{
		Name:     b.Name,
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *MemberBuilder) WithID(id int64) *MemberBuilder {
	b.ID = id
	return b
}

func (b *MemberBuilder) WithEmail(email string) *MemberBuilder {
	b.Email = email
	return b
}
