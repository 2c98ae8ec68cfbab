package response

import "roomescape/internal/domain/member"

// MemberResponse never carries the password hash.
type MemberResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromMember(m *member.Member) MemberResponse {
	return MemberResponse{
		ID:    m.ID(),
		Name:  m.Name().Value(),
		Email: m.Email().Value(),
	}
}

func FromMembers(ms []*member.Member) []MemberResponse {
	res := make([]MemberResponse, len(ms))
	for i, m := range ms {
		res[i] = FromMember(m)
	}
	return res
}
