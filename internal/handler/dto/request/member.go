package request

import "roomescape/internal/domain/member"

type SignUpRequest struct {
	Name     string `json:"name" binding:"required" example:"리니"`
	Email    string `json:"email" binding:"required" example:"lini@email.com"`
	Password string `json:"password" binding:"required" example:"lini123"`
}

func (SignUpRequest) fieldMessages() map[string]string {
	return map[string]string{
		"name":     member.ErrEmptyName.Error(),
		"email":    member.ErrInvalidEmail.Error(),
		"password": member.ErrEmptyPassword.Error(),
	}
}
