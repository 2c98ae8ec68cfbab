package member

import (
	"regexp"
	"strings"

	"roomescape/internal/pkg/errs"
)

const DuplicateEmailMessage = "이미 가입된 이메일입니다."

var (
	ErrEmptyName     = errs.Validation("이름은 비어 있을 수 없습니다.")
	ErrInvalidEmail  = errs.Validation("올바르지 않은 이메일 형식입니다.")
	ErrEmptyPassword = errs.Validation("비밀번호는 비어 있을 수 없습니다.")

	ErrDuplicateEmail = errs.Duplicate(DuplicateEmailMessage)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Password is the plain text received at signup. It only lives until hashed.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if strings.TrimSpace(s) == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
