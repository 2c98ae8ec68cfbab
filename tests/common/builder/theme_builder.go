//go:build unit || e2e

package builder

import (
	"roomescape/internal/domain/theme"
	reqdto "roomescape/internal/handler/dto/request"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

type ThemeBuilder struct {
	ID          int64
	Name        string
	Description string
	Thumbnail   string
}

func NewThemeBuilder() *ThemeBuilder {
	return &ThemeBuilder{
		ID:          1,
		Name:        "레벨2 탈출",
		Description: "우테코 레벨2를 탈출하는 내용입니다.",
		Thumbnail:   "https://i.pinimg.com/236x/6e/bc/46/6ebc461a94a49f9ea3b8bbe2204145d4.jpg",
	}
}

func (b *ThemeBuilder) BuildDomain() (*theme.Theme, error) {
	th, err := theme.NewTheme(b.Name, b.Description, b.Thumbnail)
	if err != nil {
		return nil, err
	}
	return th.WithID(b.ID), nil
}

func (b *ThemeBuilder) MustBuildDomain() *theme.Theme {
	th, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return th
}

func (b *ThemeBuilder) BuildInfra() sqlc.Theme {
	return sqlc.Theme{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Thumbnail:   b.Thumbnail,
	}
}

func (b *ThemeBuilder) BuildCreateRequestDTO() reqdto.CreateThemeRequest {
	return reqdto.CreateThemeRequest{
		Name:        b.Name,
		Description: b.Description,
		Thumbnail:   b.Thumbnail,
	}
}

func (b *ThemeBuilder) WithID(id int64) *ThemeBuilder {
	b.ID = id
	return b
}

func (b *ThemeBuilder) WithName(name string) *ThemeBuilder {
	b.Name = name
	return b
}
