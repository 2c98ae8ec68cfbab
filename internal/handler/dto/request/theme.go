package request

import "roomescape/internal/domain/theme"

type CreateThemeRequest struct {
	Name        string `json:"name" binding:"required" example:"레벨2 탈출"`
	Description string `json:"description" binding:"required" example:"우테코 레벨2를 탈출하는 내용입니다."`
	Thumbnail   string `json:"thumbnail" binding:"required" example:"https://i.pinimg.com/236x/6e/bc/46/6ebc461a94a49f9ea3b8bbe2204145d4.jpg"`
}

func (CreateThemeRequest) fieldMessages() map[string]string {
	return map[string]string{
		"name":        theme.ErrEmptyName.Error(),
		"description": theme.ErrEmptyDescription.Error(),
		"thumbnail":   theme.ErrEmptyThumbnail.Error(),
	}
}
