package response

import "roomescape/internal/domain/theme"

type ThemeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

func FromTheme(t *theme.Theme) ThemeResponse {
	return ThemeResponse{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		Thumbnail:   t.Thumbnail(),
	}
}

func FromThemes(ts []*theme.Theme) []ThemeResponse {
	res := make([]ThemeResponse, len(ts))
	for i, t := range ts {
		res[i] = FromTheme(t)
	}
	return res
}
