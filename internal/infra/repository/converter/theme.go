package converter

import (
	"roomescape/internal/domain/theme"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

func ThemeToInfra(t *theme.Theme) sqlc.CreateThemeParams {
	return sqlc.CreateThemeParams{
		Name:        t.Name(),
		Description: t.Description(),
		Thumbnail:   t.Thumbnail(),
	}
}

func ThemeFromInfra(row sqlc.Theme) *theme.Theme {
	return theme.ReconstructTheme(row.ID, row.Name, row.Description, row.Thumbnail)
}
