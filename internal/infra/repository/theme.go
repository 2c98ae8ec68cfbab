package repository

import (
	"context"

	"roomescape/internal/domain/theme"
	"roomescape/internal/infra"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

type ThemeQueries interface {
	CreateTheme(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateThemeParams) (sqlc.Theme, error)
	ListThemes(ctx context.Context, db sqlc.DBTX) ([]sqlc.Theme, error)
	GetThemeByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Theme, error)
	DeleteTheme(ctx context.Context, db sqlc.DBTX, id int64) error
}

type ThemeRepository struct {
	queries ThemeQueries
	db      sqlc.DBTX
}

func NewThemeRepository(queries ThemeQueries, db sqlc.DBTX) *ThemeRepository {
	return &ThemeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ThemeRepository) FindAll(ctx context.Context) ([]*theme.Theme, error) {
	rows, err := r.queries.ListThemes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list themes", err)
	}

	result := make([]*theme.Theme, 0, len(rows))
	for _, row := range rows {
		result = append(result, converter.ThemeFromInfra(row))
	}
	return result, nil
}

func (r *ThemeRepository) FindByID(ctx context.Context, id int64) (*theme.Theme, error) {
	row, err := r.queries.GetThemeByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find theme", err)
	}
	return converter.ThemeFromInfra(row), nil
}

func (r *ThemeRepository) Save(ctx context.Context, t *theme.Theme) (*theme.Theme, error) {
	row, err := r.queries.CreateTheme(ctx, r.db, converter.ThemeToInfra(t))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create theme", err)
	}
	return t.WithID(row.ID), nil
}

func (r *ThemeRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.queries.DeleteTheme(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete theme", err)
	}
	return nil
}
