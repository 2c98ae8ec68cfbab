package components

import (
	"roomescape/internal/infra/repository"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ReservationQueries)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		// ReservationTime
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ReservationTimeQueries)),
		),
		fx.Annotate(
			repository.NewReservationTimeRepository,
			fx.As(new(usecase.ReservationTimeRepository)),
		),
		// Theme
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ThemeQueries)),
		),
		fx.Annotate(
			repository.NewThemeRepository,
			fx.As(new(usecase.ThemeRepository)),
		),
		// Member
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.MemberQueries)),
		),
		fx.Annotate(
			repository.NewMemberRepository,
			fx.As(new(usecase.MemberRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
