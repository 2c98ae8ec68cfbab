package components

import (
	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/password"
	"roomescape/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewReservationUseCase,
		usecase.NewReservationTimeUseCase,
		usecase.NewThemeUseCase,
		usecase.NewMemberUseCase,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewBcryptHasher,
)
