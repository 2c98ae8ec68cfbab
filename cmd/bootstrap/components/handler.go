package components

import (
	"roomescape/internal/handler"
	"roomescape/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewReservationTimeHandler,
		api.NewThemeHandler,
		api.NewMemberHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
