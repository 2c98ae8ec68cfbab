package usecase

import (
	"context"

	"roomescape/internal/domain/theme"
	"roomescape/internal/infra"
	"roomescape/internal/pkg/errs"
)

type CreateThemeInput struct {
	Name        string
	Description string
	Thumbnail   string
}

type ThemeUseCase interface {
	Create(ctx context.Context, in CreateThemeInput) (*theme.Theme, error)
	FindAll(ctx context.Context) ([]*theme.Theme, error)
	DeleteByID(ctx context.Context, id int64) error
}

type themeUseCaseImpl struct {
	themeRepo       ThemeRepository
	reservationRepo ReservationRepository
}

func NewThemeUseCase(themeRepo ThemeRepository, reservationRepo ReservationRepository) ThemeUseCase {
	return &themeUseCaseImpl{
		themeRepo:       themeRepo,
		reservationRepo: reservationRepo,
	}
}

func (u *themeUseCaseImpl) Create(ctx context.Context, in CreateThemeInput) (*theme.Theme, error) {
	th, err := theme.NewTheme(in.Name, in.Description, in.Thumbnail)
	if err != nil {
		return nil, err
	}

	saved, err := u.themeRepo.Save(ctx, th)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return saved, nil
}

func (u *themeUseCaseImpl) FindAll(ctx context.Context) ([]*theme.Theme, error) {
	themes, err := u.themeRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return themes, nil
}

func (u *themeUseCaseImpl) DeleteByID(ctx context.Context, id int64) error {
	inUse, err := u.reservationRepo.ExistsByThemeID(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if inUse {
		return theme.ErrInUse
	}

	if err := u.themeRepo.DeleteByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.ConflictFrom(err, theme.InUseMessage)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
