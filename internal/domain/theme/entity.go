package theme

import (
	"strings"

	"roomescape/internal/pkg/errs"
)

const InUseMessage = "해당 테마에 예약이 존재해서 삭제할 수 없습니다."

var (
	ErrInUse            = errs.Conflict(InUseMessage)
	ErrEmptyName        = errs.Validation("테마 이름은 비어 있을 수 없습니다.")
	ErrEmptyDescription = errs.Validation("테마 설명은 비어 있을 수 없습니다.")
	ErrEmptyThumbnail   = errs.Validation("테마 썸네일은 비어 있을 수 없습니다.")
)

type Theme struct {
	id          int64
	name        string
	description string
	thumbnail   string
}

func NewTheme(name, description, thumbnail string) (*Theme, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	thumbnail = strings.TrimSpace(thumbnail)

	switch {
	case name == "":
		return nil, ErrEmptyName
	case description == "":
		return nil, ErrEmptyDescription
	case thumbnail == "":
		return nil, ErrEmptyThumbnail
	}

	return &Theme{
		name:        name,
		description: description,
		thumbnail:   thumbnail,
	}, nil
}

func ReconstructTheme(id int64, name, description, thumbnail string) *Theme {
	return &Theme{
		id:          id,
		name:        name,
		description: description,
		thumbnail:   thumbnail,
	}
}

func (t *Theme) WithID(id int64) *Theme {
	return ReconstructTheme(id, t.name, t.description, t.thumbnail)
}

func (t *Theme) ID() int64           { return t.id }
func (t *Theme) Name() string        { return t.name }
func (t *Theme) Description() string { return t.description }
func (t *Theme) Thumbnail() string   { return t.thumbnail }
