package reservation

import "roomescape/internal/pkg/errs"

const (
	TimeNotFoundMessage  = "더이상 존재하지 않는 시간입니다."
	ThemeNotFoundMessage = "더이상 존재하지 않는 테마입니다."
	PastScheduleMessage  = "현재보다 이전으로 일정을 설정할 수 없습니다."
	DuplicateSlotMessage = "선택하신 테마와 일정은 이미 예약이 존재합니다."
)

var (
	ErrTimeNotFound  = errs.Reference(TimeNotFoundMessage)
	ErrThemeNotFound = errs.Reference(ThemeNotFoundMessage)
	ErrPastSchedule  = errs.PastSchedule(PastScheduleMessage)
	ErrDuplicateSlot = errs.Duplicate(DuplicateSlotMessage)
)
