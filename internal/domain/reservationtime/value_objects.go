package reservationtime

import (
	"fmt"
	"regexp"
	"strconv"

	"roomescape/internal/pkg/errs"
)

const (
	InvalidStartAtMessage   = "올바르지 않은 시간입니다."
	DuplicateStartAtMessage = "이미 같은 시간이 존재합니다."
	InUseMessage            = "해당 시간에 예약이 존재해서 삭제할 수 없습니다."
)

var (
	ErrInvalidStartAt   = errs.Validation(InvalidStartAtMessage)
	ErrDuplicateStartAt = errs.Duplicate(DuplicateStartAtMessage)
	ErrInUse            = errs.Conflict(InUseMessage)
)

var startAtPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// StartAt is a wall-clock time of day with minute precision.
type StartAt struct {
	hour   int
	minute int
}

func NewStartAt(raw string) (StartAt, error) {
	m := startAtPattern.FindStringSubmatch(raw)
	if m == nil {
		return StartAt{}, ErrInvalidStartAt
	}
	// the pattern guarantees two-digit numbers
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return StartAt{hour: hour, minute: minute}, nil
}

func StartAtOf(hour, minute int) (StartAt, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return StartAt{}, ErrInvalidStartAt
	}
	return StartAt{hour: hour, minute: minute}, nil
}

func (s StartAt) Hour() int   { return s.hour }
func (s StartAt) Minute() int { return s.minute }

func (s StartAt) String() string {
	return fmt.Sprintf("%02d:%02d", s.hour, s.minute)
}
