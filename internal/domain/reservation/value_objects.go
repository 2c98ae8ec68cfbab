package reservation

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"roomescape/internal/pkg/errs"
)

const (
	MinNameLength = 1
	MaxNameLength = 5
)

var (
	InvalidNameMessage = fmt.Sprintf("이름은 %d자 이상, %d자 이하여야 합니다.", MinNameLength, MaxNameLength)
	InvalidDateMessage = "올바르지 않은 날짜입니다."
)

var (
	ErrInvalidName = errs.Validation(InvalidNameMessage)
	ErrInvalidDate = errs.Validation(InvalidDateMessage)
)

// Name of the person holding the reservation, counted in characters.
type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	n := utf8.RuneCountInString(s)
	if n < MinNameLength || n > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// The day is only range-checked (01-31); days per month are not.
var datePattern = regexp.MustCompile(`^([12]\d{3})-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(s string) (Date, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, ErrInvalidDate
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	// Days past the month end roll over: 2025-02-31 is 2025-03-03.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func DateOf(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// At combines the date with a time of day.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, hour, minute, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
