//go:build unit || e2e

package builder

import (
	"strconv"
	"strings"

	"roomescape/internal/domain/reservationtime"
	reqdto "roomescape/internal/handler/dto/request"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"
)

type ReservationTimeBuilder struct {
	ID      int64
	StartAt string
}

func NewReservationTimeBuilder() *ReservationTimeBuilder {
	return &ReservationTimeBuilder{
		ID:      1,
		StartAt: "10:00",
	}
}

func (b *ReservationTimeBuilder) BuildDomain() (*reservationtime.ReservationTime, error) {
	t, err := reservationtime.NewReservationTime(b.StartAt)
	if err != nil {
		return nil, err
	}
	return t.WithID(b.ID), nil
}

func (b *ReservationTimeBuilder) MustBuildDomain() *reservationtime.ReservationTime {
	t, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return t
}

func (b *ReservationTimeBuilder) BuildInfra() sqlc.ReservationTime {
	hour, minute := clockOf(b.StartAt)
	return sqlc.ReservationTime{
		ID:      b.ID,
		StartAt: pgconv.ClockToPgtype(hour, minute),
	}
}

func (b *ReservationTimeBuilder) BuildCreateRequestDTO() reqdto.CreateReservationTimeRequest {
	return reqdto.CreateReservationTimeRequest{StartAt: b.StartAt}
}

func (b *ReservationTimeBuilder) WithID(id int64) *ReservationTimeBuilder {
	b.ID = id
	return b
}

func (b *ReservationTimeBuilder) WithStartAt(startAt string) *ReservationTimeBuilder {
	b.StartAt = startAt
	return b
}

// clockOf parses "HH:MM" leniently; malformed input yields 00:00.
func clockOf(s string) (hour, minute int) {
	h, m, _ := strings.Cut(s, ":")
	hour, _ = strconv.Atoi(h)
	minute, _ = strconv.Atoi(m)
	return hour, minute
}
