package reservationtime

// ReservationTime is a bookable start time. id 0 means it has not been stored yet.
type ReservationTime struct {
	id      int64
	startAt StartAt
}

func NewReservationTime(raw string) (*ReservationTime, error) {
	startAt, err := NewStartAt(raw)
	if err != nil {
		return nil, err
	}
	return &ReservationTime{startAt: startAt}, nil
}

func ReconstructReservationTime(id int64, startAt StartAt) *ReservationTime {
	return &ReservationTime{id: id, startAt: startAt}
}

// WithID returns a copy carrying the identity assigned by storage.
func (t *ReservationTime) WithID(id int64) *ReservationTime {
	return &ReservationTime{id: id, startAt: t.startAt}
}

func (t *ReservationTime) IsPersisted() bool { return t.id != 0 }

func (t *ReservationTime) ID() int64        { return t.id }
func (t *ReservationTime) StartAt() StartAt { return t.startAt }
