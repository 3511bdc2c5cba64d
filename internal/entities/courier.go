package entities

import "time"

// Courier is a user with the courier role. Availability is flipped only as a
// side effect of order transitions, never directly by an admin or the courier.
type Courier struct {
	ID        int64
	Name      string
	Email     string
	Status    CourierStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourierStatusType string

const (
	CourierAvailable CourierStatusType = "available"
	CourierBusy      CourierStatusType = "busy"
)

const DefaultCourierStatus = CourierAvailable

func (s CourierStatusType) String() string {
	return string(s)
}
