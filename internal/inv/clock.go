package inv

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies timestamps for records and journal entries.
type Clock interface {
	Now() time.Time
}

// RealClock returns the wall clock time in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator produces record identifiers.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }
