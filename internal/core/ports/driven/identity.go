package driven

import "time"

// IDGenerator produces fresh entity ids.
type IDGenerator interface {
	NewID() string
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}
