package datetime

import "time"

type Broker interface {
	CurrentTime() time.Time
}

type broker struct {
	now func() time.Time
}

func NewBroker() Broker {
	return &broker{now: time.Now}
}

// CurrentTime is UTC, truncated to the microsecond precision postgres stores.
func (b *broker) CurrentTime() time.Time {
	return b.now().UTC().Truncate(time.Microsecond)
}
