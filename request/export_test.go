package request

import "time"

// SetClock fixes the time and the TRNUIDs used by b.
func (b *Builder) SetClock(now time.Time, uid string) {
	b.now = func() time.Time { return now }
	b.uid = func() (string, error) { return uid, nil }
}
