package core

import "time"

// Timer is the monotonic clock the frame pacer measures against. Counter
// values are opaque ticks; Frequency converts them to seconds.
type Timer interface {
	Counter() uint64
	Frequency() uint64
	Delay(ms uint32)
}

// SystemTimer implements Timer on the Go monotonic clock with nanosecond ticks.
type SystemTimer struct {
	startTime time.Time
}

func NewSystemTimer() *SystemTimer {
	return &SystemTimer{startTime: time.Now()}
}

func (t *SystemTimer) Counter() uint64 {
	return uint64(time.Since(t.startTime).Nanoseconds())
}

func (t *SystemTimer) Frequency() uint64 {
	return uint64(time.Second)
}

func (t *SystemTimer) Delay(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
