package maintain

import "time"

// Policy is the unattended-maintenance configuration. It is supplied by the
// settings layer on each evaluation and read-only to the scheduler; only
// the settings layer writes LastRun and the thresholds.
type Policy struct {
	Enabled              bool
	RequireACPower       bool
	IdleThresholdSeconds int
	DiskThresholdEnabled bool
	DiskThresholdPercent float64
	IntervalDays         int
	// LastRun is zero when maintenance has never run, which counts as due.
	LastRun time.Time
}

// intervalElapsed reports whether the configured interval has passed since
// the last run.
func (p Policy) intervalElapsed(now time.Time) bool {
	if p.LastRun.IsZero() {
		return true
	}
	return now.Sub(p.LastRun) >= time.Duration(p.IntervalDays)*24*time.Hour
}
