package maintain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GK-Developers/GK-Healter/internal/cleaner"
	"github.com/GK-Developers/GK-Healter/internal/scan"
)

// favourablePolicy has every gate open and the interval long overdue.
func favourablePolicy() Policy {
	return Policy{
		Enabled:              true,
		RequireACPower:       true,
		IdleThresholdSeconds: 900,
		DiskThresholdEnabled: true,
		DiskThresholdPercent: 90,
		IntervalDays:         30,
		LastRun:              time.Now().Add(-60 * 24 * time.Hour),
	}
}

func testScheduler() *Scheduler {
	return &Scheduler{
		OnACPower:       func() bool { return true },
		IdleSeconds:     func() int { return 3600 },
		DiskUsedPercent: func() (float64, error) { return 50, nil },
		Now:             time.Now,
	}
}

func TestDisabledPolicyAlwaysBlocks(t *testing.T) {
	s := testScheduler()
	p := favourablePolicy()
	p.Enabled = false

	assert.False(t, s.MayRunNow(p, false))
	assert.False(t, s.MayRunNow(p, true))
}

func TestACPowerGate(t *testing.T) {
	s := testScheduler()
	s.OnACPower = func() bool { return false }
	p := favourablePolicy()

	assert.False(t, s.MayRunNow(p, false))

	// Battery power is fine when the policy does not require mains.
	p.RequireACPower = false
	assert.True(t, s.MayRunNow(p, false))
}

func TestIdleGate(t *testing.T) {
	s := testScheduler()
	s.IdleSeconds = func() int { return 10 }
	p := favourablePolicy()

	assert.False(t, s.MayRunNow(p, false))

	s.IdleSeconds = func() int { return 900 }
	assert.True(t, s.MayRunNow(p, false))
}

func TestDiskPressureBypassesInterval(t *testing.T) {
	s := testScheduler()
	s.DiskUsedPercent = func() (float64, error) { return 96, nil }
	p := favourablePolicy()
	p.LastRun = time.Now().Add(-time.Hour) // interval clearly not elapsed

	// Interval-only evaluation: not due.
	assert.False(t, s.MayRunNow(p, false))

	// Disk-triggered evaluation: urgent pressure pre-empts the schedule.
	assert.True(t, s.MayRunNow(p, true))

	// Same day, same pressure: the daily check already fired, and the
	// interval condition is still unsatisfied.
	assert.False(t, s.MayRunNow(p, true))
}

func TestDiskPressureBelowThreshold(t *testing.T) {
	s := testScheduler()
	s.DiskUsedPercent = func() (float64, error) { return 80, nil }
	p := favourablePolicy()
	p.LastRun = time.Now().Add(-time.Hour)

	assert.False(t, s.MayRunNow(p, true))

	// Below-threshold measurements do not consume the daily check: a
	// later spike the same day can still trigger.
	s.DiskUsedPercent = func() (float64, error) { return 97, nil }
	assert.True(t, s.MayRunNow(p, true))
}

func TestDiskCheckResetsNextDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 22, 0, 0, 0, time.Local)
	s := testScheduler()
	s.Now = func() time.Time { return now }
	s.DiskUsedPercent = func() (float64, error) { return 95, nil }
	p := favourablePolicy()
	p.LastRun = now.Add(-time.Hour)

	assert.True(t, s.MayRunNow(p, true))
	assert.False(t, s.MayRunNow(p, true))

	// Next calendar day the daily disk check is armed again.
	now = now.Add(4 * time.Hour)
	assert.True(t, s.MayRunNow(p, true))
}

func TestDiskThresholdDisabledFallsThrough(t *testing.T) {
	s := testScheduler()
	s.DiskUsedPercent = func() (float64, error) { return 99, nil }
	p := favourablePolicy()
	p.DiskThresholdEnabled = false
	p.LastRun = time.Now().Add(-time.Hour)

	assert.False(t, s.MayRunNow(p, true))
}

func TestIntervalDue(t *testing.T) {
	s := testScheduler()
	p := favourablePolicy()

	p.LastRun = time.Now().Add(-31 * 24 * time.Hour)
	assert.True(t, s.MayRunNow(p, false))

	p.LastRun = time.Now().Add(-29 * 24 * time.Hour)
	assert.False(t, s.MayRunNow(p, false))

	// Never having run counts as due.
	p.LastRun = time.Time{}
	assert.True(t, s.MayRunNow(p, false))
}

func TestRunOnceFiltersSystemItems(t *testing.T) {
	s := testScheduler()

	var cleaned []scan.Result
	s.Scan = func() []scan.Result {
		return []scan.Result{
			{Label: "Package cache", Path: "/var/cache/apt/archives", SizeBytes: 50 << 20, System: true},
			{Label: "Thumbnails", Path: "/home/u/.cache/thumbnails", SizeBytes: 10 << 20},
			{Label: "Firefox cache", Path: "/home/u/.cache/mozilla", SizeBytes: 5 << 20},
		}
	}
	s.Clean = func(_ context.Context, items []scan.Result) cleaner.Outcome {
		cleaned = items
		return cleaner.Outcome{Succeeded: len(items)}
	}

	summary, ran := s.RunOnce(context.Background())
	require.True(t, ran)
	require.Len(t, cleaned, 2, "unattended maintenance must never touch system items")
	for _, item := range cleaned {
		assert.False(t, item.System)
	}
	assert.Equal(t, []string{"Thumbnails", "Firefox cache"}, summary.Categories)
	assert.Equal(t, int64(15<<20), summary.FreedBytes)
	assert.Equal(t, "15.00 MB", summary.Freed)
}

func TestRunOnceNothingToDo(t *testing.T) {
	s := testScheduler()
	s.Clean = func(_ context.Context, items []scan.Result) cleaner.Outcome {
		t.Fatal("clean must not be called")
		return cleaner.Outcome{}
	}

	s.Scan = func() []scan.Result { return nil }
	_, ran := s.RunOnce(context.Background())
	assert.False(t, ran)

	s.Scan = func() []scan.Result {
		return []scan.Result{{Label: "Package cache", Path: "/var/cache/apt/archives", System: true}}
	}
	_, ran = s.RunOnce(context.Background())
	assert.False(t, ran)
}

func TestRunOnceAllFailed(t *testing.T) {
	s := testScheduler()
	s.Scan = func() []scan.Result {
		return []scan.Result{{Label: "Thumbnails", Path: "/home/u/.cache/thumbnails", SizeBytes: 1}}
	}
	s.Clean = func(_ context.Context, items []scan.Result) cleaner.Outcome {
		return cleaner.Outcome{Failed: 1, Errors: []string{"boom"}}
	}

	_, ran := s.RunOnce(context.Background())
	assert.False(t, ran)
}
