package maintain

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GK-Developers/GK-Healter/internal/cleaner"
	"github.com/GK-Developers/GK-Healter/internal/core"
	"github.com/GK-Developers/GK-Healter/internal/scan"
)

// Summary describes one completed unattended maintenance run. The caller
// persists it to history and advances the policy's last-run timestamp.
type Summary struct {
	Categories []string
	FreedBytes int64
	Freed      string
	Outcome    cleaner.Outcome
}

// Scheduler decides whether unattended maintenance may run right now and,
// when permitted, drives a scan-and-clean pass over user-space candidates
// only. All probes are injectable so tests can evaluate the policy
// deterministically. The only carried state is the date of the last
// disk-threshold check.
type Scheduler struct {
	OnACPower       func() bool
	IdleSeconds     func() int
	DiskUsedPercent func() (float64, error)
	Now             func() time.Time

	Scan  func() []scan.Result
	Clean func(ctx context.Context, items []scan.Result) cleaner.Outcome

	mu            sync.Mutex
	lastDiskCheck time.Time // truncated to a calendar day; zero = never
}

// NewScheduler wires a scheduler to the production probes. Scan and Clean
// must be set by the caller.
func NewScheduler() *Scheduler {
	return &Scheduler{
		OnACPower:       OnACPower,
		IdleSeconds:     IdleSeconds,
		DiskUsedPercent: DiskUsedPercent,
		Now:             time.Now,
	}
}

// MayRunNow evaluates the policy gates in their fixed order: enabled, mains
// power, idle time, then — for disk-triggered evaluations — the daily disk
// threshold, which pre-empts the interval schedule, and finally the
// interval itself. It is a pure decision; nothing is cleaned here.
func (s *Scheduler) MayRunNow(p Policy, diskTriggered bool) bool {
	if !p.Enabled {
		return false
	}
	if p.RequireACPower && !s.OnACPower() {
		zap.L().Debug("maintenance deferred: not on AC power")
		return false
	}
	if s.IdleSeconds() < p.IdleThresholdSeconds {
		zap.L().Debug("maintenance deferred: user active")
		return false
	}

	if diskTriggered && p.DiskThresholdEnabled && s.diskPressure(p) {
		return true
	}

	return p.intervalElapsed(s.Now())
}

// diskPressure measures disk usage at most once per calendar day and
// reports whether it is at or above the configured threshold. The
// check-and-mark is done under the lock so concurrent ticks cannot
// double-count the same day's trigger.
func (s *Scheduler) diskPressure(p Policy) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := dateOnly(s.Now())
	if s.lastDiskCheck.Equal(today) {
		return false
	}
	pct, err := s.DiskUsedPercent()
	if err != nil {
		return false
	}
	if pct < p.DiskThresholdPercent {
		return false
	}
	s.lastDiskCheck = today
	zap.L().Info("disk pressure triggers maintenance",
		zap.Float64("used_percent", pct),
		zap.Float64("threshold", p.DiskThresholdPercent))
	return true
}

// RunOnce performs one unattended maintenance pass: scan, keep user-space
// items only (unattended runs never touch system paths without explicit
// confirmation), clean, and summarize. Returns (nil, false) when there was
// nothing to do or nothing succeeded.
func (s *Scheduler) RunOnce(ctx context.Context) (*Summary, bool) {
	results := s.Scan()
	if len(results) == 0 {
		zap.L().Info("maintenance: nothing to scan")
		return nil, false
	}

	var userItems []scan.Result
	for _, r := range results {
		if !r.System {
			userItems = append(userItems, r)
		}
	}
	if len(userItems) == 0 {
		zap.L().Info("maintenance: no user-space candidates")
		return nil, false
	}

	outcome := s.Clean(ctx, userItems)
	if outcome.Succeeded == 0 {
		zap.L().Warn("maintenance: no items cleaned", zap.Strings("errors", outcome.Errors))
		return nil, false
	}

	var categories []string
	var freed int64
	for _, item := range userItems {
		categories = append(categories, item.Label)
		freed += item.SizeBytes
	}
	return &Summary{
		Categories: categories,
		FreedBytes: freed,
		Freed:      core.FormatSize(freed),
		Outcome:    outcome,
	}, true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
