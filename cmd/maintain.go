package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GK-Developers/GK-Healter/internal/catalog"
	"github.com/GK-Developers/GK-Healter/internal/cleaner"
	"github.com/GK-Developers/GK-Healter/internal/config"
	"github.com/GK-Developers/GK-Healter/internal/history"
	"github.com/GK-Developers/GK-Healter/internal/maintain"
	"github.com/GK-Developers/GK-Healter/internal/pkgmgr"
	"github.com/GK-Developers/GK-Healter/internal/safety"
	"github.com/GK-Developers/GK-Healter/internal/scan"
)

var (
	maintainForce     bool
	maintainDiskCheck bool
)

var maintainCmd = &cobra.Command{
	Use:   "maintain",
	Short: "Run unattended maintenance if it is due",
	Long: `Evaluate the autonomous-maintenance policy (enabled, AC power, idle
time, disk threshold, interval) and, when permitted, clean user-space
candidates. System locations are never touched without explicit
confirmation; use 'healter clean' for those.

Intended to be invoked periodically from a user timer or cron.`,
	RunE: runMaintain,
}

func init() {
	maintainCmd.Flags().BoolVar(&maintainForce, "force", false, "Skip the policy gates and run now")
	maintainCmd.Flags().BoolVar(&maintainDiskCheck, "disk-check", false, "Treat this evaluation as disk-triggered")
}

func runMaintain(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	policy := settings.Policy()

	mgr := pkgmgr.Detect()
	cats := catalog.Build(mgr, "")
	validator := safety.ForSession(cats, mgr, "")
	orch := cleaner.New(validator, func(path string) []string {
		return catalog.ResolveCommand(mgr, path)
	}, nil)

	sched := maintain.NewScheduler()
	sched.Scan = func() []scan.Result { return scan.Run(cats) }
	sched.Clean = func(ctx context.Context, items []scan.Result) cleaner.Outcome {
		return orch.Clean(ctx, items)
	}

	if !maintainForce && !sched.MayRunNow(policy, maintainDiskCheck) {
		fmt.Println("Maintenance not due.")
		return nil
	}

	summary, ran := sched.RunOnce(cmd.Context())
	if !ran {
		fmt.Println("Nothing to do.")
		return nil
	}

	fmt.Printf("Maintenance complete: freed %s (%s)\n",
		summary.Freed, strings.Join(summary.Categories, ", "))

	if store, err := history.Open(); err == nil {
		status := "success"
		if summary.Outcome.Failed > 0 {
			status = "partial"
		}
		rec := history.NewRecord(append(summary.Categories, "Automatic maintenance"), summary.Freed, status)
		if err := store.Append(rec); err != nil {
			zap.L().Warn("failed to record maintenance history", zap.Error(err))
		}
	}

	if err := settings.SetLastRun(time.Now()); err != nil {
		zap.L().Warn("failed to persist last maintenance time", zap.Error(err))
	}
	return nil
}
