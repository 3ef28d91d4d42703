package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GK-Developers/GK-Healter/internal/catalog"
	"github.com/GK-Developers/GK-Healter/internal/cleaner"
	"github.com/GK-Developers/GK-Healter/internal/core"
	"github.com/GK-Developers/GK-Healter/internal/history"
	"github.com/GK-Developers/GK-Healter/internal/picker"
	"github.com/GK-Developers/GK-Healter/internal/pkgmgr"
	"github.com/GK-Developers/GK-Healter/internal/safety"
	"github.com/GK-Developers/GK-Healter/internal/scan"
)

var (
	cleanYes        bool
	cleanUserOnly   bool
	cleanSystemOnly bool
	cleanAutoremove bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Free up disk space",
	Long: `Deep cleanup of package caches, logs, crash dumps, and browser caches.

User-owned locations are removed directly; system locations run the
matching package-manager command through pkexec. Every path is checked
against a strict allow-list before anything is touched. Deletions are
permanent.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup plan without deleting")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Clean all candidates without asking")
	cleanCmd.Flags().BoolVar(&cleanUserOnly, "user", false, "Clean user caches only")
	cleanCmd.Flags().BoolVar(&cleanSystemOnly, "system", false, "Clean system locations only (asks for authorization)")
	cleanCmd.Flags().BoolVar(&cleanAutoremove, "autoremove", false, "Also remove orphaned/unused packages")
}

func runClean(cmd *cobra.Command, args []string) error {
	mgr := pkgmgr.Detect()
	cats := catalog.Build(mgr, "")
	results := scan.Run(cats)

	if cleanUserOnly {
		results = filterResults(results, func(r scan.Result) bool { return !r.System })
	}
	if cleanSystemOnly {
		results = filterResults(results, func(r scan.Result) bool { return r.System })
	}
	if cleanAutoremove {
		results = append(results, scan.MarkerResults(cats)...)
	}

	if len(results) == 0 {
		fmt.Println("Nothing to clean — all known locations are empty.")
		return nil
	}

	selected := results
	interactive := !cleanYes && isatty.IsTerminal(os.Stdout.Fd())
	if interactive {
		var err error
		selected, err = picker.Run(results)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			fmt.Println("Cancelled — nothing cleaned.")
			return nil
		}
	} else {
		printScanTable(filterResults(results, func(r scan.Result) bool { return !r.Marker }))
	}

	validator := safety.ForSession(cats, mgr, "")
	orch := cleaner.New(validator, func(path string) []string {
		return catalog.ResolveCommand(mgr, path)
	}, nil)
	orch.SetDryRun(dryRun)

	outcome := orch.Clean(cmd.Context(), selected)
	printOutcome(outcome)

	if !dryRun && outcome.Succeeded > 0 {
		recordHistory(selected, outcome)
	}
	return nil
}

func filterResults(results []scan.Result, keep func(scan.Result) bool) []scan.Result {
	var out []scan.Result
	for _, r := range results {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func printOutcome(out cleaner.Outcome) {
	fmt.Println()
	if dryRun {
		fmt.Printf("Dry run: %d item(s) would be cleaned.\n", out.Succeeded)
		return
	}
	fmt.Printf("Cleaned %d item(s), %d failed.\n", out.Succeeded, out.Failed)
	for _, msg := range out.Errors {
		fmt.Printf("  ! %s\n", msg)
	}
}

// recordHistory appends one record for the batch: categories touched, bytes
// freed, and an overall status.
func recordHistory(selected []scan.Result, out cleaner.Outcome) {
	store, err := history.Open()
	if err != nil {
		zap.L().Warn("history unavailable", zap.Error(err))
		return
	}

	var labels []string
	var freed int64
	for _, item := range selected {
		labels = append(labels, item.Label)
		freed += item.SizeBytes
	}
	status := "success"
	switch {
	case out.Succeeded == 0:
		status = "failed"
	case out.Failed > 0:
		status = "partial"
	}

	if err := store.Append(history.NewRecord(labels, core.FormatSize(freed), status)); err != nil {
		zap.L().Warn("failed to record history", zap.Error(err))
	}
}
