package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/GK-Developers/GK-Healter/internal/catalog"
	"github.com/GK-Developers/GK-Healter/internal/core"
	"github.com/GK-Developers/GK-Healter/internal/pkgmgr"
	"github.com/GK-Developers/GK-Healter/internal/scan"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List cleanable locations",
	Long:  "Scan package caches, logs, crash dumps, and browser caches and report how much space each would free. Nothing is deleted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := pkgmgr.Detect()
		cats := catalog.Build(mgr, "")
		results := scan.Run(cats)

		if scanJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		if len(results) == 0 {
			fmt.Println("Nothing to clean — all known locations are empty.")
			return nil
		}
		printScanTable(results)
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output results as JSON")
}

var (
	scanHeaderStyle = lipgloss.NewStyle().Bold(true)
	scanSystemStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"})
	scanMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"})
)

func printScanTable(results []scan.Result) {
	fmt.Println(scanHeaderStyle.Render(fmt.Sprintf("  %-22s %10s  %s", "Category", "Size", "Path")))

	var total int64
	for _, r := range results {
		line := fmt.Sprintf("  %-22s %10s  %s", r.Label, r.SizeHuman, scanMutedStyle.Render(r.Path))
		if r.System {
			line += scanSystemStyle.Render("  (system)")
		}
		fmt.Println(line)
		total += r.SizeBytes
	}
	fmt.Println()
	fmt.Printf("  Total reclaimable: %s\n", core.FormatSize(total))
}
