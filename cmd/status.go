package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/GK-Developers/GK-Healter/internal/core"
	"github.com/GK-Developers/GK-Healter/internal/status"
)

var (
	statusJSON    bool
	statusRefresh int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Monitor system health",
	Long:  "Live dashboard with CPU, memory, and disk metrics. Falls back to a one-shot report when stdout is not a terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if statusJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(status.Collect())
		}

		if !isatty.IsTerminal(os.Stdout.Fd()) {
			printStatusOnce()
			return nil
		}

		model := status.NewModel(time.Duration(statusRefresh) * time.Second)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	statusCmd.Flags().IntVar(&statusRefresh, "refresh", 1, "Refresh interval in seconds")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output metrics as JSON")
}

func printStatusOnce() {
	m := status.Collect()
	fmt.Printf("%s on %s, up %s\n", m.Hostname, m.Distro, status.FormatUptime(m.UptimeSecs))
	fmt.Printf("CPU    %5.1f%%  (load %.2f / %.2f / %.2f)\n", m.CPUPercent, m.Load1, m.Load5, m.Load15)
	fmt.Printf("Memory %5.1f%%  (%s of %s)\n", m.MemPercent,
		core.FormatSize(int64(m.MemUsed)), core.FormatSize(int64(m.MemTotal)))
	fmt.Printf("Disk / %5.1f%%  (%s of %s)\n", m.DiskPercent,
		core.FormatSize(int64(m.DiskUsed)), core.FormatSize(int64(m.DiskTotal)))
}
