package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GK-Developers/GK-Healter/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past cleaning runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open()
		if err != nil {
			return err
		}
		records, err := store.Load()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No cleaning history yet.")
			return nil
		}
		// Newest first.
		for i := len(records) - 1; i >= 0; i-- {
			r := records[i]
			fmt.Printf("%s  %-8s %10s  %s\n",
				r.Timestamp, r.Status, r.Freed, strings.Join(r.Categories, ", "))
		}
		return nil
	},
}
