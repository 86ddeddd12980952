package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tripwindow/core/duration"
)

var durationCmd = &cobra.Command{
	Use:   "duration <phrase>",
	Short: "Show how a window length phrase is understood",
	Example: `  tripwindow duration 2 weeks
  tripwindow duration "10 d"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := duration.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %s (%s, %d day span)\n", l.Amount, string(l.Unit), l, l.SpanDays()+1)
		return err
	},
}

func init() {
	rootCmd.AddCommand(durationCmd)
}
