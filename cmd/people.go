package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tripwindow/config"
	"github.com/kilianp07/tripwindow/core/model"
	"github.com/kilianp07/tripwindow/infra/table"
)

var peopleData string

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List the people and the date range of an availability file",
	Args:  cobra.NoArgs,
	RunE:  runPeople,
}

func init() {
	peopleCmd.Flags().StringVarP(&peopleData, "data", "d", "", "availability CSV (default: the configured default file)")
	rootCmd.AddCommand(peopleCmd)
}

func runPeople(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	path := cfg.Data.DefaultPath()
	if peopleData != "" {
		path = cfg.Data.Resolve(peopleData)
	}
	t, err := table.Load(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Travel buddies are: %v\n", t.Persons())
	fmt.Fprintf(out, "The total timeframe available is: %s to %s (%d dates)\n",
		t.First().Format(model.DateLayout), t.Last().Format(model.DateLayout), t.Len())
	return nil
}
