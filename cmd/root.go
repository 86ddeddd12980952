package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tripwindow/app"
	"github.com/kilianp07/tripwindow/config"
	"github.com/kilianp07/tripwindow/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "tripwindow",
	Short: "Find the dates most of your travel buddies are free",
	Long: `tripwindow reads a table of dates and people and finds the windows
in which the most of them are available together. Without a sub command
it asks its questions on the terminal.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeService(svc)
	return svc.Interactive(os.Stdin)
}

func closeService(svc *app.Service) {
	if err := svc.Close(); err != nil {
		logger.New("main").Errorf("service close: %v", err)
	}
}
