package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tripwindow/app"
	"github.com/kilianp07/tripwindow/config"
	"github.com/kilianp07/tripwindow/core/factory"
	"github.com/kilianp07/tripwindow/core/request"
)

var searchFlags struct {
	request   string
	data      string
	persons   []string
	necessary []string
	length    string
	start     string
	top       int
	format    string
	shrink    bool
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search without questions, from flags or a request file",
	Example: `  tripwindow search --persons Anna,Ben,Clara --necessary Anna --length "2 weeks"
  tripwindow search --request trip.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVarP(&searchFlags.request, "request", "r", "", "YAML or JSON request file")
	f.StringVarP(&searchFlags.data, "data", "d", "", "availability CSV, by name inside the data dir or as a path")
	f.StringSliceVarP(&searchFlags.persons, "persons", "p", nil, "people to plan for (default: everyone not excluded)")
	f.StringSliceVarP(&searchFlags.necessary, "necessary", "n", nil, "people who must be free")
	f.StringVarP(&searchFlags.length, "length", "l", "", `window length such as "6 days" or "2 weeks"`)
	f.StringVarP(&searchFlags.start, "start", "s", "", "earliest start date (YYYY-MM-DD)")
	f.IntVarP(&searchFlags.top, "top", "t", 0, "number of windows to list")
	f.StringVarP(&searchFlags.format, "format", "f", "", "presenter to use instead of the configured ones (text, json, csv, html)")
	f.BoolVar(&searchFlags.shrink, "shrink", false, "retry with shorter windows until something is found")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	if searchFlags.format != "" {
		cfg.Output.Presenters = []factory.ModuleConfig{{Type: searchFlags.format}}
	}
	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeService(svc)
	return svc.Request(req, searchFlags.shrink)
}

// buildRequest starts from the request file, if any, and lets every flag
// that was set override it.
func buildRequest(cmd *cobra.Command) (request.Request, error) {
	var req request.Request
	if searchFlags.request != "" {
		r, err := request.Load(searchFlags.request)
		if err != nil {
			return req, fmt.Errorf("load request: %w", err)
		}
		req = r
	}
	f := cmd.Flags()
	if f.Changed("data") {
		req.Data = searchFlags.data
	}
	if f.Changed("persons") {
		req.Persons = searchFlags.persons
	}
	if f.Changed("necessary") {
		req.Necessary = searchFlags.necessary
	}
	if f.Changed("length") {
		req.Length = searchFlags.length
	}
	if f.Changed("start") {
		req.Start = searchFlags.start
	}
	if f.Changed("top") {
		req.Top = searchFlags.top
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}
