package config

import (
	"fmt"

	"github.com/kilianp07/tripwindow/core/factory"
)

// MetricsConfig controls the export of search metrics.
type MetricsConfig struct {
	// Textfile is written in the Prometheus text format after each
	// session. Empty disables the export.
	Textfile string `json:"textfile"`
}

// OutputConfig lists the presenters every result is shown with.
type OutputConfig struct {
	Presenters []factory.ModuleConfig `json:"presenters"`
}

// SetDefaults presents results as text when nothing is configured.
func (c *OutputConfig) SetDefaults() {
	if len(c.Presenters) == 0 {
		c.Presenters = []factory.ModuleConfig{{Type: "text"}}
	}
}

// Validate checks every presenter has a type.
func (c OutputConfig) Validate() error {
	for i, p := range c.Presenters {
		if p.Type == "" {
			return fmt.Errorf("presenter %d has no type", i)
		}
	}
	return nil
}
