package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DataConfig locates the availability files.
type DataConfig struct {
	// Dir holds the CSV files offered to the user.
	Dir string `json:"dir"`
	// DefaultFile is loaded from Dir when the user skips the file question.
	DefaultFile string `json:"default_file"`
}

// SetDefaults applies sane defaults.
func (c *DataConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "data"
	}
	if c.DefaultFile == "" {
		c.DefaultFile = "vacations.csv"
	}
}

// Validate checks the default file is a CSV.
func (c DataConfig) Validate() error {
	if !strings.HasSuffix(c.DefaultFile, ".csv") {
		return fmt.Errorf("default_file %s is not a .csv file", c.DefaultFile)
	}
	return nil
}

// DefaultPath is the path of the default file.
func (c DataConfig) DefaultPath() string {
	return filepath.Join(c.Dir, c.DefaultFile)
}

// Resolve returns name itself when it is a path and name inside Dir
// otherwise.
func (c DataConfig) Resolve(name string) string {
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(c.Dir, name)
}
