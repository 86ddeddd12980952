package present

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kilianp07/tripwindow/core/factory"
	corepresent "github.com/kilianp07/tripwindow/core/present"
	"github.com/kilianp07/tripwindow/pkg/export"
)

func init() {
	corepresent.Register("json", func(conf map[string]any) (corepresent.Presenter, error) {
		c, err := decodeFile(conf)
		if err != nil {
			return nil, err
		}
		return &JSON{Path: c.Path}, nil
	})
	corepresent.Register("csv", func(conf map[string]any) (corepresent.Presenter, error) {
		c, err := decodeFile(conf)
		if err != nil {
			return nil, err
		}
		return &CSV{Path: c.Path}, nil
	})
}

// FileConfig names the file a presenter writes to. An empty path writes
// to the presenter's writer.
type FileConfig struct {
	Path string `json:"path"`
}

func decodeFile(conf map[string]any) (FileConfig, error) {
	var c FileConfig
	if err := factory.Decode(conf, &c); err != nil {
		return c, err
	}
	return c, nil
}

// JSON writes the report as a JSON document.
type JSON struct {
	Path string
}

// Present encodes rep.
func (j *JSON) Present(w io.Writer, rep corepresent.Report) error {
	return toTarget(w, j.Path, func(out io.Writer) error {
		return export.WriteJSON(out, export.Document{
			RunID:      rep.RunID,
			Source:     rep.Source,
			Length:     rep.Length.String(),
			Persons:    rep.Constraints.Persons,
			Necessary:  rep.Constraints.Necessary,
			Candidates: rep.Result.Candidates,
		})
	})
}

// CSV writes the ranked candidates as CSV rows.
type CSV struct {
	Path string
}

// Present encodes the candidates of rep.
func (c *CSV) Present(w io.Writer, rep corepresent.Report) error {
	return toTarget(w, c.Path, func(out io.Writer) error {
		return export.WriteCSV(out, rep.Result.Candidates)
	})
}

// toTarget runs write against w, or against the file at path when set.
func toTarget(w io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(w)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
