package present

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/tripwindow/core/factory"
	"github.com/kilianp07/tripwindow/core/model"
	corepresent "github.com/kilianp07/tripwindow/core/present"
)

func init() {
	corepresent.Register("html", func(conf map[string]any) (corepresent.Presenter, error) {
		var c FileConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Path == "" {
			c.Path = "windows.html"
		}
		return &HTML{Path: c.Path}, nil
	})
}

// HTML renders the ranked windows as a bar chart page.
type HTML struct {
	Path string
}

// Chart builds the bar chart of rep: one bar group per candidate start
// with the number of free people and their weight.
func Chart(rep corepresent.Report) *charts.Bar {
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("%s windows", rep.Length)
	if rep.Source != "" {
		subtitle += " from " + rep.Source
	}
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Best travel windows", Subtitle: subtitle}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Start"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "People"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	var xAxis []string
	var counts, weights []opts.BarData
	for _, c := range rep.Result.Candidates {
		xAxis = append(xAxis, c.Start.Format(model.DateLayout))
		counts = append(counts, opts.BarData{Value: c.Count, Name: strings.Join(c.People, ", ")})
		weights = append(weights, opts.BarData{Value: c.Weight})
	}
	bar.SetXAxis(xAxis).
		AddSeries("People free", counts).
		AddSeries("Weight", weights)
	return bar
}

// Present writes the chart page to the configured path and a one line
// pointer to w.
func (h *HTML) Present(w io.Writer, rep corepresent.Report) error {
	var buf bytes.Buffer
	if err := Chart(rep).Render(&buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if err := toTarget(w, h.Path, func(out io.Writer) error {
		_, err := out.Write(buf.Bytes())
		return err
	}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Chart written to %s\n", h.Path)
	return err
}
