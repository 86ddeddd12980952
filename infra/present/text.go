// Package present implements the presenters registered under the names
// "text", "json", "csv" and "html".
package present

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/kilianp07/tripwindow/core/factory"
	"github.com/kilianp07/tripwindow/core/model"
	corepresent "github.com/kilianp07/tripwindow/core/present"
)

func init() {
	corepresent.Register("text", newText)
}

// Color modes of the text presenter.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// TextConfig configures the text presenter.
type TextConfig struct {
	// Color is auto, always or never. Auto styles output written to a
	// terminal.
	Color string `json:"color"`
}

type styles struct {
	title lipgloss.Style
	warn  lipgloss.Style
	bold  lipgloss.Style
	muted lipgloss.Style
}

var (
	colorStyles = styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
		bold:  lipgloss.NewStyle().Bold(true),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
	}
	plainStyles = styles{
		title: lipgloss.NewStyle(),
		warn:  lipgloss.NewStyle(),
		bold:  lipgloss.NewStyle(),
		muted: lipgloss.NewStyle(),
	}
)

// Text writes the result as sentences followed by a small table.
type Text struct {
	color string
}

func newText(conf map[string]any) (corepresent.Presenter, error) {
	var c TextConfig
	if err := factory.Decode(conf, &c); err != nil {
		return nil, err
	}
	return NewText(c)
}

// NewText returns a text presenter.
func NewText(c TextConfig) (*Text, error) {
	switch c.Color {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("text presenter: unknown color mode %q", c.Color)
	}
	return &Text{color: c.Color}, nil
}

func (t *Text) styles(w io.Writer) styles {
	switch t.color {
	case ColorAlways:
		return colorStyles
	case ColorNever:
		return plainStyles
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return colorStyles
	}
	return plainStyles
}

// Present writes the best window, who is free in it, and the ranked list.
func (t *Text) Present(w io.Writer, rep corepresent.Report) error {
	st := t.styles(w)
	var b strings.Builder
	best, ok := rep.Result.Best()
	if !ok {
		b.WriteString(st.warn.Render("There is no solution with your constraints."))
		b.WriteString("\n\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	if best.Count < len(rep.Constraints.Persons) {
		b.WriteString(st.warn.Render("I wasn't able to find a solution that includes everyone. Here is the best timeframe I was able to find:"))
		b.WriteString("\n")
	}
	date := st.bold.Render(best.Start.Format(model.DateLayout))
	if best.Count > 1 {
		fmt.Fprintf(&b, "From the %s on, there are %d people free for %s.\n", date, best.Count, rep.Length)
		fmt.Fprintf(&b, "These people are: %s\n\n", st.bold.Render(fmt.Sprint(best.People)))
	} else {
		fmt.Fprintf(&b, "From the %s on, there is %d person free for %s.\n", date, best.Count, rep.Length)
		fmt.Fprintf(&b, "This person is: %s\n\n", st.bold.Render(fmt.Sprint(best.People)))
	}

	top := rep.Top
	if top <= 0 {
		top = len(rep.Result.Candidates)
	}
	b.WriteString(st.title.Render(fmt.Sprintf("Here's also up to %d best fitting solutions:", top)))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("%-3s %-10s  %5s  %s", "#", "date", "count", "people")))
	b.WriteString("\n")
	for i, c := range rep.Result.Candidates {
		fmt.Fprintf(&b, "%-3d %-10s  %5d  %s\n", i+1, c.Start.Format(model.DateLayout), c.Count, strings.Join(c.People, ", "))
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Retrying announces a search with a shorter window.
func (t *Text) Retrying(w io.Writer, l model.WindowLength) error {
	_, err := fmt.Fprintf(w, "Trying with %s\n", l)
	return err
}
