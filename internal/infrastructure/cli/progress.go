package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/aish-sh/aish/internal/ports"
)

// Progress renders pipeline phases on stderr. Stdout stays reserved for the
// generated command alone.
type Progress struct {
	out     io.Writer
	enabled bool
	dim     *color.Color
	spinner *Spinner
}

// NewProgress builds a reporter; disabled instances stay silent.
func NewProgress(out io.Writer, enabled bool) *Progress {
	return &Progress{
		out:     out,
		enabled: enabled,
		dim:     color.New(color.FgHiBlack),
	}
}

func (p *Progress) RouterStart(model string) {
	if !p.enabled {
		return
	}
	p.dim.Fprintf(p.out, "Router: %s\n", model)
}

func (p *Progress) RouterDone(sections []string) {
	if !p.enabled {
		return
	}
	if len(sections) == 0 {
		p.dim.Fprintln(p.out, "No extra context needed")
		return
	}
	p.dim.Fprintf(p.out, "Gathering context: %s\n", strings.Join(sections, ", "))
}

func (p *Progress) GenerateStart(model string) {
	if !p.enabled {
		return
	}
	p.dim.Fprintf(p.out, "Model: %s\n", model)
	p.spinner = NewSpinner(p.out, "Generating")
	p.spinner.Start()
}

func (p *Progress) Done(d time.Duration) {
	if !p.enabled {
		return
	}
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
	p.dim.Fprintf(p.out, "(%.1fs)\n", d.Seconds())
}

// PrintIntent echoes the intent line before generation starts.
func (p *Progress) PrintIntent(intent string) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.out, "› %s\n", intent)
}

var _ ports.ProgressReporter = (*Progress)(nil)
