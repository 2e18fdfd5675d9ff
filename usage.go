package params

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo/v2"
	"github.com/bradfitz/iter"
)

func (p *Params) hasOptions() bool {
	return len(p.specs) != len(p.positional)
}

// WriteUsage renders a usage summary, the description if one was
// given, and aligned help for positionals and options. Rendering is a
// convenience for callers handling a parse error; the engine never
// prints anything itself.
func (p *Params) WriteUsage(w io.Writer) {
	program := p.program
	if program == "" {
		program = "program"
	}
	fmt.Fprintf(w, "Usage:\n  %s", program)
	if p.hasOptions() {
		fmt.Fprintf(w, " [OPTIONS...]")
	}
	for _, i := range p.positional {
		s := &p.specs[i]
		if s.required {
			fmt.Fprintf(w, " <%s>", s.metavarName())
		} else {
			fmt.Fprintf(w, " [%s]", s.metavarName())
		}
	}
	fmt.Fprintf(w, "\n")
	if p.description != "" {
		fmt.Fprintf(w, "\n%s\n", missinggo.Unchomp(p.description))
	}
	p.writeArgumentUsage(w)
	p.writeOptionUsage(w)
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

func (p *Params) writeArgumentUsage(w io.Writer) {
	withHelp := false
	for _, i := range p.positional {
		if p.specs[i].help != "" {
			withHelp = true
		}
	}
	if !withHelp {
		return
	}
	fmt.Fprintf(w, "Arguments:\n")
	tw := newUsageTabwriter(w)
	for _, i := range p.positional {
		s := &p.specs[i]
		if s.help == "" {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\n", s.metavarName(), s.help)
	}
	tw.Flush()
}

func (p *Params) writeOptionUsage(w io.Writer) {
	if !p.hasOptions() {
		return
	}
	fmt.Fprintf(w, "Options:\n")
	tw := newUsageTabwriter(w)
	for i := range iter.N(len(p.specs)) {
		s := &p.specs[i]
		if !s.option {
			continue
		}
		names := strings.Join(s.names, ", ")
		if isBoolTarget(s.target) {
			fmt.Fprintf(tw, "  %s\t%s\n", names, s.help)
		} else {
			fmt.Fprintf(tw, "  %s %s\t%s\n", names, s.metavarName(), s.help)
		}
	}
	tw.Flush()
}
