// Package report formats check and locate results for the terminal.
package report

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/vango-dev/testkit/internal/errors"
	"github.com/vango-dev/testkit/pkg/proptypes"
	"github.com/vango-dev/testkit/pkg/render"
	"github.com/vango-dev/testkit/pkg/vdom"
	"github.com/vango-dev/testkit/pkg/vquery"
)

// Options controls report output.
type Options struct {
	// Color enables ANSI colors.
	Color bool

	// Pretty indents rendered HTML.
	Pretty bool
}

// Printer writes reports to an io.Writer.
type Printer struct {
	w    io.Writer
	opts Options
}

// New creates a Printer.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

func (p *Printer) paint(text string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if p.opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Check reports the outcome of a prop contract check for component.
// err is the value returned by proptypes.Check.
func (p *Printer) Check(component string, err error) error {
	if component == "" {
		component = "<<anonymous>>"
	}

	var b strings.Builder
	var ve *proptypes.ViolationError
	switch {
	case err == nil:
		fmt.Fprintf(&b, "%s %s\n", p.paint("PASS", color.FgGreen, color.Bold), component)
	case stderrors.As(err, &ve):
		noun := "violations"
		if len(ve.Violations) == 1 {
			noun = "violation"
		}
		fmt.Fprintf(&b, "%s %s (%d %s)\n", p.paint("FAIL", color.FgRed, color.Bold), component, len(ve.Violations), noun)
		for _, v := range ve.Violations {
			fmt.Fprintf(&b, "  - %s %s\n", p.paint(v.Path+":", color.FgCyan), v.Message)
		}
	default:
		b.WriteString(p.Error(err))
	}

	_, werr := io.WriteString(p.w, b.String())
	return werr
}

// Locate reports the nodes matched for a test identifier.
func (p *Printer) Locate(identifier string, sel *vquery.Selection) error {
	r := render.NewRenderer(render.RendererConfig{Pretty: p.opts.Pretty})

	var b strings.Builder
	noun := "matches"
	if sel.Len() == 1 {
		noun = "match"
	}
	fmt.Fprintf(&b, "%s %s for %s=%q\n",
		p.paint(fmt.Sprint(sel.Len()), color.Bold), noun, vdom.TestAttr, identifier)

	var renderErr error
	sel.Each(func(i int, node *vdom.VNode) {
		if renderErr != nil {
			return
		}
		html, err := r.RenderToString(node)
		if err != nil {
			renderErr = err
			return
		}
		html = strings.TrimRight(html, "\n")
		prefix := p.paint(fmt.Sprintf("[%d]", i), color.FgHiBlack)
		if strings.Contains(html, "\n") {
			fmt.Fprintf(&b, "%s\n%s\n", prefix, indent(html, "    "))
		} else {
			fmt.Fprintf(&b, "%s %s\n", prefix, html)
		}
	})
	if renderErr != nil {
		return renderErr
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// Error formats err for display. Structured errors use their full format.
func (p *Printer) Error(err error) string {
	if ke, ok := errors.As(err); ok {
		if p.opts.Color {
			errors.EnableColors()
		} else {
			errors.DisableColors()
		}
		return ke.Format()
	}
	return fmt.Sprintf("%s %v\n", p.paint("ERROR", color.FgRed, color.Bold), err)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
