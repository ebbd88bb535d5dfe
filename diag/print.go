package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// contextLines is the number of source lines printed before the offending
// line.
const contextLines = 3

var (
	locColor = color.New(color.Bold)
	errColor = color.New(color.FgHiRed, color.Bold)
)

// Printer renders diagnostics to a sink.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to w.  A nil w selects stderr.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{out: w}
}

// Report prints the diagnostic; it satisfies Reporter.
func (p *Printer) Report(d Diagnostic) {
	p.Print(d)
}

// Print renders the diagnostic: the location, the message, up to
// contextLines preceding lines plus the offending line, and a caret under
// the offending column.
func (p *Printer) Print(d Diagnostic) {
	var loc = d.Location()
	var line, _ = loc.Position()

	fmt.Fprintf(p.out, "%s %s %s\n",
		locColor.Sprint(loc.String()),
		errColor.Sprint("error")+":",
		d.Error())

	var starts []int
	var start = loc.Source.LineStart(loc.Offset)
	starts = append(starts, start)
	for l := line - 1; l >= 1 && len(starts) <= contextLines; l-- {
		start = loc.Source.LineStart(start - 1)
		starts = append(starts, start)
	}
	for i := len(starts) - 1; i >= 0; i-- {
		fmt.Fprintln(p.out, loc.Source.Line(starts[i]))
	}
	fmt.Fprintf(p.out, "%s^\n\n", strings.Repeat(" ", loc.Offset-starts[0]))
}
