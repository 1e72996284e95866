package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pasc/internal/diag"
	"pasc/internal/source"
)

type palette struct {
	err, warn, info, code, note, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.note, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeDiagnostic(w, d, fs, opts, p)
	}
	if dropped := bag.Dropped(); dropped > 0 {
		fmt.Fprintf(w, "\n... %d more diagnostics not shown\n", dropped)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := lookupFile(fs, d.Primary.File)
	loc := formatPath(fs, f, opts.PathMode)
	if f != nil {
		start, _ := fs.Resolve(d.Primary)
		loc = fmt.Sprintf("%s:%d:%d", loc, start.Line, start.Col)
	}
	fmt.Fprintf(w, "%s: %s %s %s: %s\n",
		loc,
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Title(),
		d.Message)
	if f != nil && len(f.Content) > 0 {
		writeSnippet(w, f, fs, d.Primary, p)
	}
	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		noteLoc := ""
		if nf := lookupFile(fs, n.Span.File); nf != nil && n.Span != d.Primary {
			start, _ := fs.Resolve(n.Span)
			noteLoc = fmt.Sprintf(" (%s:%d:%d)", formatPath(fs, nf, opts.PathMode), start.Line, start.Col)
		}
		fmt.Fprintf(w, "  %s %s%s\n", p.note.Sprint("note:"), n.Msg, noteLoc)
	}
}

// writeSnippet prints the first line of span with a caret underline. Columns
// are measured in display cells so wide runes stay aligned.
func writeSnippet(w io.Writer, f *source.File, fs *source.FileSet, span source.Span, p palette) {
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	prefixLen := min(int(start.Col-1), len(line))
	markLen := len(line) - prefixLen
	if end.Line == start.Line {
		markLen = min(int(end.Col-start.Col), markLen)
	}

	pad := runewidth.StringWidth(line[:prefixLen])
	width := max(runewidth.StringWidth(line[prefixLen:prefixLen+markLen]), 1)

	num := fmt.Sprintf("%d", start.Line)
	gutter := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, "%s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line)
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s %s%s\n", gutter, p.gutter.Sprint("|"), strings.Repeat(" ", pad), p.caret.Sprint(marker))
}
