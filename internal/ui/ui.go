package ui

import (
	"fmt"
	"os"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes progress and diagnostics to stderr, keeping stdout clean
// for the --js output mode.
type Printer struct {
	verbose bool
}

func New(verbose bool) *Printer {
	return &Printer{verbose: verbose}
}

func (p *Printer) Banner(year int) {
	fmt.Fprintf(os.Stderr, bold+cyan+"bracketgen"+reset+dim+" — tax bracket generator (%d)"+reset+"\n", year)
}

func (p *Printer) Fetching(code, name string) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(os.Stderr, dim+"fetching %s (%s)..."+reset+"\n", code, name)
}

func (p *Printer) Fetched(code string, brackets int) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(os.Stderr, green+"✓ %s"+reset+dim+" %d bracket(s)"+reset+"\n", code, brackets)
}

func (p *Printer) Skipped(code string, err error) {
	fmt.Fprintf(os.Stderr, yellow+bold+"⚠ %s skipped"+reset+" — %v\n", code, err)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

// Summary prints the post-write report: what was generated and where.
func (p *Printer) Summary(year, federal, provincial int, skipped []string, path string) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ wrote %s"+reset+"\n", path)
	fmt.Fprintln(os.Stderr, dim+"summary:"+reset)
	fmt.Fprintf(os.Stderr, "  year:                %d\n", year)
	fmt.Fprintf(os.Stderr, "  federal brackets:    %d\n", federal)
	fmt.Fprintf(os.Stderr, "  provinces included:  %d\n", provincial)
	for _, code := range skipped {
		fmt.Fprintf(os.Stderr, "  "+yellow+"skipped: %s"+reset+"\n", code)
	}
}
