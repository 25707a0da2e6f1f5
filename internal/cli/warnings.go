package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pipgraph/pipgraph/pkg/pkggraph"
)

// Warning presentation for graph anomalies. Everything here goes to stderr
// so rendered output on stdout stays machine-consumable. Each report returns
// whether it emitted anything, which feeds the --warn fail exit decision.

// reportDiagnostics prints builder diagnostics: records dropped for missing
// identity and duplicate package entries.
func (c *CLI) reportDiagnostics(d *pkggraph.Diagnostics) bool {
	if d.Empty() {
		return false
	}
	if len(d.Skipped) > 0 {
		fmt.Fprintln(os.Stderr, styleWarnTitle.Render(
			fmt.Sprintf("Warning!! Skipped %d record(s) with missing package identity", len(d.Skipped))))
	}
	if len(d.Duplicates) > 0 {
		fmt.Fprintln(os.Stderr, styleWarnTitle.Render("Warning!! Duplicate package metadata found:"))
		for _, dup := range d.Duplicates {
			fmt.Fprintln(os.Stderr, styleDetail.Render(
				fmt.Sprintf("* %s %s (using %s)", dup.Name, dup.Version, dup.Retained.RenderAsRoot())))
		}
	}
	fmt.Fprintln(os.Stderr)
	return true
}

// reportConflicts prints requirement edges whose installed targets fail
// their constraints, grouped per package in normalized-key order.
func (c *CLI) reportConflicts(conflicts []pkggraph.Conflict) bool {
	if len(conflicts) == 0 {
		return false
	}
	sorted := slices.Clone(conflicts)
	slices.SortFunc(sorted, func(a, b pkggraph.Conflict) int {
		return strings.Compare(a.Package.Key(), b.Package.Key())
	})

	fmt.Fprintln(os.Stderr, styleErrTitle.Render("Warning!!! Possibly conflicting dependencies found:"))
	for _, conflict := range sorted {
		fmt.Fprintln(os.Stderr, styleDetail.Render("* "+conflict.Package.RenderAsRoot()))
		for _, e := range conflict.Edges {
			fmt.Fprintln(os.Stderr, styleDetail.Render(" - "+e.RenderAsBranch(false)))
		}
	}
	fmt.Fprintln(os.Stderr)
	return true
}

// reportCycles prints detected dependency cycles, one line per cycle, in
// root-key order.
func (c *CLI) reportCycles(cycles []pkggraph.Cycle) bool {
	if len(cycles) == 0 {
		return false
	}
	sorted := slices.Clone(cycles)
	slices.SortFunc(sorted, func(a, b pkggraph.Cycle) int {
		return strings.Compare(a.Root().Key(), b.Root().Key())
	})

	fmt.Fprintln(os.Stderr, styleWarnTitle.Render("Warning!! Cyclic dependencies found:"))
	for _, cycle := range sorted {
		names := make([]string, len(cycle))
		for i, p := range cycle {
			names[i] = p.ProjectName()
		}
		fmt.Fprintln(os.Stderr, styleDetail.Render("* "+strings.Join(names, " => ")))
	}
	fmt.Fprintln(os.Stderr)
	return true
}
