package cli

import (
	goerrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipgraph/pipgraph/pkg/errors"
	"github.com/pipgraph/pipgraph/pkg/pkggraph"
	"github.com/pipgraph/pipgraph/pkg/source"
)

// Warning handling modes for the --warn flag.
const (
	warnSilence  = "silence"  // emit no warnings
	warnSuppress = "suppress" // emit warnings, exit zero
	warnFail     = "fail"     // emit warnings, exit non-zero if any were emitted
)

// errWarnings is returned after a successful render when --warn fail was
// requested and warnings were emitted.
var errWarnings = goerrors.New("warnings were emitted (--warn fail)")

// treeOpts holds the command-line flags for the root command.
type treeOpts struct {
	jsonFlat       bool   // flat JSON, one object per package
	jsonTree       bool   // nested JSON
	mermaid        bool   // Mermaid flowchart
	graphvizFormat string // Graphviz output format ("" disables)
	depth          int    // max tree depth, negative = unbounded
	listAll        bool   // list every package at top level
	reverse        bool   // render the reversed graph
	freeze         bool   // pip-freeze style pins
	license        bool   // annotate dependencies with licenses
	encoding       string // text encoding selecting the tree style
	warn           string // silence, suppress or fail
	output         string // output file ("" means stdout)
}

// treeCommand creates the root command that builds and renders the
// dependency graph. Input comes from a JSON records file argument or stdin.
func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{
		depth:    -1,
		encoding: "utf-8",
		warn:     warnSuppress,
	}

	cmd := &cobra.Command{
		Use:   "pipgraph [records.json]",
		Short: "pipgraph reports installed packages as a dependency graph",
		Long: `pipgraph reads installed-package records and reports them as a
dependency graph: an indented tree, nested or flat JSON, a Mermaid
flowchart, or Graphviz output.

Records are read from the given JSON file, or from stdin when no file is
given. Duplicate packages, unsatisfied version constraints and dependency
cycles are reported as warnings on stderr and never block rendering.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfigDefaults(cmd, &opts); err != nil {
				return err
			}
			if err := validateTreeOpts(cmd, &opts); err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runTree(cmd, input, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonFlat, "json", false, "output flat JSON, one object per package")
	cmd.Flags().BoolVar(&opts.jsonTree, "json-tree", false, "output nested JSON")
	cmd.Flags().BoolVar(&opts.mermaid, "mermaid", false, "output a Mermaid flowchart")
	cmd.Flags().StringVar(&opts.graphvizFormat, "graphviz-output", "", "output via Graphviz in the given format (dot, svg, png, ...)")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", opts.depth, "max display depth of the tree (negative = unbounded)")
	cmd.Flags().BoolVarP(&opts.listAll, "all", "a", false, "list all packages at top level, not only the ones nothing depends on")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "show the packages that depend on each package (text, mermaid, graphviz)")
	cmd.Flags().BoolVarP(&opts.freeze, "freeze", "f", false, "print tree in pip-freeze style exact pins")
	cmd.Flags().BoolVar(&opts.license, "license", false, "annotate each dependency with its license")
	cmd.Flags().StringVarP(&opts.encoding, "encoding", "e", opts.encoding, "text encoding; utf* selects the box-drawing tree")
	cmd.Flags().StringVarP(&opts.warn, "warn", "w", opts.warn, "warning handling: silence, suppress or fail")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to file instead of stdout")

	cmd.MarkFlagsMutuallyExclusive("json", "json-tree", "mermaid", "graphviz-output")
	cmd.MarkFlagsMutuallyExclusive("freeze", "license")

	return cmd
}

func validateTreeOpts(cmd *cobra.Command, opts *treeOpts) error {
	if cmd.Flags().Changed("depth") && opts.depth < 0 {
		return errors.New(errors.ErrCodeInvalidDepth, "depth must be non-negative, got %d", opts.depth)
	}
	switch opts.warn {
	case warnSilence, warnSuppress, warnFail:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid warn mode %q (must be %s, %s or %s)", opts.warn, warnSilence, warnSuppress, warnFail)
	}
	return nil
}

// runTree loads records, builds and validates the graph, and renders it.
func (c *CLI) runTree(cmd *cobra.Command, input string, opts *treeOpts) error {
	records, err := loadRecords(input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	g, diags := pkggraph.Build(records)
	prog.done(fmt.Sprintf("Built graph of %d packages", g.Len()))

	warned := false
	if opts.warn != warnSilence {
		warned = c.reportDiagnostics(diags)
		warned = c.reportConflicts(pkggraph.ConflictingDeps(g)) || warned
		warned = c.reportCycles(pkggraph.CyclicDeps(g)) || warned
	}

	out, err := renderOutput(cmd.Context(), g, opts)
	if err != nil {
		return err
	}
	if err := writeOutput(out, opts.output); err != nil {
		return err
	}

	if warned && opts.warn == warnFail {
		return errWarnings
	}
	return nil
}

func loadRecords(input string) ([]pkggraph.RawPackage, error) {
	if input == "" {
		return source.Load(os.Stdin)
	}
	return source.LoadFile(input)
}

// writeOutput writes the rendered payload to the output file, or stdout when
// no file was requested. Graphviz payloads may be binary; os.Stdout handles
// both.
func writeOutput(out []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
