package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/pipgraph/pipgraph/pkg/pkggraph"
	"github.com/pipgraph/pipgraph/pkg/render"
)

const indexPage = `<!DOCTYPE html>
<html>
<head><title>pipgraph</title></head>
<body>
<h1>pipgraph</h1>
<ul>
<li><a href="/graph.svg">graph.svg</a> &mdash; Graphviz rendering</li>
<li><a href="/graph.mmd">graph.mmd</a> &mdash; Mermaid flowchart source</li>
<li><a href="/packages.json">packages.json</a> &mdash; flat package listing</li>
</ul>
</body>
</html>
`

// serveCommand creates the serve command: a local read-only HTTP viewer over
// the dependency graph. The graph is built once at startup; every endpoint
// renders from that immutable snapshot.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [records.json]",
		Short: "Serve rendered views of the dependency graph over HTTP",
		Long: `Serve starts a local HTTP server with rendered views of the
dependency graph: an SVG rendering, the Mermaid flowchart source, and the
flat JSON package listing.

Records are read once at startup from the given JSON file or stdin.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			records, err := loadRecords(input)
			if err != nil {
				return err
			}
			g, diags := pkggraph.Build(records)
			c.reportDiagnostics(diags)
			return c.runServe(cmd.Context(), g, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7877", "listen address")

	return cmd
}

// runServe blocks until the context is cancelled or the server fails.
func (c *CLI) runServe(ctx context.Context, g *pkggraph.DependencyGraph, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.serveHandler(g),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	c.Logger.Infof("Serving %d packages on http://%s", g.Len(), addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// serveHandler builds the chi router for the viewer endpoints.
func (c *CLI) serveHandler(g *pkggraph.DependencyGraph) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexPage)
	})

	r.Get("/graph.svg", func(w http.ResponseWriter, req *http.Request) {
		svg, err := render.Graphviz(req.Context(), g, "svg", false)
		if err != nil {
			c.Logger.Errorf("render svg: %v", err)
			http.Error(w, "rendering backend unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	})

	r.Get("/graph.mmd", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, render.Mermaid(g))
	})

	r.Get("/packages.json", func(w http.ResponseWriter, _ *http.Request) {
		out, err := render.JSONFlat(g)
		if err != nil {
			http.Error(w, "encoding failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, out)
	})

	return r
}
