package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/flightgraph/pkg/graph"
	"github.com/matzehuels/flightgraph/pkg/observability"
	"github.com/matzehuels/flightgraph/pkg/pipeline"
	"github.com/matzehuels/flightgraph/pkg/render/scene"
)

const shutdownTimeout = 5 * time.Second

// site holds everything the scene server hands out. It is built once per
// run and never modified afterwards.
type site struct {
	page        []byte
	contentType string
	graph       []byte
	layout      []byte
	metrics     http.Handler
}

// newSite prepares the served documents from a finished pipeline run.
// Scene runs serve the interactive page; node-link runs serve the SVG.
func newSite(ctx context.Context, result *pipeline.Result, opts pipeline.Options, metrics http.Handler) (*site, error) {
	s := &site{metrics: metrics}

	var err error
	if s.graph, err = graph.MarshalGraph(result.Graph); err != nil {
		return nil, err
	}
	if s.layout, err = graph.MarshalLayout(pipeline.ExportLayout(result.Layout, opts, result.RunID)); err != nil {
		return nil, err
	}

	if result.Scene != nil {
		if page, ok := result.Artifacts[pipeline.FormatHTML]; ok {
			s.page = page
		} else if s.page, err = scene.RenderHTML(result.Scene, scene.Options{Title: opts.Title}); err != nil {
			return nil, err
		}
		s.contentType = "text/html; charset=utf-8"
		return s, nil
	}

	if svg, ok := result.Artifacts[pipeline.FormatSVG]; ok {
		s.page = svg
	} else {
		svgOpts := opts
		svgOpts.Formats = []string{pipeline.FormatSVG}
		artifacts, err := pipeline.RenderNodelink(ctx, result.Graph, result.Layout, svgOpts, result.RunID)
		if err != nil {
			return nil, err
		}
		s.page = artifacts[pipeline.FormatSVG]
	}
	s.contentType = "image/svg+xml"
	return s, nil
}

// router wires the site's routes.
func (s *site) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(instrument)

	r.Get("/", s.blob(s.page, s.contentType))
	r.Get("/graph.json", s.blob(s.graph, "application/json"))
	r.Get("/layout.json", s.blob(s.layout, "application/json"))
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

func (s *site) blob(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
	}
}

// instrument reports every request to the registered server hooks,
// labelled by its route pattern.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnRequest(r.Context(), r.Method, route)
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

// serve listens on addr and blocks until ctx is cancelled, then shuts the
// server down gracefully. ready, if non-nil, receives the bound address.
func (c *CLI) serve(ctx context.Context, addr string, s *site, ready chan<- string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	bound := ln.Addr().String()
	c.Logger.Debug("serving", "addr", bound)
	printInfo(c.Out, "Open %s", StyleLink.Render("http://"+bound+"/"))
	if ready != nil {
		ready <- bound
	}

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	c.Logger.Info("server stopped")
	return nil
}
