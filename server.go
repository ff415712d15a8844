package main

import (
	"fmt"
	"net/http"

	"github.com/larry-lu/research/internal/camel"
	"github.com/larry-lu/research/internal/geochron"
	"github.com/larry-lu/research/internal/httputil"
)

// Server previews a sample table: it renders the camel plot on demand as
// PNG or as an interactive HTML chart and exposes the table and its
// aggregate summary as JSON.
type Server struct {
	table geochron.Table
	style camel.Style
}

// NewServer creates a preview server for the given table.
func NewServer(table geochron.Table) *Server {
	return &Server{
		table: table,
		style: camel.DefaultStyle(),
	}
}

// ServeMux returns the route table.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.homeHandler)
	mux.HandleFunc("/plot.png", s.plotPNGHandler)
	mux.HandleFunc("/plot.html", s.plotHTMLHandler)
	mux.HandleFunc("/api/samples", s.listSamples)
	mux.HandleFunc("/api/summary", s.summaryHandler)
	return mux
}

func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<html><body><h1>Exposure ages (%d samples)</h1>
<ul>
<li><a href="/plot.png">camel plot (PNG)</a></li>
<li><a href="/plot.html">camel plot (interactive)</a></li>
<li><a href="/api/samples">sample table (JSON)</a></li>
<li><a href="/api/summary">aggregate summary (JSON)</a></li>
</ul></body></html>`, len(s.table))
}

// renderOptions derives render options from query parameters:
// overall=0 hides the combined density, exclude_blank=0 includes the
// blank in the aggregate mean.
func renderOptions(r *http.Request) camel.Options {
	opts := camel.DefaultOptions()
	if r.URL.Query().Get("overall") == "0" {
		opts.ShowCombinedDensity = false
	}
	if r.URL.Query().Get("exclude_blank") == "0" {
		opts.ExcludeBlankFromAggregate = false
	}
	return opts
}

func (s *Server) plotPNGHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pc := camel.NewPlotCanvas(s.style)
	if _, err := camel.Render(s.table, pc, renderOptions(r)); err != nil {
		http.Error(w, fmt.Sprintf("failed to render plot: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := pc.WriteTo(w, 12, 8, "png"); err != nil {
		http.Error(w, fmt.Sprintf("failed to write PNG: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) plotHTMLHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := camel.WriteHTML(s.table, renderOptions(r), w); err != nil {
		http.Error(w, fmt.Sprintf("failed to render chart: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) listSamples(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	type sampleJSON struct {
		Group       string  `json:"group"`
		Age         float64 `json:"age"`
		Uncertainty float64 `json:"uncertainty"`
	}
	out := make([]sampleJSON, len(s.table))
	for i, smp := range s.table {
		out[i] = sampleJSON{Group: smp.Group, Age: smp.Age, Uncertainty: smp.Uncertainty}
	}

	httputil.WriteJSONOK(w, out)
}

func (s *Server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	opts := renderOptions(r)
	sum, err := geochron.Aggregate(s.table, opts.ExcludeBlankFromAggregate)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to compute summary: %v", err))
		return
	}

	httputil.WriteJSONOK(w, struct {
		Mean        float64 `json:"mean"`
		Uncertainty float64 `json:"uncertainty"`
		Formatted   string  `json:"formatted"`
	}{sum.Mean, sum.Uncertainty, sum.String()})
}
