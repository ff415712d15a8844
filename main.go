// Preview server for camel plots. It loads a sample table once at
// startup and serves the rendered plot (PNG and interactive HTML) plus
// the underlying data as JSON.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/larry-lu/research/internal/geochron"
	"github.com/larry-lu/research/internal/version"
)

var (
	samples = flag.String("samples", "samples.csv", "Path to the sample table CSV (group,age,uncertainty)")
	listen  = flag.String("listen", ":8080", "Listen address")
)

func main() {
	flag.Parse()

	if *listen == "" {
		log.Fatal("Listen address is required")
	}
	log.Printf("camel plot preview %s (%s)", version.Version, version.GitSHA)

	table, err := geochron.LoadTable(*samples)
	if err != nil {
		log.Fatalf("failed to load sample table: %v", err)
	}
	log.Printf("loaded %d samples from %s", len(table), *samples)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := NewServer(table).ServeMux()
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("got request %q", r.URL.Path)
		mux.ServeHTTP(w, r)
	})

	server := &http.Server{
		Addr:    *listen,
		Handler: h,
	}

	// Start server in a goroutine so it doesn't block
	go func() {
		log.Printf("listening on %s", *listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for context cancellation to shut down server
	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Printf("Graceful shutdown complete")
}
