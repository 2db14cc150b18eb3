package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arx-os/museum-editor/internal/history"
	"github.com/arx-os/museum-editor/internal/validation"
)

// metricsAddr is empty by default: the /metrics endpoint only starts when
// a caller opts in, the way the teacher's daemon keeps its metrics server
// optional (internal/daemon/metrics_server.go).
var metricsAddr string

// startMetricsServer registers the validation and history counters into a
// dedicated registry (avoiding collisions with the global one in tests)
// and serves them on metricsAddr until ctx is done.
func startMetricsServer(ctx context.Context, addr string) (*http.Server, error) {
	reg := prometheus.NewRegistry()
	if err := validation.Register(reg); err != nil {
		return nil, fmt.Errorf("register validation metrics: %w", err)
	}
	if err := history.Register(reg); err != nil {
		return nil, fmt.Errorf("register history metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		server.Close()
	}()
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintln(os.Stderr, "planeditor: metrics server:", err)
		}
	}()
	return server, nil
}
