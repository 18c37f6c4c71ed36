package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"
)

var (
	defaultReadTimeout       = 15 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

// ContentService defines the interface for accessing the demo content.
type ContentService interface {
	// Write appends text as one line to the stored content.
	Write(ctx context.Context, text string) error

	// Read returns the full accumulated content, empty if never written.
	Read(ctx context.Context) (string, error)

	// LogsHint returns the static operator guidance string.
	LogsHint() string
}

// NewServer returns a new http.Server configured with the demo API endpoints.
// It sets up proper routing, timeouts, and integrates with the provided
// content service.
func NewServer(
	ctx context.Context,
	addr string,
	contentSvc ContentService,
	logger *slog.Logger,
) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealthz())
	mux.HandleFunc("GET /{$}", handleIndex())
	mux.HandleFunc("POST /write", handleWrite(contentSvc))
	mux.HandleFunc("GET /read", handleRead(contentSvc))
	mux.HandleFunc("GET /logs", handleLogs(contentSvc))

	var handler http.Handler = mux
	handler = logRequests(handler, logger)
	handler = withRequestID(handler)

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       defaultReadTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

func handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}
