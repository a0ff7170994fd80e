package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"connectrpc.com/connect"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/internal/genai"
	"github.com/mmynk/tripmate/internal/middleware"
	"github.com/mmynk/tripmate/internal/service"
	"github.com/mmynk/tripmate/internal/storage"
	"github.com/mmynk/tripmate/pkg/api/apiconnect"
)

// apiPrefix is shared by every Connect procedure path.
const apiPrefix = "/tripmate.v1."

// newRouter mounts the Connect services, health and metrics endpoints and static files.
func newRouter(staticPath string, store storage.Store, trip *config.Trip, explorer *genai.Explorer) (http.Handler, error) {
	staticDir, err := filepath.Abs(staticPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)

	opts := []connect.HandlerOption{
		connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.MetricsInterceptor()),
		connect.WithRecover(recoverPanic),
	}

	r := mux.NewRouter()

	// Register Connect services
	expensePath, expenseHandler := apiconnect.NewExpenseServiceHandler(service.NewExpenseService(store, trip), opts...)
	r.PathPrefix(expensePath).Handler(expenseHandler)

	itineraryPath, itineraryHandler := apiconnect.NewItineraryServiceHandler(service.NewItineraryService(store, explorer, trip), opts...)
	r.PathPrefix(itineraryPath).Handler(itineraryHandler)

	explorerPath, explorerHandler := apiconnect.NewExplorerServiceHandler(service.NewExplorerService(store, explorer), opts...)
	r.PathPrefix(explorerPath).Handler(explorerHandler)

	r.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Handle all non-API routes with static file server
	r.PathPrefix("/").Handler(staticHandler(staticDir))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
	})
	return c.Handler(r), nil
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func staticHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unknown procedures are not pages.
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))

		// For SPA-like behavior, serve index.html for unknown paths
		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
}

func recoverPanic(ctx context.Context, spec connect.Spec, _ http.Header, p any) error {
	slog.ErrorContext(ctx, "RPC panic", "procedure", spec.Procedure, "panic", p)
	return connect.NewError(connect.CodeInternal, fmt.Errorf("internal error"))
}
