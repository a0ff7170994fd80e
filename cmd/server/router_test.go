package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/internal/genai"
	"github.com/mmynk/tripmate/internal/storage/sqlite"
	"github.com/mmynk/tripmate/pkg/api"
	"github.com/mmynk/tripmate/pkg/api/apiconnect"
)

func setupRouter(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	staticDir := filepath.Join(dir, "static")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		t.Fatalf("failed to create static dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>trip</h1>"), 0o644); err != nil {
		t.Fatalf("failed to write index.html: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('hi')"), 0o644); err != nil {
		t.Fatalf("failed to write app.js: %v", err)
	}

	store, err := sqlite.New(filepath.Join(dir, "trip.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	trip := config.DefaultTrip()
	handler, err := newRouter(staticDir, store, trip, genai.NewExplorer(genai.Disabled{}, trip.City, 0))
	if err != nil {
		t.Fatalf("newRouter() error = %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading %s: %v", url, err)
	}
	return resp.StatusCode, string(body)
}

func TestRouter_Static(t *testing.T) {
	server := setupRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "root serves index", path: "/", wantStatus: http.StatusOK, wantBody: "<h1>trip</h1>"},
		{name: "existing file", path: "/app.js", wantStatus: http.StatusOK, wantBody: "console.log"},
		{name: "unknown path falls back to index", path: "/itinerary/day/2", wantStatus: http.StatusOK, wantBody: "<h1>trip</h1>"},
		{name: "unknown procedure", path: "/tripmate.v1.NopeService/Nope", wantStatus: http.StatusNotFound},
		{name: "healthz", path: "/healthz", wantStatus: http.StatusOK, wantBody: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, server.URL+tt.path)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(body, tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", body, tt.wantBody)
			}
		})
	}
}

func TestRouter_ConnectAndMetrics(t *testing.T) {
	server := setupRouter(t)

	client := apiconnect.NewExpenseServiceClient(http.DefaultClient, server.URL)
	resp, err := client.ListTravelers(context.Background(), connect.NewRequest(&api.ListTravelersRequest{}))
	if err != nil {
		t.Fatalf("ListTravelers failed: %v", err)
	}
	if len(resp.Msg.Travelers) != 2 {
		t.Errorf("expected the 2 default travelers, got %d", len(resp.Msg.Travelers))
	}

	status, body := get(t, server.URL+"/metrics")
	if status != http.StatusOK {
		t.Fatalf("metrics status = %d", status)
	}
	if !strings.Contains(body, "tripmate_rpc_requests_total") {
		t.Error("expected RPC counter in /metrics output")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := setupRouter(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+apiconnect.ExpenseServiceGetBalancesProcedure, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, Connect-Protocol-Version")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight failed: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
