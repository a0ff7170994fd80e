package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/internal/genai"
	"github.com/mmynk/tripmate/internal/middleware"
	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage/sqlite"
	"github.com/mmynk/tripmate/pkg/api/apiconnect"
)

// fakeGenerator replies with a canned JSON document or error.
type fakeGenerator struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, _ string, _ *jsonschema.Definition, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.reply), out)
}

func (f *fakeGenerator) set(reply string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply, f.err = reply, err
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type testClients struct {
	expense   apiconnect.ExpenseServiceClient
	itinerary apiconnect.ItineraryServiceClient
	explorer  apiconnect.ExplorerServiceClient
}

// testTrip has three travelers so the A/B/C scenarios read naturally.
func testTrip() *config.Trip {
	trip := config.DefaultTrip()
	trip.Travelers = []models.Traveler{
		{ID: "A", Name: "Alice"},
		{ID: "B", Name: "Bob"},
		{ID: "C", Name: "Carol"},
	}
	return trip
}

// setupTestServer creates a test server backed by a temporary SQLite database.
func setupTestServer(t *testing.T, gen genai.Generator) (testClients, func()) {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	trip := testTrip()
	explorer := genai.NewExplorer(gen, trip.City, time.Minute)
	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.MetricsInterceptor())

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewExpenseServiceHandler(NewExpenseService(store, trip), interceptors))
	mux.Handle(apiconnect.NewItineraryServiceHandler(NewItineraryService(store, explorer, trip), interceptors))
	mux.Handle(apiconnect.NewExplorerServiceHandler(NewExplorerService(store, explorer), interceptors))

	server := httptest.NewServer(mux)

	clients := testClients{
		expense:   apiconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		itinerary: apiconnect.NewItineraryServiceClient(http.DefaultClient, server.URL),
		explorer:  apiconnect.NewExplorerServiceClient(http.DefaultClient, server.URL),
	}

	cleanup := func() {
		// Closing the store first ends any open watch streams.
		store.Close()
		server.Close()
		os.Remove(tmpFile.Name())
	}

	return clients, cleanup
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
