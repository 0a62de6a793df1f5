package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsExposure(t *testing.T) {
	IncCommandRun("query")
	IncCommandError("query")
	RowsLoaded.Add(12)
	IncHTTPRequest("/destinations", http.StatusOK)
	ObserveQuery(4, time.Now().Add(-1500*time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		`wayfare_command_runs_total{command="query"}`,
		`wayfare_command_errors_total{command="query"}`,
		"wayfare_rows_loaded_total",
		"wayfare_query_results",
		"wayfare_query_duration_seconds",
		`wayfare_http_requests_total{code="200",path="/destinations"}`,
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
