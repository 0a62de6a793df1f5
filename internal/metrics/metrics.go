package metrics

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfare_command_runs_total",
		Help: "Total CLI command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfare_command_errors_total",
		Help: "Total CLI command errors",
	}, []string{"command"})
	RowsLoaded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wayfare_rows_loaded_total",
		Help: "Destinations imported from CSV",
	})
	QueryResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "wayfare_query_results",
		Help:    "Number of destinations returned per query",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})
	QueryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "wayfare_query_duration_seconds",
		Help:    "Filter and score duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfare_http_requests_total",
		Help: "HTTP requests by path and status code",
	}, []string{"path", "code"})
)

func init() {
	prometheus.MustRegister(CommandRuns, CommandErrors, RowsLoaded, QueryResults, QueryDuration, HTTPRequests)
}

// Handler serves the default registry.
func Handler() http.Handler { return promhttp.Handler() }

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
// An empty addr falls back to METRICS_ADDR; if both are empty nothing starts.
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, mux) }()
}

func IncCommandRun(cmd string)   { CommandRuns.WithLabelValues(cmd).Inc() }
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }

// ObserveQuery records the result count and duration of one filter-and-score run.
func ObserveQuery(results int, start time.Time) {
	QueryResults.Observe(float64(results))
	QueryDuration.Observe(time.Since(start).Seconds())
}

// IncHTTPRequest counts a served request.
func IncHTTPRequest(path string, code int) {
	HTTPRequests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}
