package web

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	ccsv "agent-activity/connectors/csv"
	"agent-activity/connectors/metrics"
	dconfig "agent-activity/domain/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run starts a small Echo web server exposing the report CSVs as JSON.
//
// Usage:
//
//	agent-activity web [-addr :8080] [-data ./data]
//
// Endpoints:
//
//	GET /api/agents               -> <data>/aggregated_data.csv
//	GET /api/time                 -> <data>/calculate_time.csv
//	GET /api/tickets              -> <data>/complexity_data.csv
//	GET /api/tickets/individual   -> <data>/individual_complexity_data.csv
//	GET /metrics                  -> request counters, Go and process metrics of this server
func Run(cfg *dconfig.Config, args []string) error {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "http listen address (host:port)")
	dataDir := fs.String("data", cfg.DataDir, "directory containing CSV files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return NewServer(*dataDir).Start(*addr)
}

// NewServer builds the Echo instance serving files from dataDir.
func NewServer(dataDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Helper to register a GET endpoint serving a specific CSV file
	serveCSV := func(route string, filename string) {
		e.GET(route, func(c echo.Context) error {
			respond := func(code int, body any) error {
				metrics.APIRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
				return c.JSON(code, body)
			}
			path := filepath.Join(dataDir, filename)
			rows, err := ccsv.ReadRows(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return respond(http.StatusNotFound, map[string]any{
						"error":   "file not found",
						"path":    path,
						"message": "CSV file is missing, run calculate first",
					})
				}
				slog.Error("web.csv.read.error", "path", path, "error", err)
				return respond(http.StatusInternalServerError, map[string]any{
					"error":   err.Error(),
					"path":    path,
					"message": "failed to read CSV",
				})
			}
			return respond(http.StatusOK, rows)
		})
	}

	serveCSV("/api/agents", ccsv.AgentSummaryFile)
	serveCSV("/api/time", ccsv.TimeLedgerFile)
	serveCSV("/api/tickets", ccsv.EnrichedFile)
	serveCSV("/api/tickets/individual", ccsv.TicketLedgerFile)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	return e
}
