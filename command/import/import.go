package cmdimport

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ccsv "agent-activity/connectors/csv"
	"agent-activity/connectors/metrics"
	"agent-activity/connectors/xlsx"
	dconfig "agent-activity/domain/config"
)

// Run executes the import subcommand: it reads a raw help-desk export (CSV or XLSX),
// checks the schema and writes the normalized ticket table used by calculate.
func Run(cfg *dconfig.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	in := fs.String("in", "", "help-desk export to import (.csv or .xlsx)")
	sheet := fs.String("sheet", "", "worksheet to read from an .xlsx export (default: first sheet)")
	dataDir := fs.String("data", cfg.DataDir, "directory to write ticket_data.csv into")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		fmt.Fprintln(os.Stderr, "-in is required")
		slog.Error("import.validation.error", "reason", "missing in")
		return fmt.Errorf("missing required -in")
	}

	slog.Info("import.start", "in", *in, "sheet", *sheet, "data", *dataDir)

	tf, err := readExport(*in, *sheet)
	if err != nil {
		slog.Error("import.read.error", "path", *in, "error", err)
		return err
	}
	for _, issue := range tf.Issues {
		slog.Warn("import.record.issue", "kind", metrics.IssueKind(issue), "error", issue)
	}

	out := filepath.Join(*dataDir, ccsv.TicketsFile)
	if err := ccsv.WriteTickets(out, tf.Records); err != nil {
		slog.Error("import.csv.write.error", "path", out, "error", err)
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	slog.Info("import.done", "records", len(tf.Records), "issues", len(tf.Issues), "output", out)
	return nil
}

func readExport(path, sheet string) (*ccsv.TicketFile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		header, rows, err := xlsx.ReadSheet(path, sheet)
		if err != nil {
			return nil, err
		}
		return ccsv.DecodeTickets(filepath.Base(path), header, rows)
	default:
		return ccsv.ReadTickets(path)
	}
}
