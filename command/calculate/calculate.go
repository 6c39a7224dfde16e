package calculate

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	ccsv "agent-activity/connectors/csv"
	"agent-activity/connectors/metrics"
	"agent-activity/domain/complexity"
	dconfig "agent-activity/domain/config"
	"agent-activity/domain/workload"

	lo "github.com/samber/lo"
)

// Run executes the calculate command: read the ticket export, classify, aggregate
// and write every report CSV into the data directory.
//
// Usage:
//
//	agent-activity calculate [-in ./data/ticket_data.csv] [-data ./data] [-push-url http://localhost:9091]
func Run(cfg *dconfig.Config, args []string) error {
	fs := flag.NewFlagSet("calculate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	in := fs.String("in", cfg.InputPath(), "ticket export CSV")
	dataDir := fs.String("data", cfg.DataDir, "directory for the report CSVs")
	pushURL := fs.String("push-url", cfg.PushURL, "Pushgateway URL to push run metrics to (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("calculate: unexpected arguments %v", fs.Args())
	}

	slog.Info("calculate.start", "in", *in, "data", *dataDir)
	start := time.Now()

	tf, err := ccsv.ReadTickets(*in)
	if err != nil {
		slog.Error("calculate.read.error", "path", *in, "error", err)
		return err
	}
	logIssues(tf.Issues)

	rep := workload.Build(complexity.NewClassifier(cfg.Rules.WithDefaults()), cfg.Policy.WithDefaults(), tf.Records)
	for _, e := range rep.Enriched {
		slog.Debug("ticket.classified", "ticket_id", e.ID, "assignee", e.Assignee, "category", e.Category, "source", e.Source, "classified", e.Classified(), "points", lo.FromPtr(e.Score))
	}

	if err := WriteReport(*dataDir, rep); err != nil {
		slog.Error("calculate.write.error", "data", *dataDir, "error", err)
		return err
	}

	metrics.ObserveRun(rep.Stats, tf.Issues, time.Since(start))
	if *pushURL != "" {
		if err := metrics.Push(*pushURL); err != nil {
			slog.Warn("calculate.metrics.push.error", "url", *pushURL, "error", err)
		}
	}

	slog.Info("calculate.done",
		"records", rep.Stats.Records,
		"unclassified", rep.Stats.Unclassified,
		"undated", rep.Stats.Undated,
		"qualifying", rep.Stats.Qualifying,
		"qualifying_days", rep.Stats.QualifyingDays,
		"agents", rep.Stats.Agents,
		"elapsed", time.Since(start))
	return nil
}

// WriteReport writes the four report CSVs of rep into dir.
func WriteReport(dir string, rep workload.Report) error {
	if err := ccsv.WriteEnriched(filepath.Join(dir, ccsv.EnrichedFile), rep.Enriched); err != nil {
		return err
	}
	if err := ccsv.WriteTicketLedger(filepath.Join(dir, ccsv.TicketLedgerFile), rep.TicketLedger); err != nil {
		return err
	}
	if err := ccsv.WriteAgentSummaries(filepath.Join(dir, ccsv.AgentSummaryFile), rep.Agents); err != nil {
		return err
	}
	return ccsv.WriteTimeLedger(filepath.Join(dir, ccsv.TimeLedgerFile), rep.TimeLedger)
}

// logIssues reports soft row errors: each one at debug, counts per kind at warn.
func logIssues(issues []error) {
	for _, err := range issues {
		slog.Debug("tickets.record.issue", "kind", metrics.IssueKind(err), "error", err)
	}
	for kind, n := range lo.CountValuesBy(issues, metrics.IssueKind) {
		slog.Warn("tickets.record.issues", "kind", kind, "count", n)
	}
}
