package convert

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ccsv "agent-activity/connectors/csv"
	"agent-activity/connectors/xlsx"
	dconfig "agent-activity/domain/config"
)

// Files converted by default, relative to the data directory.
var Files = []string{ccsv.AgentSummaryFile, ccsv.TimeLedgerFile}

// Run converts the report CSVs into .xlsx workbooks next to them.
func Run(cfg *dconfig.Config, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dataDir := fs.String("data", cfg.DataDir, "directory containing the report CSVs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := Files
	if fs.NArg() > 0 {
		files = fs.Args()
	}
	for _, name := range files {
		src := filepath.Join(*dataDir, name)
		dst := filepath.Join(*dataDir, strings.TrimSuffix(name, filepath.Ext(name))+".xlsx")
		if err := xlsx.ConvertCSV(src, dst); err != nil {
			slog.Error("convert.error", "csv", src, "error", err)
			return err
		}
		slog.Info("convert.done", "csv", src, "xlsx", dst)
	}
	return nil
}
