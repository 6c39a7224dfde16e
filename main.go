package main

import (
	"fmt"
	"log/slog"
	"os"

	cmdcalculate "agent-activity/command/calculate"
	cmdconvert "agent-activity/command/convert"
	cmdimport "agent-activity/command/import"
	cmdweb "agent-activity/command/web"
	"agent-activity/connectors/config"
	dconfig "agent-activity/domain/config"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Help-desk agent activity reporter.
// Usage:
//   agent-activity import -in export.xlsx      # normalize a raw export into data/ticket_data.csv
//   agent-activity calculate                   # complexity, workload and time ledger CSVs in data/
//   agent-activity convert                     # aggregated_data / calculate_time -> .xlsx
//   agent-activity web [-addr :8080]           # serve the reports as JSON
// Notes:
// - CONFIG_PATH points to a YAML config file (default ./config.yml); a .env file is loaded when present.
// - LOG_LEVEL overrides log.level from the config.

type command func(cfg *dconfig.Config, args []string) error

var commands = map[string]command{
	"import":    cmdimport.Run,
	"calculate": cmdcalculate.Run,
	"convert":   cmdconvert.Run,
	"web":       cmdweb.Run,
}

func main() {
	_ = godotenv.Load(".env")

	args := os.Args
	if len(args) < 2 || commands[args[1]] == nil {
		fmt.Fprintln(os.Stderr, "usage: agent-activity import -in <export.csv|export.xlsx> [-sheet <name>] | calculate [-in <csv>] [-push-url <url>] | convert | web [-addr :8080] [-data ./data]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
		os.Exit(2)
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel(cfg.Log.Level)})
	slog.SetDefault(slog.New(h).With("run_id", uuid.NewString(), "command", args[1]))

	if err := commands[args[1]](cfg, append([]string{}, args[2:]...)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
