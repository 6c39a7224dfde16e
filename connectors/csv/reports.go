package csv

import (
	"strconv"

	"agent-activity/domain/ticket"
)

// Output file names in the data directory.
const (
	TicketsFile      = "ticket_data.csv"
	EnrichedFile     = "complexity_data.csv"
	TicketLedgerFile = "individual_complexity_data.csv"
	AgentSummaryFile = "aggregated_data.csv"
	TimeLedgerFile   = "calculate_time.csv"

	averageRowLabel = "Average"
	totalRowLabel   = "Total"
)

// WriteEnriched writes every record with its classification.
func WriteEnriched(path string, records []ticket.Enriched) error {
	headers := append(append([]string{}, ticket.Columns...), "Complexity", "Complexity Category", "Complexity Source")
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID,
			r.Group,
			r.Subject,
			r.Product,
			r.Assignee,
			strconv.Itoa(r.TicketsSolved),
			r.ActionTaken,
			formatDate(r.SolvedDate),
			formatScore(r.Score),
			string(r.Category),
			r.Source,
		})
	}
	return writeCSV(path, headers, rows)
}

// WriteTicketLedger writes qualifying tickets per agent, each block closed by a
// Total row and a blank row.
func WriteTicketLedger(path string, ledgers []ticket.TicketLedger) error {
	headers := []string{"Date", "Ticket #", "Agent", "Source", "Points", "Complexity Category"}
	var rows [][]string
	for _, l := range ledgers {
		for _, t := range l.Tickets {
			rows = append(rows, []string{formatDate(t.SolvedDate), t.ID, t.Assignee, t.Source, formatScore(t.Score), string(t.Category)})
		}
		rows = append(rows,
			[]string{"", totalRowLabel, l.Agent, "", formatFloat1(l.TotalPoints), ""},
			make([]string, len(headers)),
		)
	}
	return writeCSV(path, headers, rows)
}

// WriteAgentSummaries writes the per-agent report.
func WriteAgentSummaries(path string, summaries []ticket.AgentSummary) error {
	headers := []string{
		"Assignee Name",
		"Total Tickets Solved",
		"Total Days Worked",
		"Daily Solved Ticket Average",
		"Mean Complexity Score",
		"Mean Complexity Category",
	}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Assignee,
			strconv.Itoa(s.TotalTickets),
			strconv.FormatFloat(s.DaysWorked, 'f', -1, 64),
			formatFloat1(s.DailyAverage),
			formatScore(s.MeanComplexity),
			string(s.MeanCategory),
		})
	}
	return writeCSV(path, headers, rows)
}

// WriteTimeLedger writes per-agent hours by date with an Average row and a blank row after each agent.
func WriteTimeLedger(path string, ledgers []ticket.AgentLedger) error {
	headers := []string{"Date", "Agent", "Hours"}
	var rows [][]string
	for _, l := range ledgers {
		for _, e := range l.Entries {
			rows = append(rows, []string{formatDate(&e.Date), e.Agent, formatFloat1(e.Hours)})
		}
		rows = append(rows,
			[]string{averageRowLabel, l.Summary.Agent, formatFloat1(l.Summary.AverageHours)},
			make([]string, len(headers)),
		)
	}
	return writeCSV(path, headers, rows)
}

func formatScore(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat1(*v)
}

func formatFloat1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
