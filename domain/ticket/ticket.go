package ticket

import "time"

// Input column headers of the help-desk export.
const (
	ColTicketID      = "Ticket ID"
	ColGroup         = "Ticket group"
	ColSubject       = "Ticket subject"
	ColProduct       = "Product - Service Desk Tool"
	ColAssignee      = "Assignee name"
	ColTicketsSolved = "Tickets solved"
	ColActionTaken   = "Action Taken to Resolve"
	ColSolvedDate    = "Ticket solved - Date"
)

// RequiredColumns must all be present in an export for it to load.
var RequiredColumns = []string{
	ColGroup,
	ColSubject,
	ColProduct,
	ColAssignee,
	ColTicketsSolved,
	ColActionTaken,
	ColSolvedDate,
}

// Columns is the normalized column order used by import.
var Columns = append([]string{ColTicketID}, RequiredColumns...)

// Record is one row of the help-desk export.
// Empty strings mean the field was absent in the export.
type Record struct {
	Line          int
	ID            string
	Group         string
	Subject       string
	Product       string
	Assignee      string
	TicketsSolved int
	ActionTaken   string
	SolvedDate    *time.Time // nil when missing or unparseable
}

// Category is the coarse complexity bucket.
type Category string

const (
	Low    Category = "Low"
	Medium Category = "Medium"
	High   Category = "High"
)

// Enriched is a Record with its complexity classification.
// Score is nil when the record could not be classified.
type Enriched struct {
	Record
	Score    *float64
	Category Category
	Source   string
}

// Classified reports whether a score was assigned.
func (e Enriched) Classified() bool { return e.Score != nil }

// AgentSummary is one row of the per-agent report.
type AgentSummary struct {
	Assignee       string
	TotalTickets   int
	DaysWorked     float64
	DailyAverage   float64
	MeanComplexity *float64
	MeanCategory   Category
}

// LedgerEntry holds the hours derived for one agent on one date.
type LedgerEntry struct {
	Date   time.Time
	Agent  string
	Points float64
	Hours  float64
}

// LedgerSummary is the per-agent average appended after its entries.
type LedgerSummary struct {
	Agent        string
	AverageHours float64
}

// AgentLedger groups one agent's date-ordered entries with their summary.
type AgentLedger struct {
	Entries []LedgerEntry
	Summary LedgerSummary
}

// TicketLedger is one agent's block of qualifying tickets with its point total.
type TicketLedger struct {
	Agent       string
	Tickets     []Enriched
	TotalPoints float64
}
