package workload

import (
	"agent-activity/domain/complexity"
	"agent-activity/domain/ticket"

	lo "github.com/samber/lo"
)

// Stats are run counters reported after a calculation.
type Stats struct {
	Records        int
	Unclassified   int
	Undated        int
	Qualifying     int
	QualifyingDays int
	Agents         int
}

// Report is everything one pipeline run produces.
type Report struct {
	Enriched     []ticket.Enriched
	Qualifying   []ticket.Enriched
	Agents       []ticket.AgentSummary
	TimeLedger   []ticket.AgentLedger
	TicketLedger []ticket.TicketLedger
	Stats        Stats
}

// Build runs enrichment, the daily filter and every aggregator over records.
func Build(c *complexity.Classifier, p Policy, records []ticket.Record) Report {
	enriched := Enrich(c, records)
	qualifying := p.FilterQualifying(enriched)
	agents := p.SummarizeAgents(enriched)

	return Report{
		Enriched:     enriched,
		Qualifying:   qualifying,
		Agents:       agents,
		TimeLedger:   p.TimeLedger(qualifying),
		TicketLedger: TicketLedgers(qualifying),
		Stats: Stats{
			Records:        len(records),
			Unclassified:   lo.CountBy(enriched, func(e ticket.Enriched) bool { return !e.Classified() }),
			Undated:        lo.CountBy(records, func(r ticket.Record) bool { return r.SolvedDate == nil }),
			Qualifying:     len(qualifying),
			QualifyingDays: p.QualifyingDays(enriched),
			Agents:         len(agents),
		},
	}
}
