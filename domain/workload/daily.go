package workload

import (
	"time"

	"agent-activity/domain/ticket"

	lo "github.com/samber/lo"
)

// DayKey identifies one agent's activity on one date.
type DayKey struct {
	Date  time.Time
	Agent string
}

// DailyTotals sums tickets solved per (date, agent). Undated records and records
// without an assignee are not part of any group.
func DailyTotals(records []ticket.Enriched) map[DayKey]int {
	totals := map[DayKey]int{}
	for _, r := range records {
		k, ok := dayKey(r)
		if !ok {
			continue
		}
		totals[k] += r.TicketsSolved
	}
	return totals
}

// FilterQualifying keeps the records whose (date, agent) group qualifies, in input order.
func (p Policy) FilterQualifying(records []ticket.Enriched) []ticket.Enriched {
	totals := DailyTotals(records)
	return lo.Filter(records, func(r ticket.Enriched, _ int) bool {
		k, ok := dayKey(r)
		return ok && p.Qualifies(totals[k])
	})
}

// DaysWorked counts qualifying dates per assignee and applies the name-keyed adjustments.
// Every assignee in records gets an entry, possibly zero or negative.
func (p Policy) DaysWorked(records []ticket.Enriched) map[string]float64 {
	days := map[string]float64{}
	for _, r := range records {
		if _, ok := days[r.Assignee]; !ok && r.Assignee != "" {
			days[r.Assignee] = 0
		}
	}
	for k, total := range DailyTotals(records) {
		if p.Qualifies(total) {
			days[k.Agent]++
		}
	}
	for name, delta := range p.DayAdjustments {
		if _, ok := days[name]; ok {
			days[name] += delta
		}
	}
	return days
}

// QualifyingDays counts (date, agent) groups above the threshold.
func (p Policy) QualifyingDays(records []ticket.Enriched) int {
	return lo.CountBy(lo.Values(DailyTotals(records)), p.Qualifies)
}

func dayKey(r ticket.Enriched) (DayKey, bool) {
	if r.SolvedDate == nil || r.Assignee == "" {
		return DayKey{}, false
	}
	return DayKey{Date: *r.SolvedDate, Agent: r.Assignee}, true
}
