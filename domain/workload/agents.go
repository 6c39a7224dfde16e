package workload

import (
	"sort"

	"agent-activity/domain/complexity"
	"agent-activity/domain/ticket"

	lo "github.com/samber/lo"
)

// SummarizeAgents builds one AgentSummary per assignee, ordered by name.
// Ticket totals and mean complexity use every record; work days come from DaysWorked.
func (p Policy) SummarizeAgents(records []ticket.Enriched) []ticket.AgentSummary {
	days := p.DaysWorked(records)
	byAgent := lo.GroupBy(lo.Filter(records, func(r ticket.Enriched, _ int) bool { return r.Assignee != "" }),
		func(r ticket.Enriched) string { return r.Assignee })

	names := lo.Keys(byAgent)
	sort.Strings(names)

	out := make([]ticket.AgentSummary, 0, len(names))
	for _, name := range names {
		rows := byAgent[name]
		total := lo.SumBy(rows, func(r ticket.Enriched) int { return r.TicketsSolved })
		worked := days[name]
		divisor := worked
		if divisor == 0 {
			divisor = 1
		}
		s := ticket.AgentSummary{
			Assignee:     name,
			TotalTickets: total,
			DaysWorked:   worked,
			DailyAverage: Round1(float64(total) / divisor),
		}
		if sc := scores(rows); len(sc) > 0 {
			mean := Round1(lo.Sum(sc) / float64(len(sc)))
			s.MeanComplexity = &mean
			s.MeanCategory = complexity.Categorize(mean)
		}
		out = append(out, s)
	}
	return out
}
