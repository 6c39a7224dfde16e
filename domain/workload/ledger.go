package workload

import (
	"sort"

	"agent-activity/domain/ticket"

	lo "github.com/samber/lo"
)

// TimeLedger turns qualifying records into per-agent date-ordered hour entries,
// each agent closed by its average over its own dates.
func (p Policy) TimeLedger(qualifying []ticket.Enriched) []ticket.AgentLedger {
	groups := map[DayKey][]ticket.Enriched{}
	for _, r := range qualifying {
		if k, ok := dayKey(r); ok {
			groups[k] = append(groups[k], r)
		}
	}

	entries := make([]ticket.LedgerEntry, 0, len(groups))
	for k, rows := range groups {
		pts := points(rows)
		entries = append(entries, ticket.LedgerEntry{
			Date:   k.Date,
			Agent:  k.Agent,
			Points: pts,
			Hours:  p.Hours(pts),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Agent != entries[j].Agent {
			return entries[i].Agent < entries[j].Agent
		}
		return entries[i].Date.Before(entries[j].Date)
	})

	var out []ticket.AgentLedger
	for _, e := range entries {
		if len(out) == 0 || out[len(out)-1].Summary.Agent != e.Agent {
			out = append(out, ticket.AgentLedger{Summary: ticket.LedgerSummary{Agent: e.Agent}})
		}
		cur := &out[len(out)-1]
		cur.Entries = append(cur.Entries, e)
	}
	for i := range out {
		out[i].Summary.AverageHours = averageHours(out[i].Entries)
	}
	return out
}

func averageHours(entries []ticket.LedgerEntry) float64 {
	dates := lo.UniqBy(entries, func(e ticket.LedgerEntry) int64 { return e.Date.Unix() })
	if len(dates) == 0 {
		return 0
	}
	return Round1(lo.SumBy(entries, func(e ticket.LedgerEntry) float64 { return e.Hours }) / float64(len(dates)))
}

// TicketLedgers groups qualifying records by agent (stable, by name) with each agent's point total.
func TicketLedgers(qualifying []ticket.Enriched) []ticket.TicketLedger {
	byAgent := lo.GroupBy(qualifying, func(r ticket.Enriched) string { return r.Assignee })
	names := lo.Keys(byAgent)
	sort.Strings(names)

	return lo.Map(names, func(name string, _ int) ticket.TicketLedger {
		rows := byAgent[name]
		return ticket.TicketLedger{Agent: name, Tickets: rows, TotalPoints: points(rows)}
	})
}
