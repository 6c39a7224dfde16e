package workload_test

import (
	"testing"
	"time"

	"agent-activity/domain/complexity"
	"agent-activity/domain/ticket"
	"agent-activity/domain/workload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// rec builds a record scoring 25 (default rule) unless product or group say otherwise.
func rec(agent, date string, solved int) ticket.Record {
	r := ticket.Record{
		Group:         "Service Desk",
		Subject:       "Monitor flicker",
		Product:       "Hardware",
		Assignee:      agent,
		TicketsSolved: solved,
	}
	if date != "" {
		r.SolvedDate = day(date)
	}
	return r
}

func withProduct(r ticket.Record, product string) ticket.Record {
	r.Product = product
	return r
}

func withAction(r ticket.Record, action string) ticket.Record {
	r.ActionTaken = action
	return r
}

func repeat(r ticket.Record, n int) []ticket.Record {
	out := make([]ticket.Record, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func enrich(records []ticket.Record) []ticket.Enriched {
	return workload.Enrich(complexity.NewClassifier(complexity.DefaultRules()), records)
}

func TestEndToEnd_AgentSummary(t *testing.T) {
	var records []ticket.Record
	records = append(records, repeat(rec("A", "2024-01-01", 1), 3)...)
	records = append(records, repeat(rec("A", "2024-01-02", 1), 6)...)

	rep := workload.Build(complexity.NewClassifier(complexity.DefaultRules()), workload.DefaultPolicy(), records)

	require.Len(t, rep.Agents, 1)
	a := rep.Agents[0]
	assert.Equal(t, "A", a.Assignee)
	assert.Equal(t, 9, a.TotalTickets)
	assert.Equal(t, 1.0, a.DaysWorked)
	assert.Equal(t, 9.0, a.DailyAverage)
	require.NotNil(t, a.MeanComplexity)
	assert.Equal(t, 25.0, *a.MeanComplexity)
	assert.Equal(t, ticket.Medium, a.MeanCategory)

	assert.Len(t, rep.Qualifying, 6)
	assert.Equal(t, workload.Stats{Records: 9, Qualifying: 6, QualifyingDays: 1, Agents: 1}, rep.Stats)
}

func TestPolicy_Qualification(t *testing.T) {
	p := workload.DefaultPolicy()
	records := enrich([]ticket.Record{
		rec("A", "2024-01-01", 6),
		rec("A", "2024-01-02", 5),
		rec("A", "2024-01-03", 2),
		rec("A", "2024-01-03", 4),
	})

	assert.True(t, p.Qualifies(6))
	assert.False(t, p.Qualifies(5))

	totals := workload.DailyTotals(records)
	assert.Equal(t, 6, totals[workload.DayKey{Date: *day("2024-01-03"), Agent: "A"}])

	kept := p.FilterQualifying(records)
	require.Len(t, kept, 3)
	assert.Equal(t, *day("2024-01-01"), *kept[0].SolvedDate)
	assert.Equal(t, *day("2024-01-03"), *kept[1].SolvedDate)
	assert.Equal(t, 2, kept[1].TicketsSolved)
	assert.Equal(t, 4, kept[2].TicketsSolved)

	assert.Equal(t, map[string]float64{"A": 2}, p.DaysWorked(records))
	assert.Equal(t, 2, p.QualifyingDays(records))
}

func TestPolicy_UndatedRecords(t *testing.T) {
	p := workload.DefaultPolicy()
	records := enrich(append(repeat(rec("A", "", 1), 10), rec("A", "2024-01-01", 2)))

	assert.Empty(t, p.FilterQualifying(records))

	sums := p.SummarizeAgents(records)
	require.Len(t, sums, 1)
	assert.Equal(t, 12, sums[0].TotalTickets)
	assert.Equal(t, 0.0, sums[0].DaysWorked)
	// zero days divides by one
	assert.Equal(t, 12.0, sums[0].DailyAverage)
}

func TestPolicy_DayAdjustment(t *testing.T) {
	p := workload.DefaultPolicy()
	records := enrich([]ticket.Record{
		rec("Ryan Schlenz", "2024-01-01", 6),
		rec("Ryan Schlenz", "2024-01-02", 7),
		rec("Ryan Schlenz", "2024-01-03", 1),
		rec("Other", "2024-01-01", 6),
	})

	days := p.DaysWorked(records)
	assert.Equal(t, 2-7.5, days["Ryan Schlenz"])
	assert.Equal(t, 1.0, days["Other"])

	sums := p.SummarizeAgents(records)
	require.Len(t, sums, 2)
	assert.Equal(t, "Other", sums[0].Assignee)
	ryan := sums[1]
	assert.Equal(t, "Ryan Schlenz", ryan.Assignee)
	assert.Equal(t, 14, ryan.TotalTickets)
	assert.Equal(t, -5.5, ryan.DaysWorked)
	assert.Equal(t, -2.5, ryan.DailyAverage)
}

func TestPolicy_DayAdjustmentOnlyForPresentAgents(t *testing.T) {
	p := workload.DefaultPolicy()
	days := p.DaysWorked(enrich([]ticket.Record{rec("A", "2024-01-01", 6)}))
	assert.Equal(t, map[string]float64{"A": 1}, days)
}

func TestSummarizeAgents_MeanComplexity(t *testing.T) {
	p := workload.DefaultPolicy()
	unclassified := rec("B", "2024-01-01", 1)
	unclassified.Group = ""
	records := enrich([]ticket.Record{
		withProduct(rec("A", "2024-01-01", 1), "Exchange"),
		withAction(rec("A", "2024-01-01", 1), "Password Reset"),
		withAction(rec("A", "2024-01-01", 1), "Automation"),
		unclassified,
		{Group: "Service Desk", Subject: "x", TicketsSolved: 3},
	})

	sums := p.SummarizeAgents(records)
	require.Len(t, sums, 2)

	a := sums[0]
	require.NotNil(t, a.MeanComplexity)
	// (75 + 15 + 1) / 3
	assert.Equal(t, 30.3, *a.MeanComplexity)
	assert.Equal(t, ticket.High, a.MeanCategory)

	b := sums[1]
	assert.Equal(t, "B", b.Assignee)
	assert.Equal(t, 1, b.TotalTickets)
	assert.Nil(t, b.MeanComplexity)
	assert.Empty(t, b.MeanCategory)
}

func TestPolicy_Hours(t *testing.T) {
	p := workload.DefaultPolicy()
	assert.Equal(t, 9.0, p.Hours(700))
	assert.Equal(t, 3.0, p.Hours(180))
	assert.Equal(t, 9.0, p.Hours(540))
	assert.Equal(t, 0.0, p.Hours(0))
	assert.Equal(t, 2.5, p.Hours(152))
}

func TestPolicy_TimeLedger(t *testing.T) {
	p := workload.DefaultPolicy()
	var records []ticket.Record
	records = append(records, repeat(withProduct(rec("B", "2024-01-02", 1), "Exchange"), 6)...)
	records = append(records, repeat(withAction(rec("A", "2024-01-03", 1), "Password Reset"), 6)...)
	records = append(records, repeat(rec("A", "2024-01-02", 1), 6)...)
	records = append(records, rec("A", "2024-01-04", 1))
	records = append(records, rec("C", "", 9))

	ledger := p.TimeLedger(p.FilterQualifying(enrich(records)))
	require.Len(t, ledger, 2)

	a := ledger[0]
	assert.Equal(t, "A", a.Summary.Agent)
	require.Len(t, a.Entries, 2)
	assert.Equal(t, ticket.LedgerEntry{Date: *day("2024-01-02"), Agent: "A", Points: 150, Hours: 2.5}, a.Entries[0])
	assert.Equal(t, ticket.LedgerEntry{Date: *day("2024-01-03"), Agent: "A", Points: 90, Hours: 1.5}, a.Entries[1])
	assert.Equal(t, 2.0, a.Summary.AverageHours)

	b := ledger[1]
	assert.Equal(t, "B", b.Summary.Agent)
	require.Len(t, b.Entries, 1)
	assert.Equal(t, 450.0, b.Entries[0].Points)
	assert.Equal(t, 7.5, b.Entries[0].Hours)
	assert.Equal(t, 7.5, b.Summary.AverageHours)
}

func TestPolicy_TimeLedgerSkipsUnclassifiedPoints(t *testing.T) {
	p := workload.DefaultPolicy()
	records := repeat(rec("A", "2024-01-01", 1), 6)
	records[0].Subject = ""

	ledger := p.TimeLedger(p.FilterQualifying(enrich(records)))
	require.Len(t, ledger, 1)
	assert.Equal(t, 125.0, ledger[0].Entries[0].Points)
	assert.Equal(t, 2.1, ledger[0].Entries[0].Hours)
}

func TestTicketLedgers(t *testing.T) {
	p := workload.DefaultPolicy()
	var records []ticket.Record
	records = append(records, repeat(rec("B", "2024-01-01", 1), 6)...)
	first := withProduct(rec("A", "2024-01-01", 3), "Teams")
	first.ID = "101"
	second := rec("A", "2024-01-01", 3)
	second.ID = "102"
	records = append(records, first, second)

	ledgers := workload.TicketLedgers(p.FilterQualifying(enrich(records)))
	require.Len(t, ledgers, 2)
	assert.Equal(t, "A", ledgers[0].Agent)
	require.Len(t, ledgers[0].Tickets, 2)
	assert.Equal(t, "101", ledgers[0].Tickets[0].ID)
	assert.Equal(t, "102", ledgers[0].Tickets[1].ID)
	assert.Equal(t, 100.0, ledgers[0].TotalPoints)
	assert.Equal(t, "B", ledgers[1].Agent)
	assert.Equal(t, 150.0, ledgers[1].TotalPoints)
}

func TestPolicy_WithDefaults(t *testing.T) {
	p := workload.Policy{DailyTicketThreshold: 3}.WithDefaults()
	assert.Equal(t, 3, p.DailyTicketThreshold)
	assert.Equal(t, 60.0, p.PointsPerHour)
	assert.Equal(t, 0.0, p.MaxDailyHours)
	assert.Equal(t, -7.5, p.DayAdjustments["Ryan Schlenz"])

	p = workload.Policy{DayAdjustments: map[string]float64{}}.WithDefaults()
	assert.Empty(t, p.DayAdjustments)
}

func TestPolicy_ZeroThresholdAndCap(t *testing.T) {
	p := workload.Policy{DailyTicketThreshold: 0, PointsPerHour: 60, MaxDailyHours: 0}.WithDefaults()
	assert.Equal(t, 0, p.DailyTicketThreshold)
	assert.Equal(t, 0.0, p.MaxDailyHours)

	assert.True(t, p.Qualifies(1))
	assert.False(t, p.Qualifies(0))
	assert.Equal(t, 0.0, p.Hours(180))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 30.3, workload.Round1(91.0/3))
	assert.Equal(t, -2.4, workload.Round1(13/-5.5))
	assert.Equal(t, 9.0, workload.Round1(9))
}
