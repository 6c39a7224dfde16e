package workload

import (
	"agent-activity/domain/complexity"
	"agent-activity/domain/ticket"

	lo "github.com/samber/lo"
)

// Enrich classifies every record independently, preserving input order.
func Enrich(c *complexity.Classifier, records []ticket.Record) []ticket.Enriched {
	return lo.Map(records, func(r ticket.Record, _ int) ticket.Enriched {
		return c.ClassifyRecord(r)
	})
}

// scores returns the non-absent scores of records.
func scores(records []ticket.Enriched) []float64 {
	return lo.FilterMap(records, func(e ticket.Enriched, _ int) (float64, bool) {
		if e.Score == nil {
			return 0, false
		}
		return *e.Score, true
	})
}

func points(records []ticket.Enriched) float64 {
	return lo.Sum(scores(records))
}
