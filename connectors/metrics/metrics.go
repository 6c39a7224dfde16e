// Package metrics exposes run counters for the reporting pipeline on a private
// Prometheus registry. Batch runs push them to a Pushgateway. The web command
// serves its own request counters plus the Go and process collectors.
package metrics

import (
	"errors"
	"time"

	"agent-activity/domain/ticket"
	"agent-activity/domain/workload"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// JobName is the Pushgateway job label.
const JobName = "agent_activity"

// Registry is the custom prometheus registry for the tool
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordsTotal is the number of ticket rows read by the last run.
var RecordsTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "agent_activity",
	Name:      "records_total",
	Help:      "Ticket records read by the last calculation",
})

// RecordIssues counts soft per-row problems by kind.
var RecordIssues = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "agent_activity",
	Name:      "record_issues_total",
	Help:      "Rows with a missing field, invalid date or invalid count",
}, []string{"kind"})

// UnclassifiedRecords is the number of records with no complexity score.
var UnclassifiedRecords = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "agent_activity",
	Name:      "unclassified_records",
	Help:      "Records without a complexity score in the last calculation",
})

// UndatedRecords is the number of records without a usable solved date.
var UndatedRecords = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "agent_activity",
	Name:      "undated_records",
	Help:      "Records excluded from date-keyed aggregation in the last calculation",
})

// QualifyingRecords is the number of records inside qualifying (date, agent) groups.
var QualifyingRecords = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "agent_activity",
	Name:      "qualifying_records",
	Help:      "Records kept by the daily workload filter in the last calculation",
})

// QualifyingDays is the number of (date, agent) groups above the threshold.
var QualifyingDays = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "agent_activity",
	Name:      "qualifying_days",
	Help:      "(date, agent) groups above the daily ticket threshold",
})

// Agents is the number of distinct assignees.
var Agents = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "agent_activity",
	Name:      "agents",
	Help:      "Distinct assignees in the last calculation",
})

// CalculateDurationSeconds tracks how long a calculation takes end to end.
var CalculateDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "agent_activity",
	Name:      "calculate_duration_seconds",
	Help:      "Time taken to run the reporting pipeline",
	Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
})

// APIRequests counts report API requests served by the web command.
var APIRequests = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "agent_activity",
	Name:      "api_requests_total",
	Help:      "Report API requests by route and status code",
}, []string{"route", "code"})

// ObserveRun records the outcome of one calculation.
func ObserveRun(stats workload.Stats, issues []error, elapsed time.Duration) {
	RecordsTotal.Set(float64(stats.Records))
	UnclassifiedRecords.Set(float64(stats.Unclassified))
	UndatedRecords.Set(float64(stats.Undated))
	QualifyingRecords.Set(float64(stats.Qualifying))
	QualifyingDays.Set(float64(stats.QualifyingDays))
	Agents.Set(float64(stats.Agents))
	for _, err := range issues {
		RecordIssues.WithLabelValues(IssueKind(err)).Inc()
	}
	CalculateDurationSeconds.Observe(elapsed.Seconds())
}

// IssueKind names the soft error class of err.
func IssueKind(err error) string {
	switch {
	case errors.Is(err, ticket.ErrMissingField):
		return "missing_field"
	case errors.Is(err, ticket.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ticket.ErrInvalidCount):
		return "invalid_count"
	default:
		return "other"
	}
}

// Push sends the registry to a Pushgateway.
func Push(url string) error {
	return push.New(url, JobName).Gatherer(Registry).Push()
}
