package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"clauselens/internal/db"
)

var (
	termLookupDesc = prometheus.NewDesc(
		"clauselens_term_lookups_total",
		"Total jargon-buster lookup count by outcome",
		[]string{"term", "outcome"},
		nil,
	)
	analysesDesc = prometheus.NewDesc(
		"clauselens_analyses_total",
		"Total documents analyzed",
		nil,
		nil,
	)
)

// TermCollector is a custom Prometheus collector that reads jargon-buster
// lookup counts from the database on each scrape.
type TermCollector struct {
	db *db.DB
}

// Describe sends the metric descriptors to the channel.
func (c *TermCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- termLookupDesc
	ch <- analysesDesc
}

// Collect queries the database and emits lookup counters plus the stored
// analysis count.
func (c *TermCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	lookups, err := c.db.GetAllTermLookups(ctx)
	if err != nil {
		slog.Error("failed to collect term lookup metrics", "error", err)
	} else {
		for _, l := range lookups {
			ch <- prometheus.MustNewConstMetric(
				termLookupDesc,
				prometheus.CounterValue,
				float64(l.Count),
				l.Term,
				l.Outcome,
			)
		}
	}

	var total int64
	if err := c.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&total); err != nil {
		slog.Error("failed to collect analysis count", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(analysesDesc, prometheus.GaugeValue, float64(total))
}

// Recorder provides async term lookup recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&TermCollector{db: database})
	})
}

// RecordTermLookup asynchronously records a jargon-buster lookup outcome.
func RecordTermLookup(term, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementTermLookup(context.Background(), term, outcome); err != nil {
			slog.Error("failed to record term lookup", "term", term, "outcome", outcome, "error", err)
		}
	}()
}
