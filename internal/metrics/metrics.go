// Package metrics records per-run analysis metrics for the Prometheus
// node exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
)

// Recorder holds the metrics of one run in a private registry.
type Recorder struct {
	registry *prometheus.Registry

	quoteBlocks    *prometheus.CounterVec
	laborAnnotated prometheus.Counter
	laborChanges   *prometheus.CounterVec
	priceConflicts prometheus.Counter
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		quoteBlocks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bluebook_quote_blocks_total",
				Help: "Quote blocks found per technician",
			},
			[]string{"technician"},
		),
		laborAnnotated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bluebook_labor_annotated_total",
			Help: "Quote blocks whose labor cell carries a comment",
		}),
		laborChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bluebook_labor_changes_total",
				Help: "Annotated labor prices by inferred direction",
			},
			[]string{"direction"},
		),
		priceConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bluebook_price_conflicts_total",
			Help: "Labor codes observed with differing prices",
		}),
	}
	r.registry.MustRegister(r.quoteBlocks, r.laborAnnotated, r.laborChanges, r.priceConflicts)
	return r
}

// Observe adds a report to the metrics.
func (r *Recorder) Observe(report *models.Report) {
	for _, c := range report.Counts {
		r.quoteBlocks.WithLabelValues(c.Technician).Add(float64(c.Quotes))
	}
	for _, rec := range report.Records {
		if !rec.Annotated {
			continue
		}
		r.laborAnnotated.Inc()
		r.laborChanges.WithLabelValues(string(rec.Direction)).Inc()
	}
	r.priceConflicts.Add(float64(len(report.Conflicts)))
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
