package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Action outcomes recorded per workflow action.
const (
	OutcomeOK     = "ok"
	OutcomeDenied = "denied"
	OutcomeError  = "error"
)

// Registry owns the service's Prometheus collectors.
type Registry struct {
	reg            *prometheus.Registry
	actions        *prometheus.CounterVec
	pricingBatches prometheus.Counter
	pricingEntries prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quoteflow_workflow_actions_total",
		Help: "Workflow actions by action name and outcome.",
	}, []string{"action", "outcome"})
	pricingBatches := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quoteflow_pricing_batches_total",
		Help: "Batched pricing waterfall calls.",
	})
	pricingEntries := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quoteflow_pricing_batch_entries_total",
		Help: "Unique-product entries carried by pricing batches.",
	})

	r.MustRegister(actions, pricingBatches, pricingEntries)
	return &Registry{
		reg:            r,
		actions:        actions,
		pricingBatches: pricingBatches,
		pricingEntries: pricingEntries,
	}
}

// Action records one workflow action outcome.
func (r *Registry) Action(action, outcome string) {
	r.actions.WithLabelValues(action, outcome).Inc()
}

// PricingBatch records one batched waterfall call carrying n entries.
func (r *Registry) PricingBatch(n int) {
	r.pricingBatches.Inc()
	r.pricingEntries.Add(float64(n))
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
