package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shoecard/variant"
)

// Registry holds the card service collectors on a private prometheus registry.
type Registry struct {
	reg             *prometheus.Registry
	VariantResolved *prometheus.CounterVec
	RenderErrors    prometheus.Counter
}

// NewRegistry registers every collector, with one zeroed series per variant.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	resolved := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shoecard_variant_resolved_total",
		Help: "Shoe cards built, by display variant.",
	}, []string{"variant"})
	renderErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shoecard_render_errors_total",
		Help: "Card or grid templates that failed to render.",
	})

	r.MustRegister(resolved, renderErrors)
	for _, v := range variant.All {
		resolved.WithLabelValues(v.String())
	}
	return &Registry{reg: r, VariantResolved: resolved, RenderErrors: renderErrors}
}

// ObserveVariant counts one card built with v.
func (r *Registry) ObserveVariant(v variant.Variant) {
	r.VariantResolved.WithLabelValues(v.String()).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
