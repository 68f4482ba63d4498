// Package metrics exposes a sord.Model's size as Prometheus metrics
// via github.com/prometheus/client_golang, as an embeddable collector
// rather than wired into any particular HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/insilications/sord-clr"
)

// Collector reports a Model's quad count as a Prometheus gauge. It
// implements prometheus.Collector so it can be registered directly
// with a prometheus.Registry.
type Collector struct {
	model *sord.Model

	quads *prometheus.Desc
}

// NewCollector returns a Collector reporting m's size under the given
// metric namespace (e.g. "sord").
func NewCollector(m *sord.Model, namespace string) *Collector {
	return &Collector{
		model: m,
		quads: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "quads_total"),
			"Number of quads currently stored in the model.",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.quads
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.model.Stats()
	ch <- prometheus.MustNewConstMetric(c.quads, prometheus.GaugeValue, float64(stats.Value))
}
