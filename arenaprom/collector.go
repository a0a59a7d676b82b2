// Package arenaprom exports densearena metrics to Prometheus.
package arenaprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/densearena"
)

// Source is anything that can report arena metrics: *densearena.Arena,
// *densearena.SafeArena or a densearena.View.
type Source interface {
	Metrics() densearena.Metrics
}

const metricsPrefix = "densearena_"

// Collector reports the metrics of one arena as gauges labelled with the
// arena's name. Collect reads the source on every scrape, so an
// unsynchronised *Arena must only be registered when scrapes cannot race
// with its owner; register a SafeArena otherwise.
type Collector struct {
	src Source

	entities *prometheus.Desc
	slots    *prometheus.Desc
	inUse    *prometheus.Desc
	reserved *prometheus.Desc
}

// NewCollector returns a Collector for src labelled arena=name.
func NewCollector(name string, src Source) *Collector {
	constLabels := prometheus.Labels{"arena": name}
	return &Collector{
		src: src,

		entities: prometheus.NewDesc(
			metricsPrefix+"entities",
			"The number of entities stored in the arena.",
			nil, constLabels,
		),

		slots: prometheus.NewDesc(
			metricsPrefix+"capacity_entities",
			"The number of entities the arena can hold before growing.",
			nil, constLabels,
		),

		inUse: prometheus.NewDesc(
			metricsPrefix+"bytes_in_use",
			"The bytes occupied by stored entities.",
			nil, constLabels,
		),

		reserved: prometheus.NewDesc(
			metricsPrefix+"bytes_reserved",
			"The bytes reserved by the arena's backing storage.",
			nil, constLabels,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entities
	ch <- c.slots
	ch <- c.inUse
	ch <- c.reserved
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	ch <- prometheus.MustNewConstMetric(c.entities, prometheus.GaugeValue, float64(m.Len))
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(m.Cap))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(m.SizeInUse))
	ch <- prometheus.MustNewConstMetric(c.reserved, prometheus.GaugeValue, float64(m.Capacity))
}
