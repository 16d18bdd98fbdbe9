package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects the measurements of a run in a private registry.
type Metrics struct {
	Registry   *prometheus.Registry
	SeqSize    prometheus.Gauge
	SeqHeight  prometheus.Gauge
	MapSize    prometheus.Gauge
	MapHeight  prometheus.Gauge
	Operations *prometheus.CounterVec
	Latency    *prometheus.HistogramVec
}

// NewMetrics creates the metrics of a run of plan.
func NewMetrics(plan string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	labels := prometheus.Labels{"plan": plan}
	return &Metrics{
		Registry: reg,
		SeqSize: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "treapbench_seq_size",
			Help:        "Number of elements in the sequence",
			ConstLabels: labels,
		}),
		SeqHeight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "treapbench_seq_height",
			Help:        "Height of the sequence's tree",
			ConstLabels: labels,
		}),
		MapSize: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "treapbench_map_size",
			Help:        "Number of entries in the map",
			ConstLabels: labels,
		}),
		MapHeight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "treapbench_map_height",
			Help:        "Height of the map's tree",
			ConstLabels: labels,
		}),
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "treapbench_operations_total",
			Help:        "Number of operations executed",
			ConstLabels: labels,
		}, []string{"op"}),
		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "treapbench_step_seconds",
			Help:        "Duration of plan steps",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"op"}),
	}
}

// observeStep records a completed step.
func (m *Metrics) observeStep(op string, count int, d time.Duration) {
	m.Operations.WithLabelValues(op).Add(float64(count))
	m.Latency.WithLabelValues(op).Observe(d.Seconds())
}

// Summary writes all gathered metrics to w, one line per series.
func (m *Metrics) Summary(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			label := ""
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "op" {
					label = "{" + lp.GetValue() + "}"
				}
			}
			name := mf.GetName() + label
			switch {
			case metric.GetGauge() != nil:
				lines = append(lines, fmt.Sprintf("%-42s %s", name,
					humanize.Comma(int64(metric.GetGauge().GetValue()))))
			case metric.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%-42s %s", name,
					humanize.Comma(int64(metric.GetCounter().GetValue()))))
			case metric.GetHistogram() != nil:
				h := metric.GetHistogram()
				lines = append(lines, fmt.Sprintf("%-42s %s",
					name, time.Duration(h.GetSampleSum()*float64(time.Second))))
			}
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
