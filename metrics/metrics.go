// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "babelcheck"

// Metrics records the outcome of a validation run so that it can be
// exported for CI dashboards.
type Metrics struct {
	registry *prometheus.Registry

	files         *prometheus.GaugeVec
	findings      *prometheus.GaugeVec
	stageDuration *prometheus.GaugeVec
	success       prometheus.Gauge
}

func New() *Metrics {
	var m Metrics
	m.registry = prometheus.NewRegistry()

	m.files = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "files_total",
		Help:      "The number of dataset files discovered, by kind.",
	},
		[]string{"kind"})
	m.registry.MustRegister(m.files)

	m.findings = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "findings",
		Help:      "The number of findings reported by each validation stage.",
	},
		[]string{"stage"})
	m.registry.MustRegister(m.findings)

	m.stageDuration = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "stage_duration_seconds",
		Help:      "The time taken to run each validation stage.",
	},
		[]string{"stage"})
	m.registry.MustRegister(m.stageDuration)

	m.success = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "success",
		Help:      "1 if the last validation run passed every stage, 0 otherwise.",
	})
	m.registry.MustRegister(m.success)

	return &m
}

// ObserveFiles records how many files of the given kind were discovered.
func (m *Metrics) ObserveFiles(kind string, count int) {
	m.files.WithLabelValues(kind).Set(float64(count))
}

// ObserveStage records the result of a single stage.
func (m *Metrics) ObserveStage(stage string, findings int, elapsed time.Duration) {
	m.findings.WithLabelValues(stage).Set(float64(findings))
	m.stageDuration.WithLabelValues(stage).Set(elapsed.Seconds())
}

// ObserveResult records whether the whole run passed.
func (m *Metrics) ObserveResult(passed bool) {
	if passed {
		m.success.Set(1)
		return
	}
	m.success.Set(0)
}

func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes every metric to path in the Prometheus text format,
// as expected by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
