// Package metrics exports search metrics through Prometheus collectors.
package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/tripwindow/core/search"
)

// PromRecorder records search events in Prometheus metrics.
type PromRecorder struct {
	searches *prometheus.CounterVec
	scanned  prometheus.Counter
	admitted prometheus.Counter
	latency  *prometheus.HistogramVec
	best     prometheus.Gauge
}

// NewPromRecorderWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromRecorderWithRegistry(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tripwindow_searches_total",
		Help: "Total number of window searches",
	}, []string{"unit", "found"})
	scanned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tripwindow_windows_scanned_total",
		Help: "Candidate windows evaluated across all searches",
	})
	admitted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tripwindow_windows_admitted_total",
		Help: "Candidate windows satisfying the necessary persons",
	})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tripwindow_search_duration_seconds",
		Help:    "Time spent in a single search",
		Buckets: prometheus.DefBuckets,
	}, []string{"unit"})
	best := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tripwindow_best_window_people",
		Help: "Number of available people in the best window of the last search",
	})

	var err error
	if searches, err = register(reg, searches); err != nil {
		return nil, err
	}
	if scanned, err = register(reg, scanned); err != nil {
		return nil, err
	}
	if admitted, err = register(reg, admitted); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	if best, err = register(reg, best); err != nil {
		return nil, err
	}
	return &PromRecorder{searches: searches, scanned: scanned, admitted: admitted, latency: latency, best: best}, nil
}

// register adds c to reg, reusing an identical collector registered earlier.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSearch implements search.Recorder.
func (r *PromRecorder) RecordSearch(ev search.SearchEvent) error {
	unit := string(ev.Length.Unit)
	r.searches.WithLabelValues(unit, strconv.FormatBool(ev.Found())).Inc()
	r.scanned.Add(float64(ev.Scanned))
	r.admitted.Add(float64(ev.Admitted))
	r.latency.WithLabelValues(unit).Observe(ev.Duration.Seconds())
	r.best.Set(float64(ev.BestCount))
	return nil
}
