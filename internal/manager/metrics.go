package manager

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadsTotalMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "memd",
		Subsystem: "manager",
		Name:      "loads_total",
		Help:      "Total successful model loads.",
	})

	loadFailuresMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "memd",
		Subsystem: "manager",
		Name:      "load_failures_total",
		Help:      "Total failed model loads by reason.",
	}, []string{"reason"})

	evictionsTotalMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "memd",
		Subsystem: "manager",
		Name:      "evictions_total",
		Help:      "Total evictions performed to free memory.",
	})

	memoryUsedBytesMetric = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "memd",
		Subsystem: "manager",
		Name:      "memory_used_bytes",
		Help:      "Bytes currently charged against the model memory budget.",
	})

	loadedModelsMetric = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "memd",
		Subsystem: "manager",
		Name:      "loaded_models",
		Help:      "Number of models currently resident.",
	})
)
