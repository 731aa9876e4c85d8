package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	actasGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autoactas",
		Name:      "documents_generated_total",
		Help:      "Documents generated successfully, by document type.",
	}, []string{"tipo"})

	actasFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autoactas",
		Name:      "documents_failed_total",
		Help:      "Generation requests that returned an error, by stage.",
	}, []string{"stage"})

	fetchDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autoactas",
		Name:      "fetch_degraded_total",
		Help:      "Optional upstream fetches that failed and were skipped.",
	}, []string{"source"})

	extractionMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autoactas",
		Name:      "extraction_misses_total",
		Help:      "Workbook scans that found no table of the given kind.",
	}, []string{"kind"})
)
