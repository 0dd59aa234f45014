// Package metrics provides Prometheus observability metrics for the
// capacity planner. It includes Critical and Important metrics for business
// and operational visibility.
package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"capacity-planner/models"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// CRITICAL METRICS - Business Impact Visibility
// =============================================================================

// SpecialtiesByStatus tracks specialty counts per projected status level.
var SpecialtiesByStatus = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "planner",
	Name:      "specialties_by_status",
	Help:      "Number of specialties per projected status (Excellent/Improving/Alert/Critical)",
}, []string{"status"})

// BacklogChangeTotal tracks the hospital-wide projected backlog change.
// Positive values mean the hospital falls further behind over the horizon.
var BacklogChangeTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "planner",
	Name:      "backlog_change_total",
	Help:      "Hospital-wide projected backlog change over the simulation horizon",
})

// NetDailyTotal tracks hospital-wide arrivals minus capacity per day.
var NetDailyTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "planner",
	Name:      "net_daily_total",
	Help:      "Hospital-wide net daily patient flow (arrivals minus capacity)",
})

// UnsustainableSpecialties tracks specialties whose backlog can never clear.
var UnsustainableSpecialties = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "planner",
	Name:      "unsustainable_specialties",
	Help:      "Specialties with a backlog that never shrinks at current staffing",
})

// RejectedConfigs tracks configs that failed boundary validation in a run.
var RejectedConfigs = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "planner",
	Name:      "rejected_configs",
	Help:      "Specialty configs rejected by validation in the latest run",
})

// =============================================================================
// IMPORTANT METRICS - Operational Health
// =============================================================================

// ParserErrorsTotal tracks parse errors by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total parse errors by error type",
}, []string{"error_type"})

// ParserRecordsTotal tracks total records successfully parsed.
var ParserRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "records_total",
	Help:      "Total CSV records successfully parsed",
})

// ParserDurationSeconds tracks time to parse input files.
var ParserDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "duration_seconds",
	Help:      "Time taken to parse the parameter input file",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
})

// EngineDurationSeconds tracks time to project and simulate a batch.
var EngineDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "engine",
	Name:      "duration_seconds",
	Help:      "Time taken to project and simulate all specialties",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
})

// EngineSpecialtiesProcessed tracks batch sizes per run.
var EngineSpecialtiesProcessed = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "engine",
	Name:      "specialties_processed",
	Help:      "Number of specialties processed per simulation run",
	Buckets:   []float64{1, 5, 10, 25, 50, 100, 250},
})

// DetailRecords tracks the size of the per-day detail table.
var DetailRecords = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "engine",
	Name:      "detail_records",
	Help:      "Daily detail records produced by the latest run",
})

// =============================================================================
// Helper Functions
// =============================================================================

// ResetRunGauges resets all run-scoped gauges before a new simulation run.
func ResetRunGauges() {
	BacklogChangeTotal.Set(0)
	NetDailyTotal.Set(0)
	UnsustainableSpecialties.Set(0)
	RejectedConfigs.Set(0)
	DetailRecords.Set(0)
	SpecialtiesByStatus.Reset()
}

// RecordRun publishes the business gauges for a completed run.
func RecordRun(res *models.Result) {
	var backlogChange int
	var netDaily float64
	var unsustainable int

	for _, rec := range res.Summary {
		SpecialtiesByStatus.WithLabelValues(string(rec.Status)).Inc()
		backlogChange += rec.BacklogChange
		netDaily += rec.NetDaily
		if math.IsInf(rec.MonthsToClear, 1) && rec.InitialBacklog > 0 {
			unsustainable++
		}
	}

	BacklogChangeTotal.Set(float64(backlogChange))
	NetDailyTotal.Set(netDaily)
	UnsustainableSpecialties.Set(float64(unsustainable))
	RejectedConfigs.Set(float64(len(res.Rejected)))
	DetailRecords.Set(float64(len(res.Detail)))
	EngineSpecialtiesProcessed.Observe(float64(len(res.Summary)))
}
