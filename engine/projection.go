package engine

import (
	"capacity-planner/models"
	"fmt"
	"math"
)

const daysPerMonth = 30

// ProjectSummary computes the closed-form end-state projection for one
// specialty over horizonDays. It is a pure linear extrapolation: unlike
// Simulate, treatment is not clamped to the available backlog each day, so
// the two can disagree on the final backlog when capacity outruns demand
// mid-horizon. That divergence is intentional; the components stay separate.
func ProjectSummary(cfg models.SpecialtyConfig, horizonDays int) models.SummaryRecord {
	capacity := cfg.DailyCapacity()
	net := cfg.NetDaily()
	initialBacklog := float64(cfg.InitialBacklog)
	initialWait := float64(cfg.InitialWait)

	finalBacklog := math.Max(0, initialBacklog+net*float64(horizonDays))
	backlogChange := finalBacklog - initialBacklog

	// Wait scales with the backlog ratio; a cleared or empty backlog means
	// no projected wait at all.
	var finalWait float64
	if finalBacklog > 0 && initialBacklog > 0 {
		finalWait = initialWait * (finalBacklog / initialBacklog)
	}
	waitChange := finalWait - initialWait

	label, months := timeToClear(net, cfg.InitialBacklog)

	// Utilisation is undefined when the specialty has no treatment capacity.
	// +Inf stands in for "undefined" so no division fault can escape.
	utilisation := math.Inf(1)
	if capacity > 0 {
		utilisation = math.Round(float64(cfg.DailyArrivals) / capacity * 100)
	}

	return models.SummaryRecord{
		Specialty:          cfg.Name,
		Doctors:            cfg.Doctors,
		NonDoctors:         cfg.NonDoctors,
		DailyCapacity:      capacity,
		DailyArrivals:      cfg.DailyArrivals,
		NetDaily:           net,
		InitialBacklog:     cfg.InitialBacklog,
		FinalBacklog:       int(math.Round(finalBacklog)),
		BacklogChange:      int(math.Round(backlogChange)),
		InitialWait:        cfg.InitialWait,
		FinalWait:          int(math.Round(finalWait)),
		WaitChange:         int(math.Round(waitChange)),
		TimeToClear:        label,
		MonthsToClear:      months,
		UtilisationPercent: utilisation,
		Status:             ClassifyStatus(finalBacklog, initialBacklog),
	}
}

// timeToClear projects how long the backlog takes to reach zero at the
// current net daily rate. A non-shrinking backlog can never clear; an empty
// backlog has nothing to clear. Both report infinite months.
func timeToClear(netDaily float64, initialBacklog int) (string, float64) {
	if netDaily >= 0 || initialBacklog == 0 {
		if initialBacklog > 0 {
			return "∞ (Impossible)", math.Inf(1)
		}
		return "N/A", math.Inf(1)
	}
	months := float64(initialBacklog) / math.Abs(netDaily) / daysPerMonth
	return fmt.Sprintf("%.0f months", months), months
}

// ClassifyStatus buckets the projected trend into the four-level status
// taxonomy. First matching rule wins; the ranges overlap at their boundaries
// so the order is load-bearing. An unchanged backlog (including 0 -> 0)
// falls through every rule and lands on Alert.
func ClassifyStatus(finalBacklog, initialBacklog float64) models.Status {
	switch {
	case finalBacklog < 0.5*initialBacklog:
		return models.StatusExcellent
	case finalBacklog < initialBacklog:
		return models.StatusImproving
	case finalBacklog > 1.5*initialBacklog:
		return models.StatusCritical
	default:
		return models.StatusAlert
	}
}
