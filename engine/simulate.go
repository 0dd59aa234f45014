package engine

import (
	"capacity-planner/models"
	"math"
)

// Simulate runs the day-by-day recurrence for one specialty and returns its
// full trajectory, one record per day. Treatment is clamped to the backlog
// available before arrivals are added, so the backlog never goes negative.
// A horizon of zero or less yields an empty trajectory.
func Simulate(cfg models.SpecialtyConfig, horizonDays int) []models.DailyRecord {
	if horizonDays <= 0 {
		return nil
	}

	capacity := cfg.DailyCapacity()
	arrivals := float64(cfg.DailyArrivals)
	initialBacklog := float64(cfg.InitialBacklog)
	initialWait := float64(cfg.InitialWait)

	records := make([]models.DailyRecord, 0, horizonDays)
	current := initialBacklog

	for day := 1; day <= horizonDays; day++ {
		// Wait estimate uses the backlog before this day's treatment.
		var wait float64
		switch {
		case initialBacklog == 0 && current > 0:
			// Clearing-time estimate. Denominated in days while the field
			// is reported in weeks elsewhere; preserved original behavior.
			// Zero capacity would divide by zero, so it reports no wait.
			if capacity > 0 {
				wait = current / capacity
			}
		case current > 0 && initialBacklog > 0:
			wait = initialWait * (current / initialBacklog)
		}

		treated := math.Min(capacity, current)
		current = current - treated + arrivals

		records = append(records, models.DailyRecord{
			Specialty:       cfg.Name,
			Day:             day,
			Backlog:         int(math.Round(current)),
			Wait:            int(math.Round(wait)),
			PatientsTreated: treated,
		})
	}

	return records
}
