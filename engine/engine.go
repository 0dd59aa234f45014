// Package engine is the projection and simulation core: the closed-form
// summary projector, the day-by-day simulator, the status classifier and the
// report assembler. Everything here is a pure function over immutable
// inputs; the engine performs no I/O and holds no state between runs.
package engine

import (
	"strings"
	"sync"

	"capacity-planner/errors"
	"capacity-planner/models"
)

// Run assembles the full report for a request: every config is validated
// first, then each valid specialty is projected and simulated over the
// request horizon. Summary rows preserve request order; Detail is ordered by
// specialty (request order) then day ascending. Invalid configs never reach
// the numeric stage and come back in Rejected — the caller decides whether
// to skip them or abort. An empty batch or non-positive horizon returns
// empty tables, not an error.
func Run(req *models.SimulationRequest) *models.Result {
	result := &models.Result{
		Summary: []models.SummaryRecord{},
		Detail:  []models.DailyRecord{},
	}
	if req == nil || len(req.Configs) == 0 || req.HorizonDays <= 0 {
		return result
	}

	seen := make(map[string]struct{}, len(req.Configs))
	valid := make([]models.SpecialtyConfig, 0, len(req.Configs))
	for i, cfg := range req.Configs {
		err := ValidateConfig(cfg)
		if err == nil {
			if _, dup := seen[cfg.Name]; dup {
				err = errors.ErrDuplicateSpecialty
			}
		}
		if err != nil {
			result.Rejected = append(result.Rejected, models.RejectedConfig{
				Index:     i,
				Specialty: cfg.Name,
				Err:       &errors.ConfigError{Index: i, Specialty: cfg.Name, Err: err},
			})
			continue
		}
		seen[cfg.Name] = struct{}{}
		valid = append(valid, cfg)
	}

	// Specialties are independent, so fan out. Each goroutine writes only
	// its own index slot; output order stays deterministic.
	summaries := make([]models.SummaryRecord, len(valid))
	details := make([][]models.DailyRecord, len(valid))

	var wg sync.WaitGroup
	for i, cfg := range valid {
		wg.Add(1)
		go func(i int, cfg models.SpecialtyConfig) {
			defer wg.Done()
			summaries[i] = ProjectSummary(cfg, req.HorizonDays)
			details[i] = Simulate(cfg, req.HorizonDays)
		}(i, cfg)
	}
	wg.Wait()

	result.Summary = summaries
	for _, d := range details {
		result.Detail = append(result.Detail, d...)
	}
	return result
}

// ValidateConfig checks a single config against the engine's range
// constraints. It returns the first violated constraint's sentinel error;
// name uniqueness is checked by Run, which sees the whole batch.
func ValidateConfig(cfg models.SpecialtyConfig) error {
	switch {
	case strings.TrimSpace(cfg.Name) == "":
		return errors.ErrMissingSpecialty
	case cfg.Doctors < 1:
		return errors.ErrInvalidDoctors
	case cfg.NonDoctors < 1:
		return errors.ErrInvalidNonDoctors
	case cfg.DoctorRate < 0:
		return errors.ErrInvalidDoctorRate
	case cfg.NonDoctorRate < 0:
		return errors.ErrInvalidNonDoctorRate
	case cfg.InitialBacklog < 0:
		return errors.ErrInvalidBacklog
	case cfg.InitialWait < 0:
		return errors.ErrInvalidWait
	case cfg.DailyArrivals < 1:
		return errors.ErrInvalidArrivals
	}
	return nil
}
