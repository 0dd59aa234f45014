package engine_test

import (
	"math"
	"testing"

	"capacity-planner/engine"
	"capacity-planner/models"

	"github.com/stretchr/testify/assert"
)

func TestProjectSummary(t *testing.T) {
	tests := map[string]struct {
		cfg      models.SpecialtyConfig
		horizon  int
		expected models.SummaryRecord
	}{
		"GrowingBacklog_Critical": {
			cfg: models.SpecialtyConfig{
				Name: "Dermatology", Doctors: 6, NonDoctors: 2,
				DoctorRate: 18, NonDoctorRate: 12,
				InitialBacklog: 1100, InitialWait: 65, DailyArrivals: 142,
			},
			horizon: 180,
			expected: models.SummaryRecord{
				Specialty: "Dermatology", Doctors: 6, NonDoctors: 2,
				DailyCapacity: 132, DailyArrivals: 142, NetDaily: 10,
				InitialBacklog: 1100, FinalBacklog: 2900, BacklogChange: 1800,
				InitialWait: 65, FinalWait: 171, WaitChange: 106,
				TimeToClear: "∞ (Impossible)", MonthsToClear: math.Inf(1),
				UtilisationPercent: 108, Status: models.StatusCritical,
			},
		},
		"ShrinkingBacklog_Excellent": {
			cfg: models.SpecialtyConfig{
				Name: "ICU", Doctors: 10, NonDoctors: 20,
				DoctorRate: 8, NonDoctorRate: 4,
				InitialBacklog: 870, InitialWait: 2, DailyArrivals: 155,
			},
			horizon: 180,
			expected: models.SummaryRecord{
				Specialty: "ICU", Doctors: 10, NonDoctors: 20,
				DailyCapacity: 160, DailyArrivals: 155, NetDaily: -5,
				InitialBacklog: 870, FinalBacklog: 0, BacklogChange: -870,
				InitialWait: 2, FinalWait: 0, WaitChange: -2,
				TimeToClear: "6 months", MonthsToClear: 5.8,
				UtilisationPercent: 97, Status: models.StatusExcellent,
			},
		},
		"ZeroCapacity_UtilisationUndefined": {
			cfg: models.SpecialtyConfig{
				Name: "Understaffed", Doctors: 1, NonDoctors: 1,
				DoctorRate: 0, NonDoctorRate: 0,
				InitialBacklog: 50, InitialWait: 4, DailyArrivals: 10,
			},
			horizon: 5,
			expected: models.SummaryRecord{
				Specialty: "Understaffed", Doctors: 1, NonDoctors: 1,
				DailyCapacity: 0, DailyArrivals: 10, NetDaily: 10,
				InitialBacklog: 50, FinalBacklog: 100, BacklogChange: 50,
				InitialWait: 4, FinalWait: 8, WaitChange: 4,
				TimeToClear: "∞ (Impossible)", MonthsToClear: math.Inf(1),
				UtilisationPercent: math.Inf(1), Status: models.StatusCritical,
			},
		},
		"ExactBalance_Unsustainable": {
			// Arrivals exactly match capacity: the backlog never moves and
			// can never clear.
			cfg: models.SpecialtyConfig{
				Name: "Balanced", Doctors: 1, NonDoctors: 1,
				DoctorRate: 10, NonDoctorRate: 0,
				InitialBacklog: 100, InitialWait: 8, DailyArrivals: 10,
			},
			horizon: 90,
			expected: models.SummaryRecord{
				Specialty: "Balanced", Doctors: 1, NonDoctors: 1,
				DailyCapacity: 10, DailyArrivals: 10, NetDaily: 0,
				InitialBacklog: 100, FinalBacklog: 100, BacklogChange: 0,
				InitialWait: 8, FinalWait: 8, WaitChange: 0,
				TimeToClear: "∞ (Impossible)", MonthsToClear: math.Inf(1),
				UtilisationPercent: 100, Status: models.StatusAlert,
			},
		},
		"ExactBalance_EmptyBacklog_NotApplicable": {
			cfg: models.SpecialtyConfig{
				Name: "Empty", Doctors: 1, NonDoctors: 1,
				DoctorRate: 10, NonDoctorRate: 0,
				InitialBacklog: 0, InitialWait: 0, DailyArrivals: 10,
			},
			horizon: 90,
			expected: models.SummaryRecord{
				Specialty: "Empty", Doctors: 1, NonDoctors: 1,
				DailyCapacity: 10, DailyArrivals: 10, NetDaily: 0,
				InitialBacklog: 0, FinalBacklog: 0, BacklogChange: 0,
				InitialWait: 0, FinalWait: 0, WaitChange: 0,
				TimeToClear: "N/A", MonthsToClear: math.Inf(1),
				UtilisationPercent: 100, Status: models.StatusAlert,
			},
		},
		"ZeroHorizon_FinalEqualsInitial": {
			cfg: models.SpecialtyConfig{
				Name: "Frozen", Doctors: 2, NonDoctors: 2,
				DoctorRate: 5, NonDoctorRate: 5,
				InitialBacklog: 400, InitialWait: 12, DailyArrivals: 30,
			},
			horizon: 0,
			expected: models.SummaryRecord{
				Specialty: "Frozen", Doctors: 2, NonDoctors: 2,
				DailyCapacity: 20, DailyArrivals: 30, NetDaily: 10,
				InitialBacklog: 400, FinalBacklog: 400, BacklogChange: 0,
				InitialWait: 12, FinalWait: 12, WaitChange: 0,
				TimeToClear: "∞ (Impossible)", MonthsToClear: math.Inf(1),
				UtilisationPercent: 150, Status: models.StatusAlert,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := engine.ProjectSummary(tt.cfg, tt.horizon)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProjectSummary_Idempotent(t *testing.T) {
	cfg := models.SpecialtyConfig{
		Name: "Cardiology", Doctors: 5, NonDoctors: 3,
		DoctorRate: 8, NonDoctorRate: 6,
		InitialBacklog: 900, InitialWait: 40, DailyArrivals: 55,
	}

	first := engine.ProjectSummary(cfg, 180)
	second := engine.ProjectSummary(cfg, 180)
	assert.Equal(t, first, second, "identical inputs must produce identical outputs")
}

func TestClassifyStatus(t *testing.T) {
	tests := map[string]struct {
		final    float64
		initial  float64
		expected models.Status
	}{
		"BelowHalf_Excellent":      {40, 100, models.StatusExcellent},
		"ExactlyHalf_Improving":    {50, 100, models.StatusImproving},
		"JustBelow_Improving":      {99, 100, models.StatusImproving},
		"Equal_Alert":              {100, 100, models.StatusAlert},
		"ExactlyOneAndHalf_Alert":  {150, 100, models.StatusAlert},
		"AboveOneAndHalf_Critical": {151, 100, models.StatusCritical},
		"ZeroToZero_Alert":         {0, 0, models.StatusAlert},
		"ZeroToPositive_Critical":  {5, 0, models.StatusCritical},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.ClassifyStatus(tt.final, tt.initial))
		})
	}
}
