package models

// Status classifies a specialty's projected backlog trend.
type Status string

const (
	StatusExcellent Status = "Excellent"
	StatusImproving Status = "Improving"
	StatusCritical  Status = "Critical"
	StatusAlert     Status = "Alert"
)

// SpecialtyConfig represents the validated staffing and demand parameters
// for one hospital specialty. It is shared across packages as the engine's
// sole input record and is never mutated after creation.
type SpecialtyConfig struct {
	Name           string
	Doctors        int
	NonDoctors     int
	DoctorRate     float64 // patients treatable per doctor per day
	NonDoctorRate  float64 // patients treatable per non-doctor staff member per day
	InitialBacklog int     // patients currently waiting
	InitialWait    int     // current median wait, in weeks
	DailyArrivals  int     // new patients per day
}

// DailyCapacity is the maximum patients this specialty can treat per day.
func (c SpecialtyConfig) DailyCapacity() float64 {
	return float64(c.Doctors)*c.DoctorRate + float64(c.NonDoctors)*c.NonDoctorRate
}

// NetDaily is arrivals minus capacity; positive means the backlog grows.
func (c SpecialtyConfig) NetDaily() float64 {
	return float64(c.DailyArrivals) - c.DailyCapacity()
}

// SimulationRequest is the engine's boundary input: an ordered batch of
// specialty configs (names unique) and the projection horizon in days.
type SimulationRequest struct {
	Configs     []SpecialtyConfig
	HorizonDays int
}

// SummaryRecord is the closed-form end-state projection for one specialty.
// MonthsToClear and UtilisationPercent use +Inf as the "undefined" sentinel
// (backlog never shrinks / zero capacity); presentation layers decide how
// to render that.
type SummaryRecord struct {
	Specialty          string
	Doctors            int
	NonDoctors         int
	DailyCapacity      float64
	DailyArrivals      int
	NetDaily           float64
	InitialBacklog     int
	FinalBacklog       int
	BacklogChange      int
	InitialWait        int // weeks
	FinalWait          int // weeks
	WaitChange         int // weeks
	TimeToClear        string
	MonthsToClear      float64
	UtilisationPercent float64
	Status             Status
}

// DailyRecord is one day of a specialty's simulated trajectory.
type DailyRecord struct {
	Specialty       string
	Day             int // 1-based
	Backlog         int
	Wait            int // weeks
	PatientsTreated float64
}

// RejectedConfig is the per-record failure indicator for a config that
// failed boundary validation. Err wraps one of the errors package sentinels.
type RejectedConfig struct {
	Index     int
	Specialty string
	Err       error
}

// Result holds both output tables of a run plus any rejected configs.
// Summary has one row per valid specialty in request order; Detail has
// HorizonDays rows per specialty, ordered by specialty then day ascending.
type Result struct {
	Summary  []SummaryRecord
	Detail   []DailyRecord
	Rejected []RejectedConfig
}
