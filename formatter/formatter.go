package formatter

import (
	"capacity-planner/models"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// report is the JSON envelope: both tables plus any rejected configs.
// encoding/json cannot represent +Inf, so the infinite sentinels become
// nulls here; the core keeps the float64 sentinels.
type report struct {
	Summary  []summaryRow   `json:"summary"`
	Detail   []detailRow    `json:"detail"`
	Rejected []rejectionRow `json:"rejected,omitempty"`
}

type summaryRow struct {
	Specialty          string   `json:"specialty"`
	Doctors            int      `json:"doctors"`
	NonDoctors         int      `json:"non_doctors"`
	DailyCapacity      float64  `json:"daily_capacity"`
	DailyArrivals      int      `json:"daily_arrivals"`
	NetDaily           float64  `json:"net_daily"`
	InitialBacklog     int      `json:"initial_backlog"`
	FinalBacklog       int      `json:"final_backlog"`
	BacklogChange      int      `json:"backlog_change"`
	InitialWait        int      `json:"initial_wait"`
	FinalWait          int      `json:"final_wait"`
	WaitChange         int      `json:"wait_change"`
	TimeToClear        string   `json:"time_to_clear"`
	MonthsToClear      *float64 `json:"months_to_clear"`
	UtilisationPercent *float64 `json:"utilisation_percent"`
	Status             string   `json:"status"`
}

type detailRow struct {
	Specialty       string  `json:"specialty"`
	Day             int     `json:"day"`
	Backlog         int     `json:"backlog"`
	Wait            int     `json:"wait"`
	PatientsTreated float64 `json:"patients_treated"`
}

type rejectionRow struct {
	Index     int    `json:"index"`
	Specialty string `json:"specialty"`
	Reason    string `json:"reason"`
}

// FormatText returns the executive-style text report: one line per
// specialty, hospital-wide totals, and warnings for rejected configs.
func FormatText(res *models.Result) string {
	var sb strings.Builder

	for _, rec := range res.Summary {
		sb.WriteString(fmt.Sprintf(
			"%s : %s ; backlog %d → %d (%+d) ; wait %dw → %dw (%+dw) ; utilisation %s ; clear %s\n",
			rec.Specialty, statusGlyph(rec.Status),
			rec.InitialBacklog, rec.FinalBacklog, rec.BacklogChange,
			rec.InitialWait, rec.FinalWait, rec.WaitChange,
			utilisationLabel(rec.UtilisationPercent), rec.TimeToClear))
	}

	if len(res.Summary) > 0 {
		sb.WriteString(formatTotals(res.Summary))
	}

	for _, rej := range res.Rejected {
		sb.WriteString(fmt.Sprintf("  ⚠️  SKIPPED row %d (%s): %v\n",
			rej.Index, rejectedName(rej), rej.Err))
	}

	return sb.String()
}

// FormatJSON returns both tables as an indented JSON document.
func FormatJSON(res *models.Result) string {
	rep := report{
		Summary: make([]summaryRow, 0, len(res.Summary)),
		Detail:  make([]detailRow, 0, len(res.Detail)),
	}

	for _, rec := range res.Summary {
		rep.Summary = append(rep.Summary, summaryRow{
			Specialty:          rec.Specialty,
			Doctors:            rec.Doctors,
			NonDoctors:         rec.NonDoctors,
			DailyCapacity:      rec.DailyCapacity,
			DailyArrivals:      rec.DailyArrivals,
			NetDaily:           rec.NetDaily,
			InitialBacklog:     rec.InitialBacklog,
			FinalBacklog:       rec.FinalBacklog,
			BacklogChange:      rec.BacklogChange,
			InitialWait:        rec.InitialWait,
			FinalWait:          rec.FinalWait,
			WaitChange:         rec.WaitChange,
			TimeToClear:        rec.TimeToClear,
			MonthsToClear:      finiteOrNil(rec.MonthsToClear),
			UtilisationPercent: finiteOrNil(rec.UtilisationPercent),
			Status:             string(rec.Status),
		})
	}
	for _, rec := range res.Detail {
		rep.Detail = append(rep.Detail, detailRow{
			Specialty:       rec.Specialty,
			Day:             rec.Day,
			Backlog:         rec.Backlog,
			Wait:            rec.Wait,
			PatientsTreated: rec.PatientsTreated,
		})
	}
	for _, rej := range res.Rejected {
		rep.Rejected = append(rep.Rejected, rejectionRow{
			Index:     rej.Index,
			Specialty: rej.Specialty,
			Reason:    rej.Err.Error(),
		})
	}

	jsonBytes, _ := json.MarshalIndent(rep, "", "  ")
	return string(jsonBytes)
}

// FormatSummaryCSV returns the one-row-per-specialty summary table.
func FormatSummaryCSV(res *models.Result) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{
		"Specialty", "Doctors", "Non_Doctors", "Daily_Capacity", "Daily_Arrivals",
		"Net_Daily", "Initial_Backlog", "Final_Backlog", "Backlog_Change",
		"Initial_Wait", "Final_Wait", "Wait_Change", "Time_to_Clear",
		"Months_to_Clear", "Utilisation_Percent", "Status",
	})

	for _, rec := range res.Summary {
		writer.Write([]string{
			rec.Specialty,
			strconv.Itoa(rec.Doctors),
			strconv.Itoa(rec.NonDoctors),
			formatFloat(rec.DailyCapacity),
			strconv.Itoa(rec.DailyArrivals),
			formatFloat(rec.NetDaily),
			strconv.Itoa(rec.InitialBacklog),
			strconv.Itoa(rec.FinalBacklog),
			fmt.Sprintf("%+d", rec.BacklogChange),
			strconv.Itoa(rec.InitialWait),
			strconv.Itoa(rec.FinalWait),
			fmt.Sprintf("%+d", rec.WaitChange),
			rec.TimeToClear,
			infinityLabel(rec.MonthsToClear),
			infinityLabel(rec.UtilisationPercent),
			string(rec.Status),
		})
	}

	writer.Flush()
	return sb.String()
}

// FormatDetailCSV returns the one-row-per-specialty-per-day detail table.
func FormatDetailCSV(res *models.Result) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{"Specialty", "Day", "Backlog", "Wait_Weeks", "Patients_Treated"})

	for _, rec := range res.Detail {
		writer.Write([]string{
			rec.Specialty,
			strconv.Itoa(rec.Day),
			strconv.Itoa(rec.Backlog),
			strconv.Itoa(rec.Wait),
			formatFloat(rec.PatientsTreated),
		})
	}

	writer.Flush()
	return sb.String()
}

// formatTotals builds the hospital-wide footer for the text report.
func formatTotals(summary []models.SummaryRecord) string {
	counts := map[models.Status]int{}
	var backlogChange int
	var netDaily float64
	var unsustainable int

	for _, rec := range summary {
		counts[rec.Status]++
		backlogChange += rec.BacklogChange
		netDaily += rec.NetDaily
		if math.IsInf(rec.MonthsToClear, 1) && rec.InitialBacklog > 0 {
			unsustainable++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Specialties: %d ; 🟢 excellent=%d 🟡 improving=%d 🟠 alert=%d 🔴 critical=%d\n",
		len(summary),
		counts[models.StatusExcellent], counts[models.StatusImproving],
		counts[models.StatusAlert], counts[models.StatusCritical]))
	sb.WriteString(fmt.Sprintf("Hospital net daily: %+g patients/day ; total backlog change: %+d ; unsustainable: %d\n",
		netDaily, backlogChange, unsustainable))
	return sb.String()
}

func statusGlyph(s models.Status) string {
	switch s {
	case models.StatusExcellent:
		return "🟢 Excellent"
	case models.StatusImproving:
		return "🟡 Improving"
	case models.StatusCritical:
		return "🔴 Critical"
	default:
		return "🟠 Alert"
	}
}

func utilisationLabel(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.0f%%", v)
}

func infinityLabel(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return formatFloat(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func rejectedName(rej models.RejectedConfig) string {
	if rej.Specialty == "" {
		return "unnamed"
	}
	return rej.Specialty
}
