package parser

import (
	"capacity-planner/errors"
	"capacity-planner/models"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// columnAliases maps each canonical field to the header spellings accepted
// in parameter files. The schema mapping lives here, outside the engine,
// which only ever consumes normalized SpecialtyConfig values.
var columnAliases = map[string][]string{
	"specialty":       {"Specialty", "specialty", "SPECIALTY"},
	"doctors":         {"Doctors", "doctors", "DOCTORS"},
	"non_doctors":     {"Non_Doctors", "non_doctors", "NON_DOCTORS", "Staff"},
	"doctor_rate":     {"Doctor_Rate", "doctor_rate", "DOCTOR_RATE"},
	"non_doctor_rate": {"Non_Doctor_Rate", "non_doctor_rate", "NON_DOCTOR_RATE", "Staff_Rate"},
	"initial_backlog": {"Initial_Backlog", "initial_backlog", "INITIAL_BACKLOG", "Backlog"},
	"initial_wait":    {"Initial_Wait", "initial_wait", "INITIAL_WAIT"},
	"daily_arrivals":  {"Daily_Arrivals", "daily_arrivals", "DAILY_ARRIVALS", "Arrivals"},
}

var requiredColumns = []string{
	"specialty", "doctors", "non_doctors", "doctor_rate",
	"non_doctor_rate", "initial_backlog", "initial_wait", "daily_arrivals",
}

// Parse reads specialty parameters from CSV data. The first non-comment row
// must be a header naming every required column under one of its accepted
// aliases; lines starting with '#' and blank lines are skipped. Integer
// columns tolerate decimal notation ("6.0" parses as 6). Row order is
// preserved; the configs are not validated here — range checks happen at
// the engine boundary.
func Parse(r io.Reader) ([]models.SpecialtyConfig, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var (
		configs []models.SpecialtyConfig
		columns map[string]int // canonical field -> column index
		lineNum int
	)

	for {
		record, err := reader.Read()
		lineNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}

		if isBlank(record) || strings.HasPrefix(strings.TrimSpace(record[0]), "#") {
			continue
		}

		if columns == nil {
			columns, err = mapHeader(record)
			if err != nil {
				return nil, err
			}
			continue
		}

		cfg, err := parseRow(record, columns)
		if err != nil {
			return nil, &errors.ParseError{
				Line:   lineNum,
				Record: record,
				Err:    err,
			}
		}
		configs = append(configs, cfg)
	}

	if columns == nil {
		return nil, errors.ErrMissingHeader
	}
	if len(configs) == 0 {
		return nil, errors.ErrEmptyInput
	}
	return configs, nil
}

// mapHeader resolves the header row to column indexes via the alias table.
func mapHeader(record []string) (map[string]int, error) {
	position := make(map[string]int, len(record))
	for i, cell := range record {
		position[strings.TrimSpace(cell)] = i
	}

	columns := make(map[string]int, len(requiredColumns))
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			if i, ok := position[alias]; ok {
				columns[field] = i
				break
			}
		}
	}

	var missing []string
	for _, field := range requiredColumns {
		if _, ok := columns[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrMissingColumns, strings.Join(missing, ", "))
	}
	return columns, nil
}

func parseRow(record []string, columns map[string]int) (models.SpecialtyConfig, error) {
	var cfg models.SpecialtyConfig

	for _, i := range columns {
		if i >= len(record) {
			return cfg, errors.ErrInvalidFieldCount
		}
	}

	cfg.Name = strings.TrimSpace(record[columns["specialty"]])
	if cfg.Name == "" {
		return cfg, errors.ErrMissingSpecialty
	}

	var err error
	if cfg.Doctors, err = parseInt(record[columns["doctors"]], "doctors"); err != nil {
		return cfg, err
	}
	if cfg.NonDoctors, err = parseInt(record[columns["non_doctors"]], "non_doctors"); err != nil {
		return cfg, err
	}
	if cfg.DoctorRate, err = parseFloat(record[columns["doctor_rate"]], "doctor_rate"); err != nil {
		return cfg, err
	}
	if cfg.NonDoctorRate, err = parseFloat(record[columns["non_doctor_rate"]], "non_doctor_rate"); err != nil {
		return cfg, err
	}
	if cfg.InitialBacklog, err = parseInt(record[columns["initial_backlog"]], "initial_backlog"); err != nil {
		return cfg, err
	}
	if cfg.InitialWait, err = parseInt(record[columns["initial_wait"]], "initial_wait"); err != nil {
		return cfg, err
	}
	if cfg.DailyArrivals, err = parseInt(record[columns["daily_arrivals"]], "daily_arrivals"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseInt accepts decimal notation for integer columns and truncates,
// matching how parameter files exported from spreadsheets tend to arrive.
func parseInt(value, field string) (int, error) {
	f, err := parseFloat(value, field)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func parseFloat(value, field string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errors.ErrInvalidNumber, field, strings.TrimSpace(value))
	}
	return f, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
