// Package registry supplies the default specialty parameter dataset. The
// defaults are data, not code: they ship as an embedded YAML file and can be
// swapped for an operator-supplied file without touching the engine.
package registry

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"capacity-planner/models"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type seedFile struct {
	Specialties []seedEntry `yaml:"specialties"`
}

type seedEntry struct {
	Specialty      string  `yaml:"specialty"`
	Doctors        int     `yaml:"doctors"`
	NonDoctors     int     `yaml:"non_doctors"`
	DoctorRate     float64 `yaml:"doctor_rate"`
	NonDoctorRate  float64 `yaml:"non_doctor_rate"`
	InitialBacklog int     `yaml:"initial_backlog"`
	InitialWait    int     `yaml:"initial_wait"`
	DailyArrivals  int     `yaml:"daily_arrivals"`
}

// Defaults returns the built-in specialty seed dataset in file order.
func Defaults() ([]models.SpecialtyConfig, error) {
	return decode(defaultsYAML)
}

// LoadFile reads a seed dataset from an operator-supplied YAML file with
// the same layout as the built-in defaults.
func LoadFile(path string) ([]models.SpecialtyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return decode(data)
}

func decode(data []byte) ([]models.SpecialtyConfig, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding seed data: %w", err)
	}

	configs := make([]models.SpecialtyConfig, 0, len(f.Specialties))
	for _, e := range f.Specialties {
		configs = append(configs, models.SpecialtyConfig{
			Name:           e.Specialty,
			Doctors:        e.Doctors,
			NonDoctors:     e.NonDoctors,
			DoctorRate:     e.DoctorRate,
			NonDoctorRate:  e.NonDoctorRate,
			InitialBacklog: e.InitialBacklog,
			InitialWait:    e.InitialWait,
			DailyArrivals:  e.DailyArrivals,
		})
	}
	return configs, nil
}
