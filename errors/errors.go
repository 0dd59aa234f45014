package errors

import "fmt"

// ParseError wraps a specific error with context about where it occurred.
type ParseError struct {
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v (record: %v)", e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError reports a specialty configuration that failed validation at
// the engine boundary.
type ConfigError struct {
	Index     int
	Specialty string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %q at index %d: %v", e.Specialty, e.Index, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Parser errors.
var (
	ErrMissingHeader     = fmt.Errorf("missing header row")
	ErrMissingColumns    = fmt.Errorf("missing required columns")
	ErrInvalidFieldCount = fmt.Errorf("invalid field count")
	ErrInvalidNumber     = fmt.Errorf("invalid numeric value")
	ErrEmptyInput        = fmt.Errorf("no specialty rows found")
)

// Config validation errors, one per range constraint.
var (
	ErrMissingSpecialty     = fmt.Errorf("specialty name is required")
	ErrDuplicateSpecialty   = fmt.Errorf("duplicate specialty name")
	ErrInvalidDoctors       = fmt.Errorf("doctors must be at least 1")
	ErrInvalidNonDoctors    = fmt.Errorf("non-doctors must be at least 1")
	ErrInvalidDoctorRate    = fmt.Errorf("doctor rate must be non-negative")
	ErrInvalidNonDoctorRate = fmt.Errorf("non-doctor rate must be non-negative")
	ErrInvalidBacklog       = fmt.Errorf("initial backlog must be non-negative")
	ErrInvalidWait          = fmt.Errorf("initial wait must be non-negative")
	ErrInvalidArrivals      = fmt.Errorf("daily arrivals must be at least 1")
)
