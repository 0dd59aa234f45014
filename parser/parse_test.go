package parser_test

import (
	stderrors "errors"
	"strings"
	"testing"

	customerrors "capacity-planner/errors"
	"capacity-planner/models"
	"capacity-planner/parser"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		input         string
		expectedData  []models.SpecialtyConfig
		expectedError error
	}{
		"ValidInput_CanonicalHeaders": {
			input: `
Specialty, Doctors, Non_Doctors, Doctor_Rate, Non_Doctor_Rate, Initial_Backlog, Initial_Wait, Daily_Arrivals
Dermatology, 6, 2, 18, 12, 1100, 65, 142
ICU, 10, 20, 8, 4, 870, 2, 155
`,
			expectedData: []models.SpecialtyConfig{
				{
					Name: "Dermatology", Doctors: 6, NonDoctors: 2,
					DoctorRate: 18, NonDoctorRate: 12,
					InitialBacklog: 1100, InitialWait: 65, DailyArrivals: 142,
				},
				{
					Name: "ICU", Doctors: 10, NonDoctors: 20,
					DoctorRate: 8, NonDoctorRate: 4,
					InitialBacklog: 870, InitialWait: 2, DailyArrivals: 155,
				},
			},
		},
		"ValidInput_AliasedHeaders": {
			// Staff/Staff_Rate/Backlog/Arrivals are accepted spellings.
			input: `
specialty, doctors, Staff, doctor_rate, Staff_Rate, Backlog, initial_wait, Arrivals
Cardiology, 5, 3, 8, 6, 900, 40, 55
`,
			expectedData: []models.SpecialtyConfig{
				{
					Name: "Cardiology", Doctors: 5, NonDoctors: 3,
					DoctorRate: 8, NonDoctorRate: 6,
					InitialBacklog: 900, InitialWait: 40, DailyArrivals: 55,
				},
			},
		},
		"ValidInput_CommentsAndBlankLines": {
			input: `
# exported from the planning spreadsheet
Specialty, Doctors, Non_Doctors, Doctor_Rate, Non_Doctor_Rate, Initial_Backlog, Initial_Wait, Daily_Arrivals
# balanced group
Genetics, 1, 2, 4, 3, 870, 45, 11
`,
			expectedData: []models.SpecialtyConfig{
				{
					Name: "Genetics", Doctors: 1, NonDoctors: 2,
					DoctorRate: 4, NonDoctorRate: 3,
					InitialBacklog: 870, InitialWait: 45, DailyArrivals: 11,
				},
			},
		},
		"ValidInput_DecimalIntegerCoercion": {
			// Spreadsheet exports often render integers as "6.0".
			input: `
Specialty, Doctors, Non_Doctors, Doctor_Rate, Non_Doctor_Rate, Initial_Backlog, Initial_Wait, Daily_Arrivals
Plastic, 4.0, 3.0, 8.5, 6, 990.0, 65.0, 59.0
`,
			expectedData: []models.SpecialtyConfig{
				{
					Name: "Plastic", Doctors: 4, NonDoctors: 3,
					DoctorRate: 8.5, NonDoctorRate: 6,
					InitialBacklog: 990, InitialWait: 65, DailyArrivals: 59,
				},
			},
		},
		"Error_MissingColumns": {
			input: `
Specialty, Doctors, Doctor_Rate, Initial_Backlog, Initial_Wait, Daily_Arrivals
Dermatology, 6, 18, 1100, 65, 142
`,
			expectedError: customerrors.ErrMissingColumns,
		},
		"Error_InvalidNumber": {
			input: `
Specialty, Doctors, Non_Doctors, Doctor_Rate, Non_Doctor_Rate, Initial_Backlog, Initial_Wait, Daily_Arrivals
Dermatology, six, 2, 18, 12, 1100, 65, 142
`,
			expectedError: customerrors.ErrInvalidNumber,
		},
		"Error_ShortRow": {
			input: `
Specialty, Doctors, Non_Doctors, Doctor_Rate, Non_Doctor_Rate, Initial_Backlog, Initial_Wait, Daily_Arrivals
Dermatology, 6, 2
`,
			expectedError: customerrors.ErrInvalidFieldCount,
		},
		"Error_BlankSpecialty": {
			input: `
Specialty, Doctors, Non_Doctors, Doctor_Rate, Non_Doctor_Rate, Initial_Backlog, Initial_Wait, Daily_Arrivals
 , 6, 2, 18, 12, 1100, 65, 142
`,
			expectedError: customerrors.ErrMissingSpecialty,
		},
		"Error_NoHeader": {
			input:         "# only comments here\n",
			expectedError: customerrors.ErrMissingHeader,
		},
		"Error_HeaderButNoRows": {
			input: `
Specialty, Doctors, Non_Doctors, Doctor_Rate, Non_Doctor_Rate, Initial_Backlog, Initial_Wait, Daily_Arrivals
`,
			expectedError: customerrors.ErrEmptyInput,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := strings.NewReader(strings.TrimLeft(tt.input, "\n"))
			got, err := parser.Parse(r)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedData, got)
		})
	}
}

func TestParse_RowErrorsCarryLineContext(t *testing.T) {
	input := strings.TrimLeft(`
Specialty, Doctors, Non_Doctors, Doctor_Rate, Non_Doctor_Rate, Initial_Backlog, Initial_Wait, Daily_Arrivals
Dermatology, 6, 2, 18, 12, 1100, 65, 142
Cardiology, 5, 3, eight, 6, 900, 40, 55
`, "\n")

	_, err := parser.Parse(strings.NewReader(input))

	var parseErr *customerrors.ParseError
	assert.True(t, stderrors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.ErrorIs(t, err, customerrors.ErrInvalidNumber)
	assert.Contains(t, err.Error(), "doctor_rate")
}
