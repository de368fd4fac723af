package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
)

type testQuery struct {
	TimeZone    string  `query:"timeZone" validate:"required,timezone_name"`
	MonthOfYear string  `query:"monthOfYear" validate:"required,month_of_year"`
	SurahId     string  `query:"surahId" validate:"omitempty,surah_id"`
	Country     *string `json:"country" validate:"country_code_or_null"`
	Nickname    *string `json:"nickname" validate:"string_or_null"`
}

func newTestValidate(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(validate); err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	return validate
}

func TestRegister(t *testing.T) {
	validate := newTestValidate(t)
	country := "EG"
	lowerCountry := "eg"

	table := []struct {
		name           string
		query          testQuery
		expectedErrors []FieldError
	}{
		{
			name: "Valid",
			query: testQuery{
				TimeZone:    "Europe/London",
				MonthOfYear: "02/2024",
				SurahId:     "2",
				Country:     &country,
			},
		},
		{
			name: "Invalid time zone and month",
			query: testQuery{
				TimeZone:    "Not/AZone",
				MonthOfYear: "13/2024",
			},
			expectedErrors: []FieldError{
				{Type: "field", Value: "Not/AZone", Msg: "invalid value", Path: "timeZone", Location: "query"},
				{Type: "field", Value: "13/2024", Msg: "invalid value", Path: "monthOfYear", Location: "query"},
			},
		},
		{
			name: "Invalid surah id and country",
			query: testQuery{
				TimeZone:    "Asia/Jakarta",
				MonthOfYear: "01/2025",
				SurahId:     "200",
				Country:     &lowerCountry,
			},
			expectedErrors: []FieldError{
				{Type: "field", Value: "200", Msg: ErrInvalidSurahId.Error(), Path: "surahId", Location: "query"},
				{Type: "field", Value: "eg", Msg: ErrInvalidCountryCode.Error(), Path: "country", Location: "query"},
			},
		},
		{
			name:  "Missing required fields",
			query: testQuery{},
			expectedErrors: []FieldError{
				{Type: "field", Value: "", Msg: "invalid value", Path: "timeZone", Location: "query"},
				{Type: "field", Value: "", Msg: "invalid value", Path: "monthOfYear", Location: "query"},
			},
		},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			err := validate.Struct(v.query)
			if v.expectedErrors == nil {
				if err != nil {
					t.Fatalf("wasn't expecting error, got: %v", err)
				}
				return
			}

			if diff := cmp.Diff(v.expectedErrors, FieldErrors(err, "query")); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	if fieldErrors := FieldErrors(nil, "query"); fieldErrors != nil {
		t.Fatalf("expected nil, got %v", fieldErrors)
	}
}
