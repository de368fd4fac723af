package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	TagTimeZone          = "timezone_name"
	TagStringOrNull      = "string_or_null"
	TagCountryCode       = "country_code"
	TagCountryCodeOrNull = "country_code_or_null"
	TagMonthOfYear       = "month_of_year"
	TagSurahId           = "surah_id"
)

type tagFunc struct {
	fn        Func
	allowsNil bool
}

var tags = map[string]tagFunc{
	TagTimeZone:          {fn: ValidateTimeZone},
	TagStringOrNull:      {fn: IsStringOrNull, allowsNil: true},
	TagCountryCode:       {fn: CountryCode},
	TagCountryCodeOrNull: {fn: CountryCodeOrNull, allowsNil: true},
	TagMonthOfYear:       {fn: MonthOfYear},
	TagSurahId:           {fn: SurahId},
}

// Register installs every validator of this package as a validation tag and
// makes field errors report the "query" or "json" name of a struct field.
func Register(validate *validator.Validate) error {
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, key := range []string{"query", "json"} {
			name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	for tag, v := range tags {
		fn := v.fn
		err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().Interface()) == nil
		}, v.allowsNil)

		if err != nil {
			return fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}

	return nil
}

type FieldError struct {
	Type     string `json:"type"`
	Value    any    `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// FieldErrors converts the result of validator.Struct into one FieldError per
// failing field. Errors that are not validation errors yield nil.
func FieldErrors(err error, location string) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		value := normalize(fe.Value())
		msg := ErrInvalidValue.Error()

		if v, ok := tags[fe.Tag()]; ok {
			if err := v.fn(value); err != nil {
				msg = err.Error()
			}
		}

		fieldErrors = append(fieldErrors, FieldError{
			Type:     "field",
			Value:    value,
			Msg:      msg,
			Path:     fe.Field(),
			Location: location,
		})
	}

	return fieldErrors
}
