// Package validators contains the field validators shared by the HTTP
// handlers. A validator inspects one field value and returns an error whose
// message is shown to the client when the value is rejected.
package validators

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/mdayat/prayer-surah-service/internal/surahutil"
)

type Func func(value any) error

var (
	ErrInvalidValue       = errors.New("invalid value")
	ErrInvalidCountryCode = errors.New("invalid value, country code should use ISO 3166-1 alpha-2 format")
	ErrInvalidSurahId     = errors.New("invalid value, surahId must be between [1 - 114]")
)

var (
	countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)
	monthOfYearRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)
)

func ValidateTimeZone(value any) error {
	name, ok := normalize(value).(string)
	if !ok || name == "" || strings.EqualFold(name, "local") {
		return ErrInvalidValue
	}

	if _, err := time.LoadLocation(name); err != nil {
		return ErrInvalidValue
	}

	return nil
}

// IsStringOrNull accepts an absent value and nil as well as any string.
func IsStringOrNull(value any) error {
	value = normalize(value)
	if value == nil {
		return nil
	}

	if _, ok := value.(string); !ok {
		return ErrInvalidValue
	}

	return nil
}

// CountryCode checks the ISO 3166-1 alpha-2 shape only, not membership in
// the list of assigned codes.
func CountryCode(value any) error {
	code, ok := normalize(value).(string)
	if ok && countryCodeRegex.MatchString(code) {
		return nil
	}

	return ErrInvalidCountryCode
}

func CountryCodeOrNull(value any) error {
	value = normalize(value)
	if value == nil {
		return nil
	}

	if code, ok := value.(string); ok && code == "" {
		return nil
	}

	return CountryCode(value)
}

// MonthOfYear accepts "MM/YYYY" with a month between 01 and 12.
func MonthOfYear(value any) error {
	monthOfYear, ok := normalize(value).(string)
	if !ok || !monthOfYearRegex.MatchString(monthOfYear) {
		return ErrInvalidValue
	}

	return nil
}

func SurahId(value any) error {
	var surahId int
	switch v := normalize(value).(type) {
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return ErrInvalidSurahId
		}
		surahId = id
	case int:
		surahId = v
	case int16:
		surahId = int(v)
	case int32:
		surahId = int(v)
	case int64:
		surahId = int(v)
	default:
		return ErrInvalidSurahId
	}

	if !surahutil.IsSurahIdValid(surahId) {
		return ErrInvalidSurahId
	}

	return nil
}

// normalize dereferences pointers and interfaces so that validators see the
// underlying value, with nil standing for an absent one.
func normalize(value any) any {
	v := reflect.ValueOf(value)
	for {
		if !v.IsValid() {
			return nil
		}

		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			return v.Interface()
		}

		if v.IsNil() {
			return nil
		}

		v = v.Elem()
	}
}
