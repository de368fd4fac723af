package services

import (
	"fmt"
	"time"

	"github.com/mnadev/adhango/pkg/calc"
	"github.com/mnadev/adhango/pkg/data"
	"github.com/mnadev/adhango/pkg/util"
)

type PrayerServicer interface {
	ParseMonthOfYear(monthOfYear string) (int, time.Month, error)
	CalculateMonthlyPrayers(arg CalculateMonthlyPrayersParams) ([]DailyPrayers, error)
}

type prayer struct {
	method calc.CalculationMethod
}

// NewPrayerService computes prayer times with the Moonsighting Committee
// method. The method is not configurable by clients.
func NewPrayerService() PrayerServicer {
	return &prayer{
		method: calc.MOON_SIGHTING_COMMITTEE,
	}
}

const (
	DateFormat        = "02/01/2006"
	TimeFormat        = "15:04"
	monthOfYearLayout = "01/2006"
)

func (p prayer) ParseMonthOfYear(monthOfYear string) (int, time.Month, error) {
	date, err := time.Parse(monthOfYearLayout, monthOfYear)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse month of year: %w", err)
	}

	return date.Year(), date.Month(), nil
}

type CalculateMonthlyPrayersParams struct {
	Latitude  float64
	Longitude float64
	Location  *time.Location
	Year      int
	Month     time.Month
}

// DailyPrayers holds the prayer instants of one calendar day, already
// converted to the requested location. Date is the civil date at UTC midnight.
type DailyPrayers struct {
	Date    time.Time
	Fajr    time.Time
	Sunrise time.Time
	Dhuhr   time.Time
	Asr     time.Time
	Maghrib time.Time
	Isha    time.Time
}

func (p prayer) CalculateMonthlyPrayers(arg CalculateMonthlyPrayersParams) ([]DailyPrayers, error) {
	if arg.Location == nil {
		arg.Location = time.UTC
	}

	coordinates, err := util.NewCoordinates(arg.Latitude, arg.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to create coordinates: %w", err)
	}

	params := calc.GetMethodParameters(p.method)

	firstDayOfMonth := time.Date(arg.Year, arg.Month, 1, 0, 0, 0, 0, time.UTC)
	numOfDaysOfMonth := firstDayOfMonth.AddDate(0, 1, -1).Day()

	result := make([]DailyPrayers, 0, numOfDaysOfMonth)
	for day := 1; day <= numOfDaysOfMonth; day++ {
		date := time.Date(arg.Year, arg.Month, day, 0, 0, 0, 0, time.UTC)

		prayerTimes, err := calc.NewPrayerTimes(coordinates, data.NewDateComponents(date), params)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate prayer times of %s: %w", date.Format(time.DateOnly), err)
		}

		result = append(result, DailyPrayers{
			Date:    date,
			Fajr:    prayerTimes.Fajr.In(arg.Location),
			Sunrise: prayerTimes.Sunrise.In(arg.Location),
			Dhuhr:   prayerTimes.Dhuhr.In(arg.Location),
			Asr:     prayerTimes.Asr.In(arg.Location),
			Maghrib: prayerTimes.Maghrib.In(arg.Location),
			Isha:    prayerTimes.Isha.In(arg.Location),
		})
	}

	return result, nil
}
