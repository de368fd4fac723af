// Package cli implements the timetable command, which prints the prayer times
// of a month without going through the HTTP API.
package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/mdayat/prayer-surah-service/internal/dtos"
	"github.com/mdayat/prayer-surah-service/internal/services"
	"github.com/mdayat/prayer-surah-service/internal/validators"
	"github.com/spf13/cobra"
)

type options struct {
	timeZone    string
	latitude    float64
	longitude   float64
	monthOfYear string
	json        bool
}

// NewRootCmd creates the timetable command. The version is set by the
// calling binary.
func NewRootCmd(version string) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:     "timetable",
		Short:   "Print the prayer times of a month",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), services.NewPrayerService(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.timeZone, "timezone", "UTC", "IANA time zone the times are shown in")
	flags.Float64Var(&opts.latitude, "latitude", 0, "Latitude of the location")
	flags.Float64Var(&opts.longitude, "longitude", 0, "Longitude of the location")
	flags.StringVar(&opts.monthOfYear, "month", time.Now().Format("01/2006"), "Month as MM/YYYY")
	flags.BoolVar(&opts.json, "json", false, "Output as JSON")

	cmd.MarkFlagRequired("latitude")
	cmd.MarkFlagRequired("longitude")

	return cmd
}

func run(out io.Writer, service services.PrayerServicer, opts options) error {
	if err := validators.ValidateTimeZone(opts.timeZone); err != nil {
		return fmt.Errorf("--timezone %q: %w", opts.timeZone, err)
	}

	if err := validators.MonthOfYear(opts.monthOfYear); err != nil {
		return fmt.Errorf("--month %q: %w", opts.monthOfYear, err)
	}

	location, err := time.LoadLocation(opts.timeZone)
	if err != nil {
		return err
	}

	year, month, err := service.ParseMonthOfYear(opts.monthOfYear)
	if err != nil {
		return err
	}

	prayers, err := service.CalculateMonthlyPrayers(services.CalculateMonthlyPrayersParams{
		Latitude:  opts.latitude,
		Longitude: opts.longitude,
		Location:  location,
		Year:      year,
		Month:     month,
	})
	if err != nil {
		return err
	}

	rows := make([]dtos.DailyPrayersResponse, 0, len(prayers))
	for _, daily := range prayers {
		rows = append(rows, dtos.DailyPrayersResponse{
			Date:    daily.Date.Format(services.DateFormat),
			Fajr:    daily.Fajr.Format(services.TimeFormat),
			Sunrise: daily.Sunrise.Format(services.TimeFormat),
			Dhuhr:   daily.Dhuhr.Format(services.TimeFormat),
			Asr:     daily.Asr.Format(services.TimeFormat),
			Maghrib: daily.Maghrib.Format(services.TimeFormat),
			Isha:    daily.Isha.Format(services.TimeFormat),
		})
	}

	if opts.json {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tFAJR\tSUNRISE\tDHUHR\tASR\tMAGHRIB\tISHA")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", row.Date, row.Fajr, row.Sunrise, row.Dhuhr, row.Asr, row.Maghrib, row.Isha)
	}

	return w.Flush()
}
