package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mdayat/prayer-surah-service/configs"
	"github.com/mdayat/prayer-surah-service/internal/dtos"
	"github.com/mdayat/prayer-surah-service/internal/httputil"
	"github.com/mdayat/prayer-surah-service/internal/services"
	"github.com/rs/zerolog/log"
)

type PrayerHandler interface {
	GetPrayerTimes(res http.ResponseWriter, req *http.Request)
}

type prayer struct {
	configs configs.Configs
	service services.PrayerServicer
}

func NewPrayerHandler(configs configs.Configs, service services.PrayerServicer) PrayerHandler {
	return &prayer{
		configs: configs,
		service: service,
	}
}

func (p prayer) GetPrayerTimes(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	queryParams := req.URL.Query()
	query := dtos.PrayerTimesQuery{
		TimeZone:    queryParams.Get("timeZone"),
		Latitude:    queryParams.Get("latitude"),
		Longitude:   queryParams.Get("longitude"),
		MonthOfYear: queryParams.Get("monthOfYear"),
	}

	if err := p.configs.Validate.Struct(query); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid query params")
		sendValidationFailure(res, logger, err)
		return
	}

	arg, err := p.calculateMonthlyPrayersParams(query)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("failed to parse query params")
		sendBadRequest(res, logger, "Something went wrong during calculating prayer times")
		return
	}

	prayers, err := p.service.CalculateMonthlyPrayers(arg)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("failed to calculate monthly prayers")
		sendBadRequest(res, logger, "Something went wrong during calculating prayer times")
		return
	}

	resBody := make([]dtos.DailyPrayersResponse, 0, len(prayers))
	for _, daily := range prayers {
		resBody = append(resBody, dtos.DailyPrayersResponse{
			Date:    daily.Date.Format(services.DateFormat),
			Fajr:    daily.Fajr.Format(services.TimeFormat),
			Sunrise: daily.Sunrise.Format(services.TimeFormat),
			Dhuhr:   daily.Dhuhr.Format(services.TimeFormat),
			Asr:     daily.Asr.Format(services.TimeFormat),
			Maghrib: daily.Maghrib.Format(services.TimeFormat),
			Isha:    daily.Isha.Format(services.TimeFormat),
		})
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    resBody,
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got prayer times")
}

func (p prayer) calculateMonthlyPrayersParams(query dtos.PrayerTimesQuery) (services.CalculateMonthlyPrayersParams, error) {
	latitude, err := strconv.ParseFloat(query.Latitude, 64)
	if err != nil {
		return services.CalculateMonthlyPrayersParams{}, fmt.Errorf("failed to convert latitude string to float: %w", err)
	}

	longitude, err := strconv.ParseFloat(query.Longitude, 64)
	if err != nil {
		return services.CalculateMonthlyPrayersParams{}, fmt.Errorf("failed to convert longitude string to float: %w", err)
	}

	location, err := time.LoadLocation(query.TimeZone)
	if err != nil {
		return services.CalculateMonthlyPrayersParams{}, fmt.Errorf("failed to load time zone: %w", err)
	}

	year, month, err := p.service.ParseMonthOfYear(query.MonthOfYear)
	if err != nil {
		return services.CalculateMonthlyPrayersParams{}, errors.Join(errors.New("invalid month of year"), err)
	}

	return services.CalculateMonthlyPrayersParams{
		Latitude:  latitude,
		Longitude: longitude,
		Location:  location,
		Year:      year,
		Month:     month,
	}, nil
}
