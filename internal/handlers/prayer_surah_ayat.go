package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/mdayat/prayer-surah-service/configs"
	"github.com/mdayat/prayer-surah-service/internal/dtos"
	"github.com/mdayat/prayer-surah-service/internal/httputil"
	"github.com/mdayat/prayer-surah-service/internal/services"
	"github.com/rs/zerolog/log"
)

type PrayerSurahAyatHandler interface {
	GetPrayerSurahAyat(res http.ResponseWriter, req *http.Request)
	UpdatePrayerSurahAyat(res http.ResponseWriter, req *http.Request)
}

type prayerSurahAyat struct {
	configs configs.Configs
	service services.PrayerSurahAyatServicer
}

func NewPrayerSurahAyatHandler(configs configs.Configs, service services.PrayerSurahAyatServicer) PrayerSurahAyatHandler {
	return &prayerSurahAyat{
		configs: configs,
		service: service,
	}
}

func (p prayerSurahAyat) GetPrayerSurahAyat(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	userId, ok := UserIdFromContext(ctx)
	if !ok {
		logger.Error().Err(errors.New("user not found in context")).Caller().Int("status_code", http.StatusUnauthorized).Send()
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	rows, err := p.service.SelectUserPrayerSurahAyat(ctx, userId)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("failed to select user prayer surah ayat")
		sendBadRequest(res, logger, "Something went wrong during fetching prayerSurahAyat")
		return
	}

	resBody := make([]dtos.PrayerSurahAyatResponse, 0, len(rows))
	for _, row := range rows {
		resBody = append(resBody, dtos.PrayerSurahAyatResponse{
			SurahId:  row.SurahID,
			StartAya: row.StartAya,
			EndAya:   row.EndAya,
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

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got prayer surah ayat")
}

func (p prayerSurahAyat) UpdatePrayerSurahAyat(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	userId, ok := UserIdFromContext(ctx)
	if !ok {
		logger.Error().Err(errors.New("user not found in context")).Caller().Int("status_code", http.StatusUnauthorized).Send()
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	queryParams := req.URL.Query()
	query := dtos.PrayerSurahAyatQuery{
		SurahId:  queryParams.Get("surahId"),
		StartAya: queryParams.Get("startAya"),
		EndAya:   queryParams.Get("endAya"),
	}

	if err := p.configs.Validate.Struct(query); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid query params")
		sendValidationFailure(res, logger, err)
		return
	}

	// surahId is known to be in range; oversized aya numbers are left to the
	// range check below.
	surahId, _ := strconv.Atoi(query.SurahId)
	startAya, startErr := strconv.Atoi(query.StartAya)
	endAya, endErr := strconv.Atoi(query.EndAya)
	if startErr != nil || endErr != nil {
		err := errors.Join(startErr, endErr)
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid aya range")
		sendBadRequest(res, logger, services.ErrInvalidAyaRange.Error())
		return
	}

	row, err := p.service.UpsertUserPrayerSurahAyat(ctx, services.UpsertUserPrayerSurahAyatParams{
		UserId:   userId,
		SurahId:  surahId,
		StartAya: startAya,
		EndAya:   endAya,
	})

	if err != nil {
		if errors.Is(err, services.ErrInvalidAyaRange) {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid aya range")
			sendBadRequest(res, logger, services.ErrInvalidAyaRange.Error())
		} else {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("failed to upsert user prayer surah ayat")
			sendBadRequest(res, logger, "Something went wrong during updating prayerSurahAyat")
		}
		return
	}

	resBody := dtos.PrayerSurahAyatRecordResponse{
		Id:       row.ID,
		UserId:   uuid.UUID(row.UserID.Bytes).String(),
		SurahId:  row.SurahID,
		StartAya: row.StartAya,
		EndAya:   row.EndAya,
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

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully updated prayer surah ayat")
}
