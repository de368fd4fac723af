package handlers

import (
	"net/http"

	"github.com/mdayat/prayer-surah-service/internal/dtos"
	"github.com/mdayat/prayer-surah-service/internal/httputil"
	"github.com/mdayat/prayer-surah-service/internal/validators"
	"github.com/rs/zerolog"
)

func sendValidationFailure(res http.ResponseWriter, logger zerolog.Logger, err error) {
	fieldErrors := validators.FieldErrors(err, "query")
	if fieldErrors == nil {
		fieldErrors = []validators.FieldError{}
	}

	sendBadRequest(res, logger, dtos.ValidationErrorResponse{Errors: fieldErrors})
}

// sendBadRequest is used for every failure reported to clients, including
// persistence errors, whose cause is only logged.
func sendBadRequest(res http.ResponseWriter, logger zerolog.Logger, resBody any) {
	if err := httputil.SendErrorResponse(res, http.StatusBadRequest, resBody); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("failed to send error response")
	}
}
