package dtos

import "github.com/mdayat/prayer-surah-service/internal/validators"

type ValidationErrorResponse struct {
	Errors []validators.FieldError `json:"errors"`
}
