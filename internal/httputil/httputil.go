package httputil

import (
	"net/http"

	"github.com/goccy/go-json"
)

type SendSuccessResponseParams struct {
	StatusCode int
	ResBody    interface{}
}

func SendSuccessResponse(res http.ResponseWriter, params SendSuccessResponseParams) error {
	if params.ResBody == nil {
		res.WriteHeader(params.StatusCode)
		return nil
	}

	return sendJSON(res, params.StatusCode, params.ResBody)
}

// SendErrorResponse writes resBody as JSON. Clients of this API expect error
// bodies to be JSON too, either a structured object or a bare string.
func SendErrorResponse(res http.ResponseWriter, statusCode int, resBody interface{}) error {
	return sendJSON(res, statusCode, resBody)
}

func sendJSON(res http.ResponseWriter, statusCode int, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)

	_, err = res.Write(body)
	return err
}
