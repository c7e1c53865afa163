package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/logger"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON writes data inside the success envelope. A nil data writes {"status":"success"}.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	writeEnvelope(w, statusCode, envelope{Status: statusSuccess, Data: data})
}

// WriteErrorAndStatusCode answers client faults with the error message and hides
// the details of everything else behind a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	code := errors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		writeEnvelope(w, code, envelope{Status: statusError, Message: "internal server error"})
		return
	}
	WriteFail(w, code, err.Error())
}

// WriteFail writes the fail envelope with a message the client may see.
func WriteFail(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, statusCode, envelope{Status: statusFail, Message: message})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return errors.Invariant("Body is invalid json")
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("body validation failed", "error", err)
		return errors.Invariant("Required fields missing")
	}
	return nil
}

// DecodePayload reads a JSON object into an entity payload. An empty body is an
// empty payload, so the entity reports which properties are missing.
func DecodePayload(r io.ReadCloser) (domain.Payload, error) {
	payload := domain.Payload{}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		if err == io.EOF {
			return payload, nil
		}
		logger.Log.Debug("invalid json body", "error", err)
		return nil, errors.Invariant("Body is invalid json")
	}
	if payload == nil {
		payload = domain.Payload{}
	}
	return payload, nil
}
