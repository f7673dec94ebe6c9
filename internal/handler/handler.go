package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fashionhub/internal/model"

	"github.com/rs/zerolog"
)

// maxJSONBodyBytes caps JSON request bodies.
const maxJSONBodyBytes = 1 << 20

// encodeFailureBody is sent when a response value cannot be marshalled.
const encodeFailureBody = `{"error":"failed to encode response"}` + "\n"

// writeJSON writes a JSON response with the given status code. The body is
// marshalled before the header goes out so an encoding failure becomes a 500.
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(encodeFailureBody))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Debug().Err(err).Msg("failed to write response")
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message}, logger)
}

// statusFor maps an error returned by the service layer to an HTTP status.
func statusFor(err error) int {
	switch model.DomainCode(err) {
	case model.ErrCodeValidation, model.ErrCodeUploadDisabled:
		return http.StatusBadRequest
	case model.ErrCodeProductNotFound:
		return http.StatusNotFound
	case model.ErrCodeAuthMissing, model.ErrCodeAuthExpired, model.ErrCodeAuthInvalid, model.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case model.ErrCodeAuthForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err with the status statusFor picks. The error
// text is passed through unchanged.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	writeError(w, statusFor(err), err.Error(), logger)
}

// decodeJSON decodes a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return model.NewValidationError("request body too large")
		}
		return model.NewValidationError("invalid request body")
	}
	return nil
}
