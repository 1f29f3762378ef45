package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lightworkai/kycmon/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All JSON output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeDataNotFound   = "DATA_NOT_FOUND"
	ErrCodeDataInvalid    = "DATA_INVALID"
	ErrCodeOutputFailed   = "OUTPUT_FAILED"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	env := JSONEnvelope{
		Success: true,
		Data:    data,
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	env := JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	}
	return writeJSONEnvelope(w, env)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if kErr, ok := err.(*errors.Error); ok {
		jsonErr := &JSONError{
			Code:       mapErrorCode(kErr.Code, kErr.Message),
			Message:    kErr.Message,
			Suggestion: kErr.Suggestion,
		}
		if kErr.Cause != nil {
			jsonErr.Details = map[string]interface{}{
				"cause": kErr.Cause.Error(),
			}
		}
		return jsonErr
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	msgLower := strings.ToLower(message)
	notFound := strings.Contains(msgLower, "not found") || strings.Contains(msgLower, "couldn't find")

	switch internalCode {
	case errors.ErrConfig:
		if notFound {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrData:
		if notFound {
			return ErrCodeDataNotFound
		}
		return ErrCodeDataInvalid
	case errors.ErrOutput:
		return ErrCodeOutputFailed
	}

	return ErrCodeUnknown
}
