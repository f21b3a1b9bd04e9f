package utils

import (
	"errors"
	"net/http"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/responses"
	"railpay-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func writeEnvelope(w http.ResponseWriter, code int, envelope responses.ResponseDTO) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(envelope)
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeEnvelope(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BuildFailureResponse writes a non-success envelope that still carries data.
// Used for terminal payment outcomes where the caller needs the compliance
// verdict alongside the failure.
func BuildFailureResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeEnvelope(w, code, responses.ResponseDTO{
		Success: false,
		Message: message,
		Data:    data,
	})
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}
