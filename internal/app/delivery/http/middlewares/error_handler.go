package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler converts a handler panic into the standard error envelope so a
// single bad request cannot take the process down mid-payment.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}

				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("panic recovered in handler",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Error(err),
					zap.ByteString("stack", debug.Stack()),
				)

				utils.BuildErrorResponse(m.Log, w, err)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
