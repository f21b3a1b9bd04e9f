package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/exceptions"
	"railpay-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
)

// Authenticate guards the merchant routes. It expects an HS256 bearer token
// whose subject is the authenticated user ID, and places that ID on the
// request context for ownership checks downstream.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
			}
			return []byte(m.InternalConfig.JWT.Secret), nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_MERCHANT_USER_ID_KEY, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
