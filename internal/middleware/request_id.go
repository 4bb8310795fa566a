package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/constants"
)

// RequestIDMiddleware keeps a caller supplied X-Request-ID or generates one
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(constants.HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(common.WithRequestID(r.Context(), requestID)))
	})
}
