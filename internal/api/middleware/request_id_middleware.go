package middleware

import (
	"net/http"
	"regexp"

	"github.com/RoyceAzure/lab/bookshop/internal/constants"
	"github.com/RoyceAzure/lab/bookshop/internal/util"
	"github.com/google/uuid"
)

// 上游帶入的 request id 會直接寫進 log, 只接受短的 token
var trustedRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

/*
RequestIdMiddleware 沿用上游 proxy 的 X-Request-Id, 格式不合就重新產生
id 會回寫到 response header, 方便對照 access log
*/
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constants.RequestIDHeader)
		if !trustedRequestID.MatchString(requestID) {
			requestID = uuid.NewString()
		}

		w.Header().Set(constants.RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(util.WithRequestID(r.Context(), requestID)))
	})
}
