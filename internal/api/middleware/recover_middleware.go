package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/util"
	"github.com/rs/zerolog/log"
)

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Error().
					Interface("panic", err).
					Str("request_id", util.GetRequestIDFromContext(r.Context())).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				response.ErrorMessageJSON(w, http.StatusInternalServerError, er.ErrStrMap[er.StorageCode])
			}
		}()

		next.ServeHTTP(w, r)
	})
}
