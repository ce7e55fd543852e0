package response

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/rs/zerolog/log"
)

// dev/debug 時 storage 錯誤把原始訊息回給 client
var verbose atomic.Bool

func SetVerbose(v bool) {
	verbose.Store(v)
}

type ErrorBody struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func SuccessJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func ErrorMessageJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorBody{
		Status:     "error",
		StatusCode: status,
		Message:    msg,
	})
}

/*
ErrorJSON 依錯誤種類決定 status
未分類的錯誤一律當作 storage, 記 log 並回通用訊息
*/
func ErrorJSON(w http.ResponseWriter, r *http.Request, err error) {
	classified := er.Classify(err)
	code := er.CodeOf(classified)

	msg := er.ErrStrMap[code]
	if appErr, ok := classified.(*er.AppError); ok && appErr.Message != "" {
		msg = appErr.Message
	}

	if code == er.StorageCode {
		log.Error().Err(err).Str("method", r.Method).Str("url", r.URL.String()).Msg("request failed")
		if verbose.Load() {
			msg = err.Error()
		} else {
			msg = er.ErrStrMap[er.StorageCode]
		}
	}

	ErrorMessageJSON(w, int(code), msg)
}
