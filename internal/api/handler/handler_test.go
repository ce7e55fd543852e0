package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	userID   int
	saveErr  error
	clearErr error
}

func (f *fakeSessions) GetUserID(r *http.Request) (int, bool) {
	return f.userID, f.userID > 0
}

func (f *fakeSessions) SetUserID(w http.ResponseWriter, r *http.Request, userID int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.userID = userID
	return nil
}

func (f *fakeSessions) Clear(w http.ResponseWriter, r *http.Request) error {
	f.userID = 0
	return f.clearErr
}

// serve 以 chi 掛上單一路由, userID > 0 時模擬已登入
func serve(t *testing.T, method, pattern string, h http.HandlerFunc, target string, body any, userID int) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, reader)
	if userID > 0 {
		req = req.WithContext(util.WithSessionUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}
