package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/session"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/util"
	"github.com/RoyceAzure/lab/bookshop/internal/validator"
)

// 有 session 時把 user id 放進 ctx, 沒有也放行
func SessionMiddleware(sessions session.ISessionManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := sessions.GetUserID(r); ok {
				r = r.WithContext(util.WithSessionUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// 驗證 ctx 是否有登入的 user id
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := util.GetSessionUserIDFromContext(r.Context()); !ok {
			response.ErrorMessageJSON(w, int(er.UnauthorizedCode), validator.MsgUserNotAuthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
