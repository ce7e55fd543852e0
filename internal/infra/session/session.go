package session

import (
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/bookshop/internal/constants"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

type ISessionManager interface {
	// GetUserID 沒有 session 或 cookie 驗證失敗都回傳 0, false
	GetUserID(r *http.Request) (int, bool)
	SetUserID(w http.ResponseWriter, r *http.Request, userID int) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionManager struct {
	store *sessions.CookieStore
	name  string
}

/*
secret 為空時產生隨機 key, 重啟後所有 session 失效
secure 只在 prod 開啟
*/
func NewCookieSessionManager(secret string, maxAge time.Duration, secure bool) *CookieSessionManager {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
	store.MaxAge(int(maxAge.Seconds()))

	return &CookieSessionManager{
		store: store,
		name:  constants.SessionName,
	}
}

func (c *CookieSessionManager) GetUserID(r *http.Request) (int, bool) {
	s, err := c.store.Get(r, c.name)
	if err != nil || s.IsNew {
		return 0, false
	}
	userID, ok := s.Values[constants.SessionUserIDField].(int)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// SetUserID 登入時一律建新 session, 不沿用舊的 cookie 內容
func (c *CookieSessionManager) SetUserID(w http.ResponseWriter, r *http.Request, userID int) error {
	s, _ := c.store.New(r, c.name)
	s.Values = map[interface{}]interface{}{
		constants.SessionUserIDField: userID,
	}
	return s.Save(r, w)
}

func (c *CookieSessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := c.store.Get(r, c.name)
	s.Values = map[interface{}]interface{}{}
	s.Options.MaxAge = -1
	return s.Save(r, w)
}
