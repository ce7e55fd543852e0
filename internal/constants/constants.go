package constants

import "time"

const (
	//分頁
	DefaultPagingLimit  int = 5
	DefaultPagingOffset int = 0
	MaxPagingLimit      int = 100
)

// 訂單預計送達天數
const DeliveryDays = 7

type ContextKey string

const SessionUserIDKey ContextKey = "session_user_id"

const (
	SessionName          = "bookshop.sid"
	SessionUserIDField   = "userId"
	DefaultSessionMaxAge = 24 * time.Hour
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "dev"
	Stag  ENV = "staging"
	Prod  ENV = "prod"
)

// IsVerbose dev/debug 環境可以把錯誤細節回給 client
func (e ENV) IsVerbose() bool {
	return e == Debug || e == Dev
}

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

const (
	AppName         = "bookshop"
	RequestIDHeader = "X-Request-Id"
)
