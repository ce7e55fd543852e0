package apperror

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorCode 錯誤種類, 數值直接對應 http status
type ErrorCode int

const (
	ValidationCode   ErrorCode = 400
	UnauthorizedCode ErrorCode = 401
	NotFoundCode     ErrorCode = 404
	ConflictCode     ErrorCode = 409
	StorageCode      ErrorCode = 500
)

var ErrStrMap = map[ErrorCode]string{
	ValidationCode:   "Validation error",
	UnauthorizedCode: "Unauthorized",
	NotFoundCode:     "Not found",
	ConflictCode:     "Conflict",
	StorageCode:      "Internal server error",
}

// postgres sqlstate
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode http status of the error kind
func (e *AppError) StatusCode() int {
	return int(e.Code)
}

func New(code ErrorCode, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

func Wrap(code ErrorCode, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err}
}

func Validation(msg string) *AppError   { return New(ValidationCode, msg) }
func NotFound(msg string) *AppError     { return New(NotFoundCode, msg) }
func Unauthorized(msg string) *AppError { return New(UnauthorizedCode, msg) }
func Conflict(msg string) *AppError     { return New(ConflictCode, msg) }

// CodeOf returns StorageCode for anything that is not an *AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return StorageCode
}

func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

/*
Classify 將任意錯誤歸類成五種之一
已歸類的錯誤原樣回傳, 其餘包成 StorageCode 並保留原始錯誤
*/
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Wrap(NotFoundCode, ErrStrMap[NotFoundCode], err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Wrap(ConflictCode, ErrStrMap[ConflictCode], err)
		case pgForeignKeyViolation:
			return Wrap(NotFoundCode, ErrStrMap[NotFoundCode], err)
		}
	}

	return Wrap(StorageCode, ErrStrMap[StorageCode], err)
}
