package validator

import (
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/shopspring/decimal"
)

const (
	MsgUserNotAuthorized      = "User not authorized."
	MsgOrderNumberRequired    = "Order number is required."
	MsgIncompleteOrderDetails = "Incomplete order details."
	MsgQuantityNotPositive    = "Quantity must be positive."
)

// RequireUser 沒有 session 身分一律 Unauthorized
func RequireUser(userID int) error {
	if userID <= 0 {
		return er.Unauthorized(MsgUserNotAuthorized)
	}
	return nil
}

func ValidateOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return er.Validation(MsgOrderNumberRequired)
	}
	return nil
}

// ValidateCartLine 只檢查欄位存在, 遇到第一個缺漏就回傳
func ValidateCartLine(isbn string, quantity *int) error {
	if blank(isbn) || quantity == nil {
		return er.Validation(MsgIncomplete)
	}
	if *quantity < 1 {
		return er.Validation(MsgQuantityNotPositive)
	}
	return nil
}

func ValidateOrderLine(isbn string, qty int, amount *decimal.Decimal) error {
	if blank(isbn) || qty < 1 || amount == nil {
		return er.Validation(MsgIncompleteOrderDetails)
	}
	return nil
}
