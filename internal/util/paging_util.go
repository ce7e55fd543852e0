package util

import (
	"strconv"

	"github.com/RoyceAzure/lab/bookshop/internal/constants"
)

// ParseLimit 缺值、非數字或小於1 用預設值, 超過上限截斷
func ParseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return constants.DefaultPagingLimit
	}
	if limit > constants.MaxPagingLimit {
		return constants.MaxPagingLimit
	}
	return limit
}

// ParseOffset 缺值、非數字或負數 一律為0
func ParseOffset(raw string) int {
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return constants.DefaultPagingOffset
	}
	return offset
}
