package model

import "github.com/shopspring/decimal"

type CartLine struct {
	UserID   int
	ISBN     string
	Quantity int
}

// CartItem 購物車明細, 帶書名與目前價格
type CartItem struct {
	ISBN     string
	Title    string
	Price    decimal.Decimal
	Quantity int
}
