package model

import "github.com/shopspring/decimal"

// 一個 user 一本書只會有一筆
type CartLine struct {
	UserID int    `gorm:"column:userid;primaryKey"`
	ISBN   string `gorm:"column:isbn;primaryKey;type:varchar(20)"`
	Qty    int    `gorm:"column:qty;not null"`
}

func (CartLine) TableName() string {
	return "cart"
}

// CartItemRow cart join books
type CartItemRow struct {
	ISBN  string          `gorm:"column:isbn"`
	Title string          `gorm:"column:title"`
	Price decimal.Decimal `gorm:"column:price"`
	Qty   int             `gorm:"column:qty"`
}
