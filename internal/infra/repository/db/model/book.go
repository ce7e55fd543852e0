package model

import "github.com/shopspring/decimal"

type Book struct {
	ISBN    string          `gorm:"column:isbn;primaryKey;type:varchar(20)"`
	Author  string          `gorm:"column:author;not null;type:varchar(100)"`
	Title   string          `gorm:"column:title;not null;type:varchar(200)"`
	Price   decimal.Decimal `gorm:"column:price;not null;type:numeric(10,2)"`
	Subject string          `gorm:"column:subject;not null;type:varchar(100)"`
}

func (Book) TableName() string {
	return "books"
}
