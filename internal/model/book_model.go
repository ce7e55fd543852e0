package model

import "github.com/shopspring/decimal"

type Book struct {
	ISBN    string
	Title   string
	Author  string
	Subject string
	Price   decimal.Decimal
}

type BookSearchQuery struct {
	Subject string
	Author  string
	Title   string
	Limit   int
	Offset  int
}

type BookSearchResult struct {
	Results    []Book
	TotalCount int64
}
