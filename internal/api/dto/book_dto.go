package dto

import "github.com/shopspring/decimal"

type BookDTO struct {
	ISBN    string          `json:"isbn"`
	Title   string          `json:"title"`
	Author  string          `json:"author"`
	Subject string          `json:"subject"`
	Price   decimal.Decimal `json:"price"`
}

type BookSearchResponse struct {
	Results    []BookDTO `json:"results"`
	TotalCount int64     `json:"totalCount"`
}
