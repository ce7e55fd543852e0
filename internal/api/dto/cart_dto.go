package dto

import "github.com/shopspring/decimal"

// quantity 用指標區分沒給與給 0
type AddToCartDTO struct {
	ISBN     string `json:"isbn"`
	Quantity *int   `json:"quantity"`
}

type CartLineDTO struct {
	ISBN     string `json:"isbn"`
	Quantity int    `json:"quantity"`
}

type CartSavedResponse struct {
	Message string      `json:"message"`
	Line    CartLineDTO `json:"line"`
}

type CartItemDTO struct {
	ISBN     string          `json:"isbn"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}
