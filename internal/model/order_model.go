package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderNumber int
	UserID      int
	CreatedDate time.Time
	ShipAddress string
	ShipCity    string
	ShipZip     int
}

// OrderLine amount 為下單當下的價格快照
type OrderLine struct {
	OrderNumber int
	ISBN        string
	Title       string
	Quantity    int
	Amount      decimal.Decimal
}

type OrderDetail struct {
	Order
	FirstName    string
	LastName     string
	DeliveryDate time.Time
	Lines        []OrderLine
	Total        decimal.Decimal
}
