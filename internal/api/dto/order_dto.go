package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	OrderNumber int       `json:"orderNumber"`
	UserID      int       `json:"userId"`
	CreatedDate time.Time `json:"createdDate"`
	ShipAddress string    `json:"shipAddress"`
	ShipCity    string    `json:"shipCity"`
	ShipZip     int       `json:"shipZip"`
}

type OrderLineDTO struct {
	ISBN     string          `json:"isbn"`
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

type OrderDetailDTO struct {
	OrderDTO
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	DeliveryDate time.Time       `json:"deliveryDate"`
	Lines        []OrderLineDTO  `json:"lines"`
	Total        decimal.Decimal `json:"total"`
}

type OrderCreatedResponse struct {
	Message     string `json:"message"`
	OrderNumber int    `json:"orderNumber"`
}
