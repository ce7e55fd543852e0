package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Ono         int       `gorm:"column:ono;primaryKey;autoIncrement"`
	UserID      int       `gorm:"column:userid;not null"`
	Created     time.Time `gorm:"column:created;not null;type:date"`
	ShipAddress string    `gorm:"column:shipaddress;not null;type:varchar(50)"`
	ShipCity    string    `gorm:"column:shipcity;not null;type:varchar(30)"`
	ShipZip     int       `gorm:"column:shipzip;not null"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderDetail amount 是下單時的價格快照
type OrderDetail struct {
	Ono    int             `gorm:"column:ono;primaryKey"`
	ISBN   string          `gorm:"column:isbn;primaryKey;type:varchar(20)"`
	Qty    int             `gorm:"column:qty;not null"`
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(12,2)"`
}

func (OrderDetail) TableName() string {
	return "odetails"
}

// OrderWithMember orders join members
type OrderWithMember struct {
	Order
	FName        string    `gorm:"column:fname"`
	LName        string    `gorm:"column:lname"`
	DeliveryDate time.Time `gorm:"column:delivery_date"`
}

type OrderDetailRow struct {
	OrderDetail
	Title string `gorm:"column:title"`
}
