package db

import (
	"context"
	"fmt"

	"github.com/RoyceAzure/lab/bookshop/internal/constants"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrder 寫入後 order.Ono 會被填上
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *OrderRepo) CreateOrderDetails(ctx context.Context, details []model.OrderDetail) (int64, error) {
	if len(details) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).Create(&details)
	return result.RowsAffected, result.Error
}

// GetOrderWithMember owner 條件在 where 內, 非本人的訂單等同不存在
func (s *OrderRepo) GetOrderWithMember(ctx context.Context, ono, userID int) (*model.OrderWithMember, error) {
	var rows []model.OrderWithMember
	err := s.db.WithContext(ctx).
		Table("orders o").
		Select(fmt.Sprintf("o.ono, o.userid, o.created, o.shipaddress, o.shipcity, o.shipzip, m.fname, m.lname, o.created + %d AS delivery_date", constants.DeliveryDays)).
		Joins("JOIN members m ON m.userid = o.userid").
		Where("o.ono = ? AND o.userid = ?", ono, userID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (s *OrderRepo) GetOrderDetails(ctx context.Context, ono int) ([]model.OrderDetailRow, error) {
	rows := make([]model.OrderDetailRow, 0)
	err := s.db.WithContext(ctx).
		Table("odetails d").
		Select("d.ono, d.isbn, d.qty, d.amount, b.title").
		Joins("LEFT JOIN books b ON b.isbn = d.isbn").
		Where("d.ono = ?", ono).
		Order("d.isbn").
		Scan(&rows).Error
	return rows, err
}

func (s *OrderRepo) GetOrdersByUserID(ctx context.Context, userID int) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Where("userid = ?", userID).Order("ono").Find(&orders).Error
	return orders, err
}

// GetOrderForUpdate 需在 transaction 內呼叫
func (s *OrderRepo) GetOrderForUpdate(ctx context.Context, ono, userID int) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("ono = ? AND userid = ?", ono, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderRepo) DeleteOrderDetails(ctx context.Context, ono int) (int64, error) {
	result := s.db.WithContext(ctx).Where("ono = ?", ono).Delete(&model.OrderDetail{})
	return result.RowsAffected, result.Error
}

func (s *OrderRepo) DeleteOrder(ctx context.Context, ono int) (int64, error) {
	result := s.db.WithContext(ctx).Where("ono = ?", ono).Delete(&model.Order{})
	return result.RowsAffected, result.Error
}
