package db

import (
	"context"

	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

func (s *CartRepo) GetCartItems(ctx context.Context, userID int) ([]model.CartItemRow, error) {
	items := make([]model.CartItemRow, 0)
	err := s.db.WithContext(ctx).
		Table("cart c").
		Select("c.isbn, b.title, b.price, c.qty").
		Joins("JOIN books b ON b.isbn = c.isbn").
		Where("c.userid = ?", userID).
		Order("c.isbn").
		Scan(&items).Error
	return items, err
}

// GetCartLinesForUpdate 需在 transaction 內呼叫, 鎖住該 user 的購物車
func (s *CartRepo) GetCartLinesForUpdate(ctx context.Context, userID int) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("userid = ?", userID).
		Order("isbn").
		Find(&lines).Error
	return lines, err
}

/*
UpsertCartLine 單一語句完成 insert or 累加數量
INSERT ... ON CONFLICT (userid, isbn) DO UPDATE SET qty = cart.qty + EXCLUDED.qty
同一 user 同一本書併發加入不會產生重複列
*/
func (s *CartRepo) UpsertCartLine(ctx context.Context, line *model.CartLine) (*model.CartLine, error) {
	result := &model.CartLine{UserID: line.UserID, ISBN: line.ISBN, Qty: line.Qty}
	err := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "userid"}, {Name: "isbn"}},
				DoUpdates: clause.Set{{Column: clause.Column{Name: "qty"}, Value: gorm.Expr("cart.qty + EXCLUDED.qty")}},
			},
			clause.Returning{},
		).
		Create(result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CartRepo) DeleteCart(ctx context.Context, userID int) (int64, error) {
	result := s.db.WithContext(ctx).Where("userid = ?", userID).Delete(&model.CartLine{})
	return result.RowsAffected, result.Error
}
