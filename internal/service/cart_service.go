package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db"
	repoModel "github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/validator"
)

const MsgBookNotFound = "Book not found."

type ICartService interface {
	GetCart(ctx context.Context, userID int) ([]model.CartItem, error)
	AddToCart(ctx context.Context, userID int, isbn string, quantity *int) (*model.CartLine, error)
	ClearCart(ctx context.Context, userID int) error
}

type CartService struct {
	dbDao db.IStore
}

func NewCartService(dbDao db.IStore) ICartService {
	return &CartService{
		dbDao: dbDao,
	}
}

// GetCart 購物車是空的回傳空陣列, 不是 NotFound
func (c *CartService) GetCart(ctx context.Context, userID int) ([]model.CartItem, error) {
	if err := validator.RequireUser(userID); err != nil {
		return nil, err
	}

	rows, err := c.dbDao.GetCartItems(ctx, userID)
	if err != nil {
		return nil, er.Classify(err)
	}

	items := make([]model.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.CartItem{
			ISBN:     row.ISBN,
			Title:    row.Title,
			Price:    row.Price,
			Quantity: row.Qty,
		})
	}
	return items, nil
}

/*
AddToCart 同一本書再次加入是累加數量
由 db 的 upsert 一次完成, 不做先查再寫
*/
func (c *CartService) AddToCart(ctx context.Context, userID int, isbn string, quantity *int) (*model.CartLine, error) {
	if err := validator.RequireUser(userID); err != nil {
		return nil, err
	}
	isbn = strings.TrimSpace(isbn)
	if err := validator.ValidateCartLine(isbn, quantity); err != nil {
		return nil, err
	}

	line, err := c.dbDao.UpsertCartLine(ctx, &repoModel.CartLine{
		UserID: userID,
		ISBN:   isbn,
		Qty:    *quantity,
	})
	if err != nil {
		// fk 失敗代表書不存在
		classified := er.Classify(err)
		if er.Is(classified, er.NotFoundCode) {
			return nil, er.Wrap(er.NotFoundCode, MsgBookNotFound, err)
		}
		return nil, classified
	}

	return &model.CartLine{
		UserID:   line.UserID,
		ISBN:     line.ISBN,
		Quantity: line.Qty,
	}, nil
}

func (c *CartService) ClearCart(ctx context.Context, userID int) error {
	if err := validator.RequireUser(userID); err != nil {
		return err
	}
	if _, err := c.dbDao.DeleteCart(ctx, userID); err != nil {
		return er.Classify(err)
	}
	return nil
}
