package service

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db"
	repoModel "github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/validator"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	MsgCartEmpty      = "Cart is empty."
	MsgMemberNotFound = "User not found."
)

type IOrderService interface {
	GetOrder(ctx context.Context, orderNumber, userID int) (*model.OrderDetail, error)
	ListOrders(ctx context.Context, userID int) ([]model.Order, error)
	CreateOrder(ctx context.Context, userID int) (int, error)
	DeleteOrder(ctx context.Context, orderNumber, userID int) error
}

type OrderService struct {
	dbDao db.IStore
	now   func() time.Time
}

func NewOrderService(dbDao db.IStore) IOrderService {
	return &OrderService{
		dbDao: dbDao,
		now:   time.Now,
	}
}

func (o *OrderService) GetOrder(ctx context.Context, orderNumber, userID int) (*model.OrderDetail, error) {
	if err := validator.RequireUser(userID); err != nil {
		return nil, err
	}
	if err := validator.ValidateOrderNumber(orderNumber); err != nil {
		return nil, err
	}

	header, err := o.dbDao.GetOrderWithMember(ctx, orderNumber, userID)
	if err != nil {
		if er.Is(er.Classify(err), er.NotFoundCode) {
			return nil, er.NotFound(MsgItemNotFound)
		}
		return nil, er.Classify(err)
	}

	rows, err := o.dbDao.GetOrderDetails(ctx, orderNumber)
	if err != nil {
		return nil, er.Classify(err)
	}

	detail := &model.OrderDetail{
		Order:        convertRepoOrderToModel(&header.Order),
		FirstName:    header.FName,
		LastName:     header.LName,
		DeliveryDate: header.DeliveryDate,
		Lines:        make([]model.OrderLine, 0, len(rows)),
		Total:        decimal.Zero,
	}
	for _, row := range rows {
		detail.Lines = append(detail.Lines, model.OrderLine{
			OrderNumber: row.Ono,
			ISBN:        row.ISBN,
			Title:       row.Title,
			Quantity:    row.Qty,
			Amount:      row.Amount,
		})
		detail.Total = detail.Total.Add(row.Amount)
	}
	return detail, nil
}

func (o *OrderService) ListOrders(ctx context.Context, userID int) ([]model.Order, error) {
	if err := validator.RequireUser(userID); err != nil {
		return nil, err
	}

	orders, err := o.dbDao.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, er.Classify(err)
	}
	if len(orders) == 0 {
		return nil, er.NotFound(MsgItemsNotFound)
	}

	result := make([]model.Order, 0, len(orders))
	for i := range orders {
		result = append(result, convertRepoOrderToModel(&orders[i]))
	}
	return result, nil
}

/*
CreateOrder 在同一個 transaction 內完成:
 1. 鎖住並讀取購物車, 空的直接 NotFound
 2. 每一行重新查書價, amount = price * qty, 任一本書不存在整筆取消
 3. 讀會員地址當出貨地址
 4. 寫訂單與明細
 5. 清空購物車
*/
func (o *OrderService) CreateOrder(ctx context.Context, userID int) (int, error) {
	if err := validator.RequireUser(userID); err != nil {
		return 0, err
	}

	var orderNumber int
	err := o.dbDao.ExecTx(ctx, func(tx db.IStore) error {
		cartLines, err := tx.GetCartLinesForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if len(cartLines) == 0 {
			return er.NotFound(MsgCartEmpty)
		}

		details, err := priceCartLines(ctx, tx, cartLines)
		if err != nil {
			return err
		}

		member, err := tx.GetMemberByID(ctx, userID)
		if err != nil {
			if er.Is(er.Classify(err), er.NotFoundCode) {
				return er.Unauthorized(MsgMemberNotFound)
			}
			return err
		}

		order := &repoModel.Order{
			UserID:      userID,
			Created:     o.now(),
			ShipAddress: member.Address,
			ShipCity:    member.City,
			ShipZip:     member.Zip,
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		for i := range details {
			details[i].Ono = order.Ono
		}
		if _, err := tx.CreateOrderDetails(ctx, details); err != nil {
			return err
		}

		if _, err := tx.DeleteCart(ctx, userID); err != nil {
			return err
		}

		orderNumber = order.Ono
		return nil
	})
	if err != nil {
		return 0, er.Classify(err)
	}

	log.Info().Int("user_id", userID).Int("order_number", orderNumber).Msg("order created")
	return orderNumber, nil
}

// priceCartLines 以目前書價計算每一行的金額快照
func priceCartLines(ctx context.Context, tx db.IStore, cartLines []repoModel.CartLine) ([]repoModel.OrderDetail, error) {
	details := make([]repoModel.OrderDetail, 0, len(cartLines))
	for _, line := range cartLines {
		book, err := tx.GetBookByISBN(ctx, line.ISBN)
		if err != nil {
			if er.Is(er.Classify(err), er.NotFoundCode) {
				return nil, er.Wrap(er.NotFoundCode, MsgBookNotFound, err)
			}
			return nil, err
		}

		amount := book.Price.Mul(decimal.NewFromInt(int64(line.Qty)))
		if err := validator.ValidateOrderLine(line.ISBN, line.Qty, &amount); err != nil {
			return nil, err
		}
		details = append(details, repoModel.OrderDetail{
			ISBN:   line.ISBN,
			Qty:    line.Qty,
			Amount: amount,
		})
	}
	return details, nil
}

// DeleteOrder 先刪明細再刪訂單, 同一個 transaction
func (o *OrderService) DeleteOrder(ctx context.Context, orderNumber, userID int) error {
	if err := validator.RequireUser(userID); err != nil {
		return err
	}
	if err := validator.ValidateOrderNumber(orderNumber); err != nil {
		return err
	}

	err := o.dbDao.ExecTx(ctx, func(tx db.IStore) error {
		if _, err := tx.GetOrderForUpdate(ctx, orderNumber, userID); err != nil {
			if er.Is(er.Classify(err), er.NotFoundCode) {
				return er.NotFound(MsgItemNotFound)
			}
			return err
		}
		if _, err := tx.DeleteOrderDetails(ctx, orderNumber); err != nil {
			return err
		}
		affected, err := tx.DeleteOrder(ctx, orderNumber)
		if err != nil {
			return err
		}
		if affected == 0 {
			return er.NotFound(MsgItemNotFound)
		}
		return nil
	})
	if err != nil {
		return er.Classify(err)
	}

	log.Info().Int("user_id", userID).Int("order_number", orderNumber).Msg("order deleted")
	return nil
}
