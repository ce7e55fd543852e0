//go:generate mockgen -package mock_db -destination mock/store.go github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db IStore

package db

import (
	"context"

	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
)

// IBookRepository 書籍目錄, 只讀 (seed 除外)
type IBookRepository interface {
	GetBookByISBN(ctx context.Context, isbn string) (*model.Book, error)
	SearchBooks(ctx context.Context, filter BookFilter, limit, offset int) ([]model.Book, int64, error)
	ListSubjects(ctx context.Context) ([]string, error)
	CreateBookIfNotExists(ctx context.Context, book *model.Book) error
}

// ICartRepository 購物車
type ICartRepository interface {
	GetCartItems(ctx context.Context, userID int) ([]model.CartItemRow, error)
	GetCartLinesForUpdate(ctx context.Context, userID int) ([]model.CartLine, error)
	UpsertCartLine(ctx context.Context, line *model.CartLine) (*model.CartLine, error)
	DeleteCart(ctx context.Context, userID int) (int64, error)
}

// IOrderRepository 訂單與訂單明細
type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	CreateOrderDetails(ctx context.Context, details []model.OrderDetail) (int64, error)
	GetOrderWithMember(ctx context.Context, ono, userID int) (*model.OrderWithMember, error)
	GetOrderDetails(ctx context.Context, ono int) ([]model.OrderDetailRow, error)
	GetOrdersByUserID(ctx context.Context, userID int) ([]model.Order, error)
	GetOrderForUpdate(ctx context.Context, ono, userID int) (*model.Order, error)
	DeleteOrderDetails(ctx context.Context, ono int) (int64, error)
	DeleteOrder(ctx context.Context, ono int) (int64, error)
}

// IUserRepository 會員
type IUserRepository interface {
	CreateMember(ctx context.Context, member *model.Member) (*model.Member, error)
	GetMemberByID(ctx context.Context, userID int) (*model.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*model.Member, error)
	CountMembersByEmail(ctx context.Context, email string) (int64, error)
}
