package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db"
	mock_db "github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/mock"
	repoModel "github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 模擬 transaction: 直接用同一個 mock 執行 fn, 回傳 fn 的錯誤
func expectTx(store *mock_db.MockIStore) {
	store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(db.IStore) error) error {
			return fn(store)
		})
}

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestOrderService(store db.IStore) *OrderService {
	return &OrderService{dbDao: store, now: func() time.Time { return fixedNow }}
}

func testMember() *repoModel.Member {
	return &repoModel.Member{UserID: 1, FName: "Ada", LName: "Lovelace", Address: "12 St James Square", City: "London", Zip: 12345}
}

func TestCreateOrder(t *testing.T) {
	cart := []repoModel.CartLine{
		{UserID: 1, ISBN: "1000000001", Qty: 2},
		{UserID: 1, ISBN: "1000000003", Qty: 1},
	}

	testCases := []struct {
		name         string
		userID       int
		setUpStore   func(store *mock_db.MockIStore)
		expectedCode er.ErrorCode
		expectedOno  int
	}{
		{
			name:   "priced lines, cart cleared",
			userID: 1,
			setUpStore: func(store *mock_db.MockIStore) {
				expectTx(store)
				store.EXPECT().GetCartLinesForUpdate(gomock.Any(), 1).Return(cart, nil)
				store.EXPECT().GetBookByISBN(gomock.Any(), "1000000001").
					Return(&repoModel.Book{ISBN: "1000000001", Price: decimal.RequireFromString("12.50")}, nil)
				store.EXPECT().GetBookByISBN(gomock.Any(), "1000000003").
					Return(&repoModel.Book{ISBN: "1000000003", Price: decimal.RequireFromString("9.99")}, nil)
				store.EXPECT().GetMemberByID(gomock.Any(), 1).Return(testMember(), nil)
				store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, order *repoModel.Order) error {
						require.Equal(t, "12 St James Square", order.ShipAddress)
						require.Equal(t, "London", order.ShipCity)
						require.Equal(t, 12345, order.ShipZip)
						require.Equal(t, fixedNow, order.Created)
						order.Ono = 77
						return nil
					})
				store.EXPECT().CreateOrderDetails(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, details []repoModel.OrderDetail) (int64, error) {
						require.Len(t, details, 2)
						require.Equal(t, 77, details[0].Ono)
						require.True(t, decimal.RequireFromString("25.00").Equal(details[0].Amount))
						require.True(t, decimal.RequireFromString("9.99").Equal(details[1].Amount))
						return int64(len(details)), nil
					})
				store.EXPECT().DeleteCart(gomock.Any(), 1).Return(int64(2), nil)
			},
			expectedOno: 77,
		},
		{
			name:   "empty cart",
			userID: 1,
			setUpStore: func(store *mock_db.MockIStore) {
				expectTx(store)
				store.EXPECT().GetCartLinesForUpdate(gomock.Any(), 1).Return([]repoModel.CartLine{}, nil)
			},
			expectedCode: er.NotFoundCode,
		},
		{
			name:   "missing book aborts before any write",
			userID: 1,
			setUpStore: func(store *mock_db.MockIStore) {
				expectTx(store)
				store.EXPECT().GetCartLinesForUpdate(gomock.Any(), 1).Return(cart, nil)
				store.EXPECT().GetBookByISBN(gomock.Any(), "1000000001").
					Return(&repoModel.Book{ISBN: "1000000001", Price: decimal.RequireFromString("12.50")}, nil)
				store.EXPECT().GetBookByISBN(gomock.Any(), "1000000003").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: er.NotFoundCode,
		},
		{
			name:   "detail insert failure rolls back",
			userID: 1,
			setUpStore: func(store *mock_db.MockIStore) {
				expectTx(store)
				store.EXPECT().GetCartLinesForUpdate(gomock.Any(), 1).Return(cart[:1], nil)
				store.EXPECT().GetBookByISBN(gomock.Any(), "1000000001").
					Return(&repoModel.Book{ISBN: "1000000001", Price: decimal.RequireFromString("12.50")}, nil)
				store.EXPECT().GetMemberByID(gomock.Any(), 1).Return(testMember(), nil)
				store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
				store.EXPECT().CreateOrderDetails(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full"))
			},
			expectedCode: er.StorageCode,
		},
		{
			name:         "no session",
			userID:       0,
			setUpStore:   func(store *mock_db.MockIStore) {},
			expectedCode: er.UnauthorizedCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mock_db.NewMockIStore(ctrl)
			tc.setUpStore(store)

			ono, err := newTestOrderService(store).CreateOrder(context.Background(), tc.userID)
			if tc.expectedCode != 0 {
				require.Error(t, err)
				require.Equal(t, tc.expectedCode, er.CodeOf(err))
				require.Zero(t, ono)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedOno, ono)
		})
	}
}

func TestDeleteOrder(t *testing.T) {
	testCases := []struct {
		name         string
		setUpStore   func(store *mock_db.MockIStore)
		expectedCode er.ErrorCode
	}{
		{
			name: "lines before header",
			setUpStore: func(store *mock_db.MockIStore) {
				expectTx(store)
				gomock.InOrder(
					store.EXPECT().GetOrderForUpdate(gomock.Any(), 5, 1).Return(&repoModel.Order{Ono: 5, UserID: 1}, nil),
					store.EXPECT().DeleteOrderDetails(gomock.Any(), 5).Return(int64(2), nil),
					store.EXPECT().DeleteOrder(gomock.Any(), 5).Return(int64(1), nil),
				)
			},
		},
		{
			name: "not owner",
			setUpStore: func(store *mock_db.MockIStore) {
				expectTx(store)
				store.EXPECT().GetOrderForUpdate(gomock.Any(), 5, 1).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: er.NotFoundCode,
		},
		{
			name: "header delete fails after lines",
			setUpStore: func(store *mock_db.MockIStore) {
				expectTx(store)
				store.EXPECT().GetOrderForUpdate(gomock.Any(), 5, 1).Return(&repoModel.Order{Ono: 5, UserID: 1}, nil)
				store.EXPECT().DeleteOrderDetails(gomock.Any(), 5).Return(int64(2), nil)
				store.EXPECT().DeleteOrder(gomock.Any(), 5).Return(int64(0), errors.New("lock timeout"))
			},
			expectedCode: er.StorageCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mock_db.NewMockIStore(ctrl)
			tc.setUpStore(store)

			err := newTestOrderService(store).DeleteOrder(context.Background(), 5, 1)
			if tc.expectedCode != 0 {
				require.Equal(t, tc.expectedCode, er.CodeOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeleteOrderValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := newTestOrderService(mock_db.NewMockIStore(ctrl))

	require.True(t, er.Is(svc.DeleteOrder(context.Background(), 5, 0), er.UnauthorizedCode))
	require.True(t, er.Is(svc.DeleteOrder(context.Background(), 0, 1), er.ValidationCode))
}

func TestGetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_db.NewMockIStore(ctrl)
	svc := newTestOrderService(store)

	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store.EXPECT().GetOrderWithMember(gomock.Any(), 5, 1).Return(&repoModel.OrderWithMember{
		Order:        repoModel.Order{Ono: 5, UserID: 1, Created: created, ShipAddress: "a", ShipCity: "c", ShipZip: 1},
		FName:        "Ada",
		LName:        "Lovelace",
		DeliveryDate: created.AddDate(0, 0, 7),
	}, nil)
	store.EXPECT().GetOrderDetails(gomock.Any(), 5).Return([]repoModel.OrderDetailRow{
		{OrderDetail: repoModel.OrderDetail{Ono: 5, ISBN: "1000000001", Qty: 2, Amount: decimal.RequireFromString("25.00")}, Title: "The Fellowship of the Ring"},
		{OrderDetail: repoModel.OrderDetail{Ono: 5, ISBN: "1000000003", Qty: 1, Amount: decimal.RequireFromString("9.99")}, Title: "Dune"},
	}, nil)
	store.EXPECT().GetOrderWithMember(gomock.Any(), 6, 1).Return(nil, gorm.ErrRecordNotFound)

	detail, err := svc.GetOrder(context.Background(), 5, 1)
	require.NoError(t, err)
	require.Equal(t, 5, detail.OrderNumber)
	require.Equal(t, "Ada", detail.FirstName)
	require.Equal(t, created.AddDate(0, 0, 7), detail.DeliveryDate)
	require.Len(t, detail.Lines, 2)
	require.True(t, decimal.RequireFromString("34.99").Equal(detail.Total))

	_, err = svc.GetOrder(context.Background(), 6, 1)
	require.True(t, er.Is(err, er.NotFoundCode))
}

func TestListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_db.NewMockIStore(ctrl)
	svc := newTestOrderService(store)

	gomock.InOrder(
		store.EXPECT().GetOrdersByUserID(gomock.Any(), 1).Return([]repoModel.Order{{Ono: 1, UserID: 1}, {Ono: 2, UserID: 1}}, nil),
		store.EXPECT().GetOrdersByUserID(gomock.Any(), 1).Return([]repoModel.Order{}, nil),
	)

	orders, err := svc.ListOrders(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	_, err = svc.ListOrders(context.Background(), 1)
	require.True(t, er.Is(err, er.NotFoundCode))
}
