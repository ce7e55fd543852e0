package db

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type IStore interface {
	IBookRepository
	ICartRepository
	IOrderRepository
	IUserRepository
	/*
		ExecTx 在同一個 transaction 內執行 fn
		fn 拿到的 IStore 所有 repo 都綁在該 transaction 上
		fn 回傳 error 就 rollback, 否則 commit
	*/
	ExecTx(ctx context.Context, fn func(IStore) error) error
	Ping(ctx context.Context) error
}

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// Store 各 repo 共用同一個 DbDao
type Store struct {
	dao *DbDao
	*BookRepo
	*CartRepo
	*OrderRepo
	*UserRepo
}

func NewStore(conn *gorm.DB) IStore {
	return newStore(NewDbDao(conn))
}

func newStore(dao *DbDao) *Store {
	return &Store{
		dao:       dao,
		BookRepo:  NewBookRepo(dao),
		CartRepo:  NewCartRepo(dao),
		OrderRepo: NewOrderRepo(dao),
		UserRepo:  NewUserRepo(dao),
	}
}

func (s *Store) ExecTx(ctx context.Context, fn func(IStore) error) error {
	return s.dao.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newStore(NewDbDao(tx)))
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.dao.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var (
	_ IStore           = (*Store)(nil)
	_ IBookRepository  = (*BookRepo)(nil)
	_ ICartRepository  = (*CartRepo)(nil)
	_ IOrderRepository = (*OrderRepo)(nil)
	_ IUserRepository  = (*UserRepo)(nil)
)
