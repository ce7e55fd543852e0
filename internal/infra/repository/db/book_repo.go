package db

import (
	"context"

	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	"gorm.io/gorm/clause"
)

type BookRepo struct {
	db      *DbDao
	builder *BookSearchBuilder
}

func NewBookRepo(db *DbDao) *BookRepo {
	return &BookRepo{db: db, builder: NewBookSearchBuilder()}
}

func (s *BookRepo) GetBookByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	var book model.Book
	err := s.db.WithContext(ctx).Where("isbn = ?", isbn).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// SearchBooks 回傳該頁資料與符合條件的總筆數
func (s *BookRepo) SearchBooks(ctx context.Context, filter BookFilter, limit, offset int) ([]model.Book, int64, error) {
	countQuery, err := s.builder.CountQuery(filter)
	if err != nil {
		return nil, 0, err
	}
	pageQuery, err := s.builder.PageQuery(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Raw(countQuery.SQL, countQuery.Args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []model.Book
	if err := s.db.WithContext(ctx).Raw(pageQuery.SQL, pageQuery.Args...).Scan(&books).Error; err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (s *BookRepo) ListSubjects(ctx context.Context) ([]string, error) {
	var subjects []string
	err := s.db.WithContext(ctx).Model(&model.Book{}).
		Distinct("subject").
		Order("subject").
		Pluck("subject", &subjects).Error
	return subjects, err
}

// CreateBookIfNotExists 冪等, 給 seed 用
func (s *BookRepo) CreateBookIfNotExists(ctx context.Context, book *model.Book) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "isbn"}}, DoNothing: true}).
		Create(book).Error
}
