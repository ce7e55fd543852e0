//go:generate mockgen -package mock_service -destination mock/service.go github.com/RoyceAzure/lab/bookshop/internal/service IAuthService,IBookService,ICartService,IOrderService,IUserService

package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/bookshop/internal/constants"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
)

const (
	MsgISBNRequired          = "ISBN is required."
	MsgItemNotFound          = "Item not found."
	MsgItemsNotFound         = "Items not found."
	MsgQueryParamsRequired   = "Query parameters are required."
	MsgSubjectRequired       = "Subject is required."
	MsgAuthorOrTitleRequired = "Author or Title is required."
)

type IBookService interface {
	GetBookByISBN(ctx context.Context, isbn string) (*model.Book, error)
	SearchBooks(ctx context.Context, query model.BookSearchQuery) (*model.BookSearchResult, error)
	FindBooksBySubject(ctx context.Context, subject string, limit, offset int) (*model.BookSearchResult, error)
	FindBooksByAuthorOrTitle(ctx context.Context, author, title string, limit, offset int) (*model.BookSearchResult, error)
	FindBooksByAllParams(ctx context.Context, subject, author, title string, limit, offset int) (*model.BookSearchResult, error)
	ListSubjects(ctx context.Context) ([]string, error)
}

type BookService struct {
	dbDao db.IStore
}

func NewBookService(dbDao db.IStore) IBookService {
	return &BookService{
		dbDao: dbDao,
	}
}

func (b *BookService) GetBookByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, er.Validation(MsgISBNRequired)
	}

	book, err := b.dbDao.GetBookByISBN(ctx, isbn)
	if err != nil {
		if er.Is(er.Classify(err), er.NotFoundCode) {
			return nil, er.NotFound(MsgItemNotFound)
		}
		return nil, er.Classify(err)
	}

	result := convertRepoBookToModel(book)
	return &result, nil
}

/*
SearchBooks 依照給的參數決定查詢方式
  - 只有 subject: FindBooksBySubject
  - 沒有 subject, 有 author 或 title: FindBooksByAuthorOrTitle
  - subject 加上 author 或 title: FindBooksByAllParams
*/
func (b *BookService) SearchBooks(ctx context.Context, query model.BookSearchQuery) (*model.BookSearchResult, error) {
	subject := strings.TrimSpace(query.Subject)
	author := strings.TrimSpace(query.Author)
	title := strings.TrimSpace(query.Title)

	switch {
	case subject == "" && author == "" && title == "":
		return nil, er.Validation(MsgQueryParamsRequired)
	case author == "" && title == "":
		return b.FindBooksBySubject(ctx, subject, query.Limit, query.Offset)
	case subject == "":
		return b.FindBooksByAuthorOrTitle(ctx, author, title, query.Limit, query.Offset)
	default:
		return b.FindBooksByAllParams(ctx, subject, author, title, query.Limit, query.Offset)
	}
}

func (b *BookService) FindBooksBySubject(ctx context.Context, subject string, limit, offset int) (*model.BookSearchResult, error) {
	if subject == "" {
		return nil, er.Validation(MsgSubjectRequired)
	}
	return b.search(ctx, db.BookFilter{Subject: subject}, limit, offset)
}

func (b *BookService) FindBooksByAuthorOrTitle(ctx context.Context, author, title string, limit, offset int) (*model.BookSearchResult, error) {
	if author == "" && title == "" {
		return nil, er.Validation(MsgAuthorOrTitleRequired)
	}
	return b.search(ctx, db.BookFilter{Author: author, Title: title}, limit, offset)
}

func (b *BookService) FindBooksByAllParams(ctx context.Context, subject, author, title string, limit, offset int) (*model.BookSearchResult, error) {
	if subject == "" {
		return nil, er.Validation(MsgSubjectRequired)
	}
	return b.search(ctx, db.BookFilter{Subject: subject, Author: author, Title: title}, limit, offset)
}

func (b *BookService) search(ctx context.Context, filter db.BookFilter, limit, offset int) (*model.BookSearchResult, error) {
	limit, offset = normalizePaging(limit, offset)

	books, total, err := b.dbDao.SearchBooks(ctx, filter, limit, offset)
	if err != nil {
		return nil, er.Classify(err)
	}
	if len(books) == 0 {
		return nil, er.NotFound(MsgItemsNotFound)
	}

	result := &model.BookSearchResult{
		Results:    make([]model.Book, 0, len(books)),
		TotalCount: total,
	}
	for i := range books {
		result.Results = append(result.Results, convertRepoBookToModel(&books[i]))
	}
	return result, nil
}

func (b *BookService) ListSubjects(ctx context.Context) ([]string, error) {
	subjects, err := b.dbDao.ListSubjects(ctx)
	if err != nil {
		return nil, er.Classify(err)
	}
	if len(subjects) == 0 {
		return nil, er.NotFound(MsgItemsNotFound)
	}
	return subjects, nil
}

func normalizePaging(limit, offset int) (int, int) {
	if limit < 1 {
		limit = constants.DefaultPagingLimit
	}
	if limit > constants.MaxPagingLimit {
		limit = constants.MaxPagingLimit
	}
	if offset < 0 {
		offset = constants.DefaultPagingOffset
	}
	return limit, offset
}
