package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/bookshop/internal/api/dto"
	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	"github.com/RoyceAzure/lab/bookshop/internal/service"
	"github.com/RoyceAzure/lab/bookshop/internal/util"
	"github.com/go-chi/chi/v5"
)

type BookHandler struct {
	bookService service.IBookService
}

func NewBookHandler(bookService service.IBookService) *BookHandler {
	if bookService == nil {
		panic("bookService cannot be nil")
	}
	return &BookHandler{
		bookService: bookService,
	}
}

// @Summary search books
// @Tags books
// @Produce json
// @Param subject query string false "subject, exact match"
// @Param author query string false "author prefix"
// @Param title query string false "title substring"
// @Param limit query int false "page size, default 5"
// @Param offset query int false "rows to skip"
// @Success 200 {object} dto.BookSearchResponse
// @Failure 400 {object} response.ErrorBody "Query parameters are required."
// @Failure 404 {object} response.ErrorBody "Items not found."
// @Router /books [get]
func (b *BookHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := b.bookService.SearchBooks(r.Context(), model.BookSearchQuery{
		Subject: q.Get("subject"),
		Author:  q.Get("author"),
		Title:   q.Get("title"),
		Limit:   util.ParseLimit(q.Get("limit")),
		Offset:  util.ParseOffset(q.Get("offset")),
	})
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}

	response.SuccessJSON(w, http.StatusOK, dto.BookSearchResponse{
		Results:    convertBooksToDTO(result.Results),
		TotalCount: result.TotalCount,
	})
}

// @Summary list subjects
// @Tags books
// @Produce json
// @Success 200 {array} string
// @Router /books/subjects [get]
func (b *BookHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := b.bookService.ListSubjects(r.Context())
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, subjects)
}

// @Summary get book by isbn
// @Tags books
// @Produce json
// @Param isbn path string true "isbn"
// @Success 200 {object} dto.BookDTO
// @Failure 404 {object} response.ErrorBody "Item not found."
// @Router /books/{isbn} [get]
func (b *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := b.bookService.GetBookByISBN(r.Context(), chi.URLParam(r, "isbn"))
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, convertBookModelToDTO(*book))
}
