package db

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// default dialect 產生 ? placeholder, 交給 gorm 轉成 $n
const searchDialect = "default"

const (
	tableBooks = "books"
	colISBN    = "isbn"
	colAuthor  = "author"
	colTitle   = "title"
	colSubject = "subject"
	colPrice   = "price"
	aliasCount = "count"
)

// BookFilter 空字串代表不過濾
type BookFilter struct {
	Subject string
	Author  string
	Title   string
}

func (f BookFilter) IsEmpty() bool {
	return f.Subject == "" && f.Author == "" && f.Title == ""
}

type boundQuery struct {
	SQL  string
	Args []interface{}
}

/*
BookSearchBuilder 同一個 predicate 產生分頁查詢與 COUNT 查詢
author 前綴比對, title 子字串比對, subject 完全相等
使用者輸入一律綁參數
*/
type BookSearchBuilder struct {
	dialect goqu.DialectWrapper
}

func NewBookSearchBuilder() *BookSearchBuilder {
	return &BookSearchBuilder{dialect: goqu.Dialect(searchDialect)}
}

func (b *BookSearchBuilder) where(filter BookFilter) []exp.Expression {
	conds := make([]exp.Expression, 0, 3)
	if filter.Subject != "" {
		conds = append(conds, goqu.C(colSubject).Eq(filter.Subject))
	}
	if filter.Author != "" {
		conds = append(conds, goqu.C(colAuthor).Like(escapeLike(filter.Author)+"%"))
	}
	if filter.Title != "" {
		conds = append(conds, goqu.C(colTitle).Like("%"+escapeLike(filter.Title)+"%"))
	}
	return conds
}

func (b *BookSearchBuilder) PageQuery(filter BookFilter, limit, offset int) (boundQuery, error) {
	ds := b.dialect.From(tableBooks).
		Prepared(true).
		Select(colISBN, colAuthor, colTitle, colPrice, colSubject).
		Where(b.where(filter)...).
		Order(goqu.C(colISBN).Asc()).
		Limit(uint(limit)).
		Offset(uint(offset))

	sql, args, err := ds.ToSQL()
	if err != nil {
		return boundQuery{}, err
	}
	return boundQuery{SQL: sql, Args: args}, nil
}

func (b *BookSearchBuilder) CountQuery(filter BookFilter) (boundQuery, error) {
	ds := b.dialect.From(tableBooks).
		Prepared(true).
		Select(goqu.COUNT(goqu.Star()).As(aliasCount)).
		Where(b.where(filter)...)

	sql, args, err := ds.ToSQL()
	if err != nil {
		return boundQuery{}, err
	}
	return boundQuery{SQL: sql, Args: args}, nil
}

// escapeLike 讓使用者輸入的 % _ 只當字面比對
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
