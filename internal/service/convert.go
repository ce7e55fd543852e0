package service

import (
	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	domain "github.com/RoyceAzure/lab/bookshop/internal/model"
)

func convertRepoBookToModel(b *model.Book) domain.Book {
	return domain.Book{
		ISBN:    b.ISBN,
		Title:   b.Title,
		Author:  b.Author,
		Subject: b.Subject,
		Price:   b.Price,
	}
}

// password 不會離開 repository 層
func convertRepoMemberToModel(m *model.Member) *domain.Member {
	return &domain.Member{
		UserID:    m.UserID,
		FirstName: m.FName,
		LastName:  m.LName,
		Address:   m.Address,
		City:      m.City,
		Zip:       m.Zip,
		Phone:     m.Phone,
		Email:     m.Email,
	}
}

func convertRepoOrderToModel(o *model.Order) domain.Order {
	return domain.Order{
		OrderNumber: o.Ono,
		UserID:      o.UserID,
		CreatedDate: o.Created,
		ShipAddress: o.ShipAddress,
		ShipCity:    o.ShipCity,
		ShipZip:     o.ShipZip,
	}
}
