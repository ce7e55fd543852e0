package handler

import (
	"github.com/RoyceAzure/lab/bookshop/internal/api/dto"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
)

func convertBookModelToDTO(b model.Book) dto.BookDTO {
	return dto.BookDTO{
		ISBN:    b.ISBN,
		Title:   b.Title,
		Author:  b.Author,
		Subject: b.Subject,
		Price:   b.Price,
	}
}

func convertBooksToDTO(books []model.Book) []dto.BookDTO {
	result := make([]dto.BookDTO, 0, len(books))
	for _, b := range books {
		result = append(result, convertBookModelToDTO(b))
	}
	return result
}

func convertOrderModelToDTO(o model.Order) dto.OrderDTO {
	return dto.OrderDTO{
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		CreatedDate: o.CreatedDate,
		ShipAddress: o.ShipAddress,
		ShipCity:    o.ShipCity,
		ShipZip:     o.ShipZip,
	}
}

func convertOrderDetailToDTO(d *model.OrderDetail) dto.OrderDetailDTO {
	lines := make([]dto.OrderLineDTO, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, dto.OrderLineDTO{
			ISBN:     l.ISBN,
			Title:    l.Title,
			Quantity: l.Quantity,
			Amount:   l.Amount,
		})
	}
	return dto.OrderDetailDTO{
		OrderDTO:     convertOrderModelToDTO(d.Order),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		DeliveryDate: d.DeliveryDate,
		Lines:        lines,
		Total:        d.Total,
	}
}

func convertMemberModelToDTO(m *model.Member) dto.MemberDTO {
	return dto.MemberDTO{
		UserID:    m.UserID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Address:   m.Address,
		City:      m.City,
		Zip:       m.Zip,
		Phone:     m.Phone,
		Email:     m.Email,
	}
}
