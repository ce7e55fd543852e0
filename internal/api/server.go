package api

import "github.com/RoyceAzure/lab/bookshop/internal/api/handler"

type Server struct {
	VersionHandler *handler.VersionHandler
	BookHandler    *handler.BookHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	UserHandler    *handler.UserHandler
}

func NewServer(
	versionHandler *handler.VersionHandler,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
) *Server {
	return &Server{
		VersionHandler: versionHandler,
		BookHandler:    bookHandler,
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		UserHandler:    userHandler,
	}
}
