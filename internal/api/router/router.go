package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/bookshop/internal/api"
	m "github.com/RoyceAzure/lab/bookshop/internal/api/middleware"
	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/session"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/pkg/limiter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const MsgRouteNotFound = "Route not found."

func SetupRouter(server *api.Server, sessions session.ISessionManager, authLimiter *limiter.KeyedLimiter, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)
	r.Use(m.SecurityHeadersMiddleware)
	r.Use(m.SessionMiddleware(sessions))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.ErrorMessageJSON(w, int(er.NotFoundCode), MsgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.ErrorMessageJSON(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	r.Get("/", server.VersionHandler.Root)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", server.VersionHandler.V1)

		r.Route("/books", func(r chi.Router) {
			r.Get("/", server.BookHandler.SearchBooks)
			r.Get("/subjects", server.BookHandler.ListSubjects)
			r.Get("/{isbn}", server.BookHandler.GetBook)
		})

		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(m.NewRateLimitMiddleware(authLimiter))
				r.Post("/register", server.UserHandler.Register)
				r.Post("/login", server.UserHandler.Login)
			})
			r.Get("/logout", server.UserHandler.Logout)
			r.With(m.RequireSession).Get("/{id}", server.UserHandler.GetUser)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(m.RequireSession)
			r.Get("/", server.CartHandler.GetCart)
			r.Post("/", server.CartHandler.AddToCart)
			r.Delete("/", server.CartHandler.ClearCart)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(m.RequireSession)
			r.Get("/", server.OrderHandler.ListOrders)
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.Delete("/{id}", server.OrderHandler.DeleteOrder)
		})
	})

	_ = chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		log.Debug().Str("method", method).Str("route", route).Msg("route registered")
		return nil
	})
	return r
}
