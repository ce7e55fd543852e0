package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/bookshop/internal/api"
	"github.com/RoyceAzure/lab/bookshop/internal/api/handler"
	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/session"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	"github.com/RoyceAzure/lab/bookshop/internal/pkg/limiter"
	mock_service "github.com/RoyceAzure/lab/bookshop/internal/service/mock"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	books    *mock_service.MockIBookService
	carts    *mock_service.MockICartService
	orders   *mock_service.MockIOrderService
	users    *mock_service.MockIUserService
	auth     *mock_service.MockIAuthService
	sessions *session.CookieSessionManager
	limiter  *limiter.KeyedLimiter
	router   *chi.Mux
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.books = mock_service.NewMockIBookService(s.ctrl)
	s.carts = mock_service.NewMockICartService(s.ctrl)
	s.orders = mock_service.NewMockIOrderService(s.ctrl)
	s.users = mock_service.NewMockIUserService(s.ctrl)
	s.auth = mock_service.NewMockIAuthService(s.ctrl)
	s.sessions = session.NewCookieSessionManager("0123456789abcdef0123456789abcdef", time.Hour, false)
	s.limiter = limiter.NewKeyedLimiter(limiter.LimiterConfig{
		Capacity:    3,
		RatePS:      1,
		RatePPeriod: 3600,
		RefillRate:  time.Hour,
	}, time.Hour)

	server := api.NewServer(
		handler.NewVersionHandler("test"),
		handler.NewBookHandler(s.books),
		handler.NewCartHandler(s.carts),
		handler.NewOrderHandler(s.orders),
		handler.NewUserHandler(s.users, s.auth, s.sessions),
	)
	s.router = SetupRouter(server, s.sessions, s.limiter, nil)
}

func (s *RouterTestSuite) TearDownTest() {
	s.limiter.Stop()
	s.ctrl.Finish()
}

func (s *RouterTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) login() *http.Cookie {
	s.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&model.AuthResult{UserID: 7, FirstName: "Ada"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(`{"email":"ada@example.com","password":"analytical"}`))
	rec := s.do(req)
	s.Require().Equal(http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "bookshop.sid" {
			return c
		}
	}
	s.FailNow("session cookie not set")
	return nil
}

func (s *RouterTestSuite) TestVersionAndSecurityHeaders() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
	s.NotEmpty(rec.Header().Get("X-Request-Id"))

	rec = s.do(httptest.NewRequest(http.MethodGet, "/api/v1", nil))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v2/nothing", nil))
	s.Equal(http.StatusNotFound, rec.Code)

	var body response.ErrorBody
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("error", body.Status)
	s.Equal(http.StatusNotFound, body.StatusCode)
}

func (s *RouterTestSuite) TestCartRequiresSession() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestSessionFlowsToCart() {
	cookie := s.login()

	s.carts.EXPECT().GetCart(gomock.Any(), 7).Return([]model.CartItem{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(cookie)
	rec := s.do(req)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *RouterTestSuite) TestSubjectsNotShadowedByIsbn() {
	s.books.EXPECT().ListSubjects(gomock.Any()).Return([]string{"Fantasy"}, nil)
	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/books/subjects", nil))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestLoginRateLimited() {
	s.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&model.AuthResult{UserID: 7, FirstName: "Ada"}, nil).Times(3)

	var last int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(`{"email":"a@b.co","password":"secret1"}`))
		req.RemoteAddr = "192.0.2.10:4000"
		last = s.do(req).Code
	}
	s.Equal(http.StatusTooManyRequests, last)
}
