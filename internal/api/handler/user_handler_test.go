package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/RoyceAzure/lab/bookshop/internal/api/dto"
	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	mock_service "github.com/RoyceAzure/lab/bookshop/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	testCases := []struct {
		name           string
		body           any
		sessions       *fakeSessions
		setUpMock      func(auth *mock_service.MockIAuthService)
		expectedStatus int
		expectedUserID int
	}{
		{
			name:     "ok sets session",
			body:     dto.LoginDTO{Email: "ada@example.com", Password: "analytical"},
			sessions: &fakeSessions{},
			setUpMock: func(auth *mock_service.MockIAuthService) {
				auth.EXPECT().Authenticate(gomock.Any(), "ada@example.com", "analytical").
					Return(&model.AuthResult{UserID: 3, FirstName: "Ada"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUserID: 3,
		},
		{
			name:     "wrong password no session",
			body:     dto.LoginDTO{Email: "ada@example.com", Password: "x"},
			sessions: &fakeSessions{},
			setUpMock: func(auth *mock_service.MockIAuthService) {
				auth.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, er.Unauthorized("Email or password incorrect."))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:     "session save fails",
			body:     dto.LoginDTO{Email: "ada@example.com", Password: "analytical"},
			sessions: &fakeSessions{saveErr: errors.New("securecookie: error")},
			setUpMock: func(auth *mock_service.MockIAuthService) {
				auth.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&model.AuthResult{UserID: 3, FirstName: "Ada"}, nil)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			auth := mock_service.NewMockIAuthService(ctrl)
			tc.setUpMock(auth)

			h := NewUserHandler(mock_service.NewMockIUserService(ctrl), auth, tc.sessions)
			rec := serve(t, http.MethodPost, "/users/login", h.Login, "/users/login", tc.body, 0)

			require.Equal(t, tc.expectedStatus, rec.Code)
			require.Equal(t, tc.expectedUserID, tc.sessions.userID)
			if tc.expectedStatus == http.StatusOK {
				require.JSONEq(t, `{"userId":3,"firstName":"Ada"}`, rec.Body.String())
			}
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_service.NewMockIUserService(ctrl)
	h := NewUserHandler(users, mock_service.NewMockIAuthService(ctrl), &fakeSessions{})

	in := dto.RegisterUserDTO{
		FirstName: "Ada", LastName: "Lovelace", Address: "12 St James Square",
		City: "London", Zip: 12345, Email: "ada@example.com", Password: "analytical",
	}
	users.EXPECT().RegisterUser(gomock.Any(), model.RegisterUserInput{
		FirstName: "Ada", LastName: "Lovelace", Address: "12 St James Square",
		City: "London", Zip: 12345, Email: "ada@example.com", Password: "analytical",
	}).Return(42, nil)

	rec := serve(t, http.MethodPost, "/users/register", h.Register, "/users/register", in, 0)
	require.Equal(t, http.StatusCreated, rec.Code)
	var res dto.RegisterUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 42, res.UserID)

	users.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(0, er.Validation("Password is too short.\nInvalid zip code."))
	rec = serve(t, http.MethodPost, "/users/register", h.Register, "/users/register", in, 0)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Password is too short.\nInvalid zip code.", decodeError(t, rec).Message)
}

func TestRegisterHandlerStringZip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_service.NewMockIUserService(ctrl)
	h := NewUserHandler(users, mock_service.NewMockIAuthService(ctrl), &fakeSessions{})

	users.EXPECT().RegisterUser(gomock.Any(), model.RegisterUserInput{
		FirstName: "Ada", LastName: "Lovelace", Address: "12 St James Square",
		City: "London", Zip: 12345, Email: "ada@example.com", Password: "analytical",
	}).Return(7, nil)

	body := `{"firstName":"Ada","lastName":"Lovelace","address":"12 St James Square","city":"London",` +
		`"zip":"12345","email":"ada@example.com","password":"analytical"}`
	rec := serve(t, http.MethodPost, "/users/register", h.Register, "/users/register", body, 0)
	require.Equal(t, http.StatusCreated, rec.Code)

	// 無法解析的 zip 仍交給 service 收集違規訊息
	users.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in model.RegisterUserInput) (int, error) {
			require.Equal(t, dto.InvalidZip, in.Zip)
			return 0, er.Validation("Password is too short.\nInvalid zip code.")
		})
	body = `{"firstName":"Ada","lastName":"Lovelace","address":"12 St James Square","city":"London",` +
		`"zip":"abc","email":"ada@example.com","password":"short"}`
	rec = serve(t, http.MethodPost, "/users/register", h.Register, "/users/register", body, 0)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Password is too short.\nInvalid zip code.", decodeError(t, rec).Message)
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	for _, tc := range []struct {
		clearErr error
		msg      string
	}{
		{nil, MsgLoggedOut},
		{errors.New("cookie write failed"), MsgLoggedOutWithError},
	} {
		sessions := &fakeSessions{userID: 3, clearErr: tc.clearErr}
		h := NewUserHandler(mock_service.NewMockIUserService(ctrl), mock_service.NewMockIAuthService(ctrl), sessions)

		rec := serve(t, http.MethodGet, "/users/logout", h.Logout, "/users/logout", nil, 3)
		require.Equal(t, http.StatusOK, rec.Code)
		var res response.MessageBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Equal(t, tc.msg, res.Message)
		require.Zero(t, sessions.userID)
	}
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_service.NewMockIUserService(ctrl)
	h := NewUserHandler(users, mock_service.NewMockIAuthService(ctrl), &fakeSessions{})

	users.EXPECT().GetUserByID(gomock.Any(), 3, 3).Return(&model.Member{UserID: 3, FirstName: "Ada", Email: "ada@example.com"}, nil)
	users.EXPECT().GetUserByID(gomock.Any(), 4, 3).Return(nil, er.Unauthorized("User not authorized."))

	rec := serve(t, http.MethodGet, "/users/{id}", h.GetUser, "/users/3", nil, 3)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "password")

	rec = serve(t, http.MethodGet, "/users/{id}", h.GetUser, "/users/4", nil, 3)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
