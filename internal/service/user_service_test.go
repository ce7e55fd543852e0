package service

import (
	"context"
	"strings"
	"testing"

	mock_db "github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/mock"
	repoModel "github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/pkg/crypt"
	mock_crypt "github.com/RoyceAzure/lab/bookshop/internal/pkg/crypt/mock"
	"github.com/RoyceAzure/lab/bookshop/internal/validator"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validRegistration() model.RegisterUserInput {
	return model.RegisterUserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "12 St James Square",
		City:      "London",
		Zip:       12345,
		Email:     "ada@example.com",
		Password:  "analytical",
	}
}

func TestRegisterUser(t *testing.T) {
	testCases := []struct {
		name         string
		input        func() model.RegisterUserInput
		setUpMock    func(store *mock_db.MockIStore, hasher *mock_crypt.MockIPasswordHasher)
		expectedCode er.ErrorCode
		expectedMsgs []string
	}{
		{
			name:  "stores hashed password",
			input: validRegistration,
			setUpMock: func(store *mock_db.MockIStore, hasher *mock_crypt.MockIPasswordHasher) {
				store.EXPECT().CountMembersByEmail(gomock.Any(), "ada@example.com").Return(int64(0), nil)
				hasher.EXPECT().Hash("analytical").Return("$2a$10$digest", nil)
				store.EXPECT().CreateMember(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, m *repoModel.Member) (*repoModel.Member, error) {
						require.Equal(t, "$2a$10$digest", m.Password)
						require.Nil(t, m.Phone)
						m.UserID = 42
						return m, nil
					})
			},
		},
		{
			name: "email stored lower case",
			input: func() model.RegisterUserInput {
				in := validRegistration()
				in.Email = "Ada@Example.com"
				return in
			},
			setUpMock: func(store *mock_db.MockIStore, hasher *mock_crypt.MockIPasswordHasher) {
				store.EXPECT().CountMembersByEmail(gomock.Any(), "ada@example.com").Return(int64(0), nil)
				hasher.EXPECT().Hash("analytical").Return("digest", nil)
				store.EXPECT().CreateMember(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, m *repoModel.Member) (*repoModel.Member, error) {
						require.Equal(t, "ada@example.com", m.Email)
						m.UserID = 42
						return m, nil
					})
			},
		},
		{
			name: "zip out of range",
			input: func() model.RegisterUserInput {
				in := validRegistration()
				in.Zip = 100000
				return in
			},
			setUpMock: func(store *mock_db.MockIStore, hasher *mock_crypt.MockIPasswordHasher) {
				store.EXPECT().CountMembersByEmail(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			expectedCode: er.ValidationCode,
			expectedMsgs: []string{validator.MsgInvalidZip},
		},
		{
			name: "short password",
			input: func() model.RegisterUserInput {
				in := validRegistration()
				in.Password = "12345"
				return in
			},
			setUpMock: func(store *mock_db.MockIStore, hasher *mock_crypt.MockIPasswordHasher) {
				store.EXPECT().CountMembersByEmail(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			expectedCode: er.ValidationCode,
			expectedMsgs: []string{validator.MsgPasswordTooShort},
		},
		{
			name:  "duplicate email",
			input: validRegistration,
			setUpMock: func(store *mock_db.MockIStore, hasher *mock_crypt.MockIPasswordHasher) {
				store.EXPECT().CountMembersByEmail(gomock.Any(), "ada@example.com").Return(int64(1), nil)
			},
			expectedCode: er.ValidationCode,
			expectedMsgs: []string{validator.MsgEmailNotUnique},
		},
		{
			name: "every violation reported",
			input: func() model.RegisterUserInput {
				in := validRegistration()
				in.FirstName = strings.Repeat("a", 51)
				in.Zip = 100000
				in.Password = "12345"
				in.Email = "not-an-email"
				return in
			},
			setUpMock: func(store *mock_db.MockIStore, hasher *mock_crypt.MockIPasswordHasher) {
				store.EXPECT().CountMembersByEmail(gomock.Any(), "not-an-email").Return(int64(0), nil)
			},
			expectedCode: er.ValidationCode,
			expectedMsgs: []string{
				validator.MsgFirstNameTooLong,
				validator.MsgPasswordTooShort,
				validator.MsgInvalidZip,
				validator.MsgInvalidEmail,
			},
		},
		{
			name:  "concurrent registration hits unique index",
			input: validRegistration,
			setUpMock: func(store *mock_db.MockIStore, hasher *mock_crypt.MockIPasswordHasher) {
				store.EXPECT().CountMembersByEmail(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
				store.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: "23505"})
			},
			expectedCode: er.ConflictCode,
			expectedMsgs: []string{validator.MsgEmailNotUnique},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mock_db.NewMockIStore(ctrl)
			hasher := mock_crypt.NewMockIPasswordHasher(ctrl)
			tc.setUpMock(store, hasher)

			userID, err := NewUserService(store, hasher).RegisterUser(context.Background(), tc.input())
			if tc.expectedCode != 0 {
				require.Error(t, err)
				require.Equal(t, tc.expectedCode, er.CodeOf(err))
				require.Zero(t, userID)
				var appErr *er.AppError
				require.ErrorAs(t, err, &appErr)
				require.Equal(t, strings.Join(tc.expectedMsgs, "\n"), appErr.Message)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 42, userID)
		})
	}
}

func TestRegisterUserLongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_db.NewMockIStore(ctrl)
	hasher := crypt.NewBcryptHasher(bcrypt.MinCost)

	in := validRegistration()
	in.Password = strings.Repeat("p", 200)

	store.EXPECT().CountMembersByEmail(gomock.Any(), "ada@example.com").Return(int64(0), nil)
	store.EXPECT().CreateMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, m *repoModel.Member) (*repoModel.Member, error) {
			require.True(t, hasher.Compare(in.Password, m.Password))
			m.UserID = 42
			return m, nil
		})

	userID, err := NewUserService(store, hasher).RegisterUser(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, 42, userID)
}

func TestGetUserByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_db.NewMockIStore(ctrl)
	svc := NewUserService(store, mock_crypt.NewMockIPasswordHasher(ctrl))

	store.EXPECT().GetMemberByID(gomock.Any(), 7).
		Return(&repoModel.Member{UserID: 7, FName: "Ada", Email: "ada@example.com", Password: "digest"}, nil)

	member, err := svc.GetUserByID(context.Background(), 7, 7)
	require.NoError(t, err)
	require.Equal(t, 7, member.UserID)
	require.Equal(t, "Ada", member.FirstName)

	_, err = svc.GetUserByID(context.Background(), 8, 7)
	require.True(t, er.Is(err, er.UnauthorizedCode))

	_, err = svc.GetUserByID(context.Background(), 7, 0)
	require.True(t, er.Is(err, er.UnauthorizedCode))
}
