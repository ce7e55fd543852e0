package service

import (
	"context"

	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/pkg/crypt"
	"github.com/RoyceAzure/lab/bookshop/internal/validator"
	"github.com/rs/zerolog/log"
)

const MsgInvalidCredentials = "Email or password incorrect."

type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*model.AuthResult, error)
}

type AuthService struct {
	dbDao  db.IStore
	hasher crypt.IPasswordHasher
}

func NewAuthService(dbDao db.IStore, hasher crypt.IPasswordHasher) IAuthService {
	return &AuthService{
		dbDao:  dbDao,
		hasher: hasher,
	}
}

/*
Authenticate email 不存在時仍然做一次 hash + compare,
讓「查無帳號」與「密碼錯誤」回應時間一致, 兩者回同一個錯誤
*/
func (a *AuthService) Authenticate(ctx context.Context, email, password string) (*model.AuthResult, error) {
	email = validator.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, er.Unauthorized(MsgInvalidCredentials)
	}

	member, err := a.dbDao.GetMemberByEmail(ctx, email)
	if err != nil {
		classified := er.Classify(err)
		if !er.Is(classified, er.NotFoundCode) {
			return nil, classified
		}

		dummy, hashErr := a.hasher.Hash(password)
		if hashErr != nil {
			log.Warn().Err(hashErr).Msg("dummy hash failed")
		} else {
			a.hasher.Compare(password, dummy)
		}
		return nil, er.Unauthorized(MsgInvalidCredentials)
	}

	if !a.hasher.Compare(password, member.Password) {
		return nil, er.Unauthorized(MsgInvalidCredentials)
	}

	return &model.AuthResult{
		UserID:    member.UserID,
		FirstName: member.FName,
	}, nil
}
