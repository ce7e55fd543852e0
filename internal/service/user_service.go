package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db"
	repoModel "github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/pkg/crypt"
	"github.com/RoyceAzure/lab/bookshop/internal/validator"
	"github.com/rs/zerolog/log"
)

type IUserService interface {
	RegisterUser(ctx context.Context, in model.RegisterUserInput) (int, error)
	GetUserByID(ctx context.Context, userID, callerID int) (*model.Member, error)
}

type UserService struct {
	dbDao  db.IStore
	hasher crypt.IPasswordHasher
}

func NewUserService(dbDao db.IStore, hasher crypt.IPasswordHasher) IUserService {
	return &UserService{
		dbDao:  dbDao,
		hasher: hasher,
	}
}

/*
RegisterUser 所有欄位錯誤一次回傳, 訊息以換行串接
email 先查一次給友善訊息, 併發註冊時由 unique index 擋下並回 Conflict
*/
func (u *UserService) RegisterUser(ctx context.Context, in model.RegisterUserInput) (int, error) {
	in.Email = validator.NormalizeEmail(in.Email)
	messages := validator.ValidateRegistration(in)

	if in.Email != "" {
		count, err := u.dbDao.CountMembersByEmail(ctx, in.Email)
		if err != nil {
			return 0, er.Classify(err)
		}
		if count > 0 {
			messages = append(messages, validator.MsgEmailNotUnique)
		}
	}

	if len(messages) > 0 {
		return 0, er.Validation(validator.JoinViolations(messages))
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return 0, er.Wrap(er.StorageCode, "hash password failed", err)
	}

	var phone *string
	if p := strings.TrimSpace(in.Phone); p != "" {
		phone = &p
	}

	member, err := u.dbDao.CreateMember(ctx, &repoModel.Member{
		FName:    strings.TrimSpace(in.FirstName),
		LName:    strings.TrimSpace(in.LastName),
		Address:  strings.TrimSpace(in.Address),
		City:     strings.TrimSpace(in.City),
		Zip:      in.Zip,
		Phone:    phone,
		Email:    in.Email,
		Password: hashed,
	})
	if err != nil {
		classified := er.Classify(err)
		if er.Is(classified, er.ConflictCode) {
			return 0, er.Wrap(er.ConflictCode, validator.MsgEmailNotUnique, err)
		}
		return 0, classified
	}

	log.Info().Int("user_id", member.UserID).Msg("user registered")
	return member.UserID, nil
}

// GetUserByID 只能讀自己的資料
func (u *UserService) GetUserByID(ctx context.Context, userID, callerID int) (*model.Member, error) {
	if err := validator.RequireUser(callerID); err != nil {
		return nil, err
	}
	if userID != callerID {
		return nil, er.Unauthorized(validator.MsgUserNotAuthorized)
	}

	member, err := u.dbDao.GetMemberByID(ctx, userID)
	if err != nil {
		if er.Is(er.Classify(err), er.NotFoundCode) {
			return nil, er.NotFound(MsgItemNotFound)
		}
		return nil, er.Classify(err)
	}
	return convertRepoMemberToModel(member), nil
}
