package db

import (
	"context"

	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
)

type UserRepo struct {
	db *DbDao
}

func NewUserRepo(db *DbDao) *UserRepo {
	return &UserRepo{db: db}
}

func (s *UserRepo) CreateMember(ctx context.Context, member *model.Member) (*model.Member, error) {
	if err := s.db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (s *UserRepo) GetMemberByID(ctx context.Context, userID int) (*model.Member, error) {
	var member model.Member
	err := s.db.WithContext(ctx).Where("userid = ?", userID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *UserRepo) GetMemberByEmail(ctx context.Context, email string) (*model.Member, error) {
	var member model.Member
	err := s.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *UserRepo) CountMembersByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Member{}).Where("lower(email) = lower(?)", email).Count(&count).Error
	return count, err
}
