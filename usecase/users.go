package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

type UserService struct {
	UsersRepo *repository.UserRepo
}

func (svc *UserService) CreateUser(ctx context.Context, user *model.User) error {
	existing, err := svc.UsersRepo.FindUserByUsername(user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("username already exists")
	}

	existing, err = svc.UsersRepo.FindUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("email already exists")
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.UserID = utils.GenerateUserID()
	user.CreatedAt = time.Now()

	return svc.UsersRepo.AddUser(ctx, user)
}

func (svc *UserService) FindUserByUsername(username string) (*model.User, error) {
	return svc.UsersRepo.FindUserByUsername(username)
}

func (svc *UserService) FindUser(userID string) (*model.User, error) {
	return svc.UsersRepo.FindUser(userID)
}
