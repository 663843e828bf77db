package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

// StudentProfileUpdate carries the fields a student may change. Empty strings
// leave the stored value untouched, mirroring partial form submissions.
type StudentProfileUpdate struct {
	ClassName   string
	SchoolName  string
	Address     string
	ParentPhone string
	Email       string
}

type LeaderProfileUpdate struct {
	Qualification  string
	SubjectsTaught string
	Address        string
	PhoneNumber    string
	Email          string
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *UserService) UpdateStudentProfile(userID uint, update StudentProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if update.ClassName != "" {
		user.ClassName = update.ClassName
	}
	if update.SchoolName != "" {
		user.SchoolName = update.SchoolName
	}
	if update.Address != "" {
		user.Address = update.Address
	}
	if update.ParentPhone != "" {
		user.ParentPhone = update.ParentPhone
	}
	if update.Email != "" {
		user.Email = update.Email
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateLeaderProfile(userID uint, update LeaderProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Qualification != "" {
		user.Qualification = update.Qualification
	}
	if update.SubjectsTaught != "" {
		user.SubjectsTaught = update.SubjectsTaught
	}
	if update.Address != "" {
		user.Address = update.Address
	}
	if update.PhoneNumber != "" {
		user.PhoneNumber = update.PhoneNumber
	}
	if update.Email != "" {
		user.Email = update.Email
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar stores the picture under profile_pics/ and records its URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", err
	}

	stored := fmt.Sprintf("profile_pics/%d_%s%s", userID, model.GenerateUUID(), filepath.Ext(filename))
	url, err := s.Storage.Upload(ctx, stored, reader, size, contentType)
	if err != nil {
		return "", err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) ListUsers(page, limit int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.UserRepo.List(page, limit)
}

func (s *UserService) SetDisabled(userID uint, disabled bool) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return err
	}
	return s.UserRepo.SetDisabled(userID, disabled)
}
