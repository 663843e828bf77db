package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	groupListCacheKey = "groups:catalogue"
	groupListCacheTTL = 10 * time.Minute
)

type GroupService struct {
	GroupRepo *repository.GroupRepository
	UserRepo  *repository.UserRepository
	Redis     *redis.Client
}

func NewGroupService(groupRepo *repository.GroupRepository, userRepo *repository.UserRepository, rdb *redis.Client) *GroupService {
	return &GroupService{
		GroupRepo: groupRepo,
		UserRepo:  userRepo,
		Redis:     rdb,
	}
}

// ListGroups serves the catalogue from redis when possible; the cache is
// dropped on any group write.
func (s *GroupService) ListGroups(ctx context.Context) ([]model.StudyGroup, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, groupListCacheKey).Result(); err == nil {
			var cached []model.StudyGroup
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	groups, err := s.GroupRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(groups); err == nil {
			if err := s.Redis.Set(ctx, groupListCacheKey, data, groupListCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache group catalogue", zap.Error(err))
			}
		}
	}

	return groups, nil
}

func (s *GroupService) GetGroup(id uint) (*model.StudyGroup, error) {
	group, err := s.GroupRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrGroupNotFound
	}
	return group, err
}

type GroupInput struct {
	Title        string
	InstructorID uint
	Image        string
	Category     string
}

func (s *GroupService) CreateGroup(ctx context.Context, input GroupInput) (*model.StudyGroup, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrInvalidRequest)
	}
	if !model.ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", util.ErrInvalidRequest, input.Category)
	}
	if _, err := s.GroupRepo.FindInstructor(input.InstructorID); err != nil {
		return nil, fmt.Errorf("%w: instructor %d", util.ErrInvalidRequest, input.InstructorID)
	}

	group := &model.StudyGroup{
		Title:        input.Title,
		InstructorID: input.InstructorID,
		Image:        input.Image,
		Category:     model.GroupCategory(input.Category),
	}
	if err := s.GroupRepo.Create(group); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return s.GroupRepo.FindByID(group.ID)
}

func (s *GroupService) UpdateGroup(ctx context.Context, id uint, input GroupInput) (*model.StudyGroup, error) {
	group, err := s.GroupRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		group.Title = input.Title
	}
	if input.Category != "" {
		if !model.ValidCategory(input.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", util.ErrInvalidRequest, input.Category)
		}
		group.Category = model.GroupCategory(input.Category)
	}
	if input.Image != "" {
		group.Image = input.Image
	}
	if input.InstructorID != 0 {
		if _, err := s.GroupRepo.FindInstructor(input.InstructorID); err != nil {
			return nil, fmt.Errorf("%w: instructor %d", util.ErrInvalidRequest, input.InstructorID)
		}
		group.InstructorID = input.InstructorID
	}

	if err := s.GroupRepo.Update(group); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return group, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, id uint) error {
	if _, err := s.GroupRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrGroupNotFound
		}
		return err
	}

	if err := s.GroupRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// JoinGroup enrolls a student in a group; team leaders and admins do not join.
func (s *GroupService) JoinGroup(userID, groupID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}
	if user.Role != model.Student {
		return util.ErrPermissionDenied
	}

	if _, err := s.GroupRepo.FindByID(groupID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrGroupNotFound
		}
		return err
	}

	return s.UserRepo.JoinGroup(userID, groupID)
}

func (s *GroupService) invalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, groupListCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate group catalogue cache", zap.Error(err))
	}
}
