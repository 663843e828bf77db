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
	timetableCacheKey = "routine:timetable"
	timetableCacheTTL = 30 * time.Minute
)

// TimetableCell is one class slot in the weekly grid; nil cells are free.
type TimetableCell struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Timetable maps day -> slot -> cell for Monday through Friday.
type Timetable struct {
	Days  []string                             `json:"days"`
	Slots []string                             `json:"slots"`
	Grid  map[string]map[string]*TimetableCell `json:"grid"`
}

type RoutineService struct {
	RoutineRepo *repository.RoutineRepository
	Redis       *redis.Client
}

func NewRoutineService(routineRepo *repository.RoutineRepository, rdb *redis.Client) *RoutineService {
	return &RoutineService{
		RoutineRepo: routineRepo,
		Redis:       rdb,
	}
}

// BuildTimetable arranges routine entries into the 5x5 weekly grid.
func BuildTimetable(routines []model.Routine) *Timetable {
	grid := make(map[string]map[string]*TimetableCell, len(model.Weekdays))
	for _, day := range model.Weekdays {
		grid[day] = make(map[string]*TimetableCell, len(model.TimeSlots))
		for _, slot := range model.TimeSlots {
			grid[day][slot] = nil
		}
	}

	for _, r := range routines {
		if row, ok := grid[r.Day]; ok {
			if _, ok := row[r.TimeSlot]; ok {
				row[r.TimeSlot] = &TimetableCell{Code: r.GroupCode, Name: r.GroupName}
			}
		}
	}

	return &Timetable{
		Days:  model.Weekdays,
		Slots: model.TimeSlots,
		Grid:  grid,
	}
}

func (s *RoutineService) GetTimetable(ctx context.Context) (*Timetable, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, timetableCacheKey).Result(); err == nil {
			var cached Timetable
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	routines, err := s.RoutineRepo.FindAll()
	if err != nil {
		return nil, err
	}

	timetable := BuildTimetable(routines)

	if s.Redis != nil {
		if data, err := json.Marshal(timetable); err == nil {
			if err := s.Redis.Set(ctx, timetableCacheKey, data, timetableCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache timetable", zap.Error(err))
			}
		}
	}

	return timetable, nil
}

type RoutineInput struct {
	Day       string
	TimeSlot  string
	GroupCode string
	GroupName string
}

func (s *RoutineService) UpsertEntry(ctx context.Context, input RoutineInput) (*model.Routine, error) {
	if !model.ValidWeekday(input.Day) {
		return nil, fmt.Errorf("%w: unknown day %q", util.ErrInvalidRequest, input.Day)
	}
	if !model.ValidTimeSlot(input.TimeSlot) {
		return nil, fmt.Errorf("%w: unknown time slot %q", util.ErrInvalidRequest, input.TimeSlot)
	}
	if input.GroupCode == "" {
		return nil, fmt.Errorf("%w: group code is required", util.ErrInvalidRequest)
	}

	routine := &model.Routine{
		Day:       input.Day,
		TimeSlot:  input.TimeSlot,
		GroupCode: input.GroupCode,
		GroupName: input.GroupName,
	}
	if err := s.RoutineRepo.Upsert(routine); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return routine, nil
}

func (s *RoutineService) DeleteEntry(ctx context.Context, day, slot string) error {
	if !model.ValidWeekday(day) || !model.ValidTimeSlot(slot) {
		return fmt.Errorf("%w: unknown day or slot", util.ErrInvalidRequest)
	}

	if _, err := s.RoutineRepo.FindBySlot(day, slot); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrRoutineNotFound
		}
		return err
	}

	if err := s.RoutineRepo.DeleteBySlot(day, slot); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *RoutineService) invalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, timetableCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate timetable cache", zap.Error(err))
	}
}
