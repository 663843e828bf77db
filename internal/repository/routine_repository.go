package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type RoutineRepository struct {
	DB *gorm.DB
}

func NewRoutineRepository(db *gorm.DB) *RoutineRepository {
	return &RoutineRepository{DB: db}
}

func (r *RoutineRepository) FindAll() ([]model.Routine, error) {
	var routines []model.Routine
	err := r.DB.Order("day, time_slot").Find(&routines).Error
	return routines, err
}

func (r *RoutineRepository) FindBySlot(day, slot string) (*model.Routine, error) {
	var routine model.Routine
	err := r.DB.Where("day = ? AND time_slot = ?", day, slot).First(&routine).Error
	return &routine, err
}

// Upsert creates or replaces the entry for a (day, slot) cell.
func (r *RoutineRepository) Upsert(routine *model.Routine) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Routine
		err := tx.Where("day = ? AND time_slot = ?", routine.Day, routine.TimeSlot).
			First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return tx.Create(routine).Error
		}
		if err != nil {
			return err
		}
		existing.GroupCode = routine.GroupCode
		existing.GroupName = routine.GroupName
		routine.ID = existing.ID
		return tx.Save(&existing).Error
	})
}

func (r *RoutineRepository) DeleteBySlot(day, slot string) error {
	return r.DB.Where("day = ? AND time_slot = ?", day, slot).
		Delete(&model.Routine{}).Error
}
