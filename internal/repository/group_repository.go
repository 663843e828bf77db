package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) Create(group *model.StudyGroup) error {
	return r.DB.Create(group).Error
}

func (r *GroupRepository) FindByID(id uint) (*model.StudyGroup, error) {
	var group model.StudyGroup
	err := r.DB.Preload("Instructor").Preload("Members").First(&group, id).Error
	return &group, err
}

func (r *GroupRepository) FindAll() ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	err := r.DB.Preload("Instructor").Order("title").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) Update(group *model.StudyGroup) error {
	return r.DB.Save(group).Error
}

func (r *GroupRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StudyGroup{}, id).Error
}

func (r *GroupRepository) FindInstructor(id uint) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.DB.First(&instructor, id).Error
	return &instructor, err
}

func (r *GroupRepository) CreateInstructor(instructor *model.Instructor) error {
	return r.DB.Create(instructor).Error
}
