package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id uint) (*model.Note, error) {
	var note model.Note
	err := r.DB.Preload("UploadedBy").First(&note, id).Error
	return &note, err
}

// FindAll returns notes newest first.
func (r *NoteRepository) FindAll() ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Preload("UploadedBy").Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Update(note *model.Note) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Note{}, id).Error
}

func (r *NoteRepository) IncrementDownloads(id uint) error {
	return r.DB.Model(&model.Note{}).
		Where("id = ?", id).
		Update("download_count", gorm.Expr("download_count + 1")).
		Error
}

func (r *NoteRepository) CreateReport(report *model.NoteReport) error {
	return r.DB.Create(report).Error
}

func (r *NoteRepository) FindReportByID(id uint) (*model.NoteReport, error) {
	var report model.NoteReport
	err := r.DB.Preload("Note").Preload("ReportedBy").First(&report, id).Error
	return &report, err
}

func (r *NoteRepository) FindReports(unresolvedOnly bool) ([]model.NoteReport, error) {
	var reports []model.NoteReport
	q := r.DB.Preload("Note").Preload("ReportedBy").Order("created_at DESC")
	if unresolvedOnly {
		q = q.Where("resolved = ?", false)
	}
	err := q.Find(&reports).Error
	return reports, err
}

func (r *NoteRepository) ResolveReport(id uint) error {
	return r.DB.Model(&model.NoteReport{}).
		Where("id = ?", id).
		Update("resolved", true).
		Error
}
