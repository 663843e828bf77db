package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type NoteService struct {
	NoteRepo *repository.NoteRepository
	Storage  *StorageService
}

func NewNoteService(noteRepo *repository.NoteRepository, storage *StorageService) *NoteService {
	return &NoteService{
		NoteRepo: noteRepo,
		Storage:  storage,
	}
}

type NoteInput struct {
	Title       string
	Description string
	ModuleCode  string
	Pages       int
}

func (s *NoteService) ListNotes() ([]model.Note, error) {
	return s.NoteRepo.FindAll()
}

func (s *NoteService) GetNote(id uint) (*model.Note, error) {
	note, err := s.NoteRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrNoteNotFound
	}
	return note, err
}

// CreateNote stores the uploaded document and records its metadata.
func (s *NoteService) CreateNote(ctx context.Context, uploaderID uint, input NoteInput, filename string, reader io.Reader, size int64, contentType string) (*model.Note, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrInvalidRequest)
	}
	if filename == "" {
		return nil, fmt.Errorf("%w: file is required", util.ErrInvalidRequest)
	}

	stored := fmt.Sprintf("notes/%s%s", model.GenerateUUID(), filepath.Ext(filename))
	url, err := s.Storage.Upload(ctx, stored, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	note := &model.Note{
		Title:        input.Title,
		Description:  input.Description,
		ModuleCode:   input.ModuleCode,
		Pages:        input.Pages,
		FileURL:      url,
		FileName:     stored,
		UploadedByID: uploaderID,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}

	return s.NoteRepo.FindByID(note.ID)
}

func (s *NoteService) UpdateNote(id uint, input NoteInput) (*model.Note, error) {
	note, err := s.NoteRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		note.Title = input.Title
	}
	if input.Description != "" {
		note.Description = input.Description
	}
	if input.ModuleCode != "" {
		note.ModuleCode = input.ModuleCode
	}
	if input.Pages > 0 {
		note.Pages = input.Pages
	}

	if err := s.NoteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes the record and best-effort removes the stored file.
func (s *NoteService) DeleteNote(ctx context.Context, id uint) error {
	note, err := s.NoteRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return util.ErrNoteNotFound
	}
	if err != nil {
		return err
	}

	if err := s.NoteRepo.Delete(id); err != nil {
		return err
	}

	if note.FileName != "" {
		if err := s.Storage.Delete(ctx, note.FileName); err != nil {
			logger.Log.Warn("failed to delete note file from storage",
				zap.String("file", note.FileName),
				zap.Error(err))
		}
	}
	return nil
}

// Download bumps the download counter and hands back the file URL.
func (s *NoteService) Download(id uint) (string, error) {
	note, err := s.NoteRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return "", util.ErrNoteNotFound
	}
	if err != nil {
		return "", err
	}

	if err := s.NoteRepo.IncrementDownloads(id); err != nil {
		return "", err
	}
	return note.FileURL, nil
}

func (s *NoteService) ReportNote(noteID, reporterID uint, reason string) (*model.NoteReport, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", util.ErrInvalidRequest)
	}

	if _, err := s.NoteRepo.FindByID(noteID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrNoteNotFound
		}
		return nil, err
	}

	report := &model.NoteReport{
		NoteID:       noteID,
		ReportedByID: reporterID,
		Reason:       reason,
	}
	if err := s.NoteRepo.CreateReport(report); err != nil {
		return nil, err
	}
	return s.NoteRepo.FindReportByID(report.ID)
}

func (s *NoteService) ListReports(unresolvedOnly bool) ([]model.NoteReport, error) {
	return s.NoteRepo.FindReports(unresolvedOnly)
}

func (s *NoteService) ResolveReport(id uint) error {
	if _, err := s.NoteRepo.FindReportByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrReportNotFound
		}
		return err
	}
	return s.NoteRepo.ResolveReport(id)
}
