package util

import "errors"

var (
	// ErrInvalidRequest marks caller errors: out-of-range counts, unknown
	// enum values, empty required fields. Wrapped with context via fmt.Errorf
	// and matched with errors.Is.
	ErrInvalidRequest = errors.New("invalid request")

	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrPermissionDenied = errors.New("permission denied")
	ErrGroupNotFound    = errors.New("group not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrReportNotFound   = errors.New("report not found")
	ErrRoutineNotFound  = errors.New("routine entry not found")
	ErrSlotTaken        = errors.New("time slot already assigned")
)
