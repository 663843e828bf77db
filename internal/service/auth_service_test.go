package service

import (
	"errors"
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockUserRepo(t *testing.T) (*repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return repository.NewUserRepository(gdb), mock
}

func newAuthService(repo *repository.UserRepository) *AuthService {
	return NewAuthService(repo, config.NewStore(&config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}))
}

func userRow(t *testing.T, password string, disabled bool) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "disabled"}).
		AddRow(1, "Alice", "alice@example.com", string(hash), "student", disabled)
}

func TestLoginRecordsLastLogin(t *testing.T) {
	repo, mock := newMockUserRepo(t)
	svc := newAuthService(repo)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRow(t, "pass123", false))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	token, err := svc.Login("alice@example.com", "pass123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginSucceedsWhenLastLoginUpdateFails(t *testing.T) {
	repo, mock := newMockUserRepo(t)
	svc := newAuthService(repo)

	core, logs := observer.New(zap.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRow(t, "pass123", false))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	token, err := svc.Login("alice@example.com", "pass123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	entries := logs.FilterMessage("failed to record last login").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		repo, mock := newMockUserRepo(t)
		svc := newAuthService(repo)

		mock.ExpectQuery("SELECT (.+) FROM `users`").
			WillReturnRows(userRow(t, "pass123", false))

		_, err := svc.Login("alice@example.com", "wrong")
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})

	t.Run("disabled account", func(t *testing.T) {
		repo, mock := newMockUserRepo(t)
		svc := newAuthService(repo)

		mock.ExpectQuery("SELECT (.+) FROM `users`").
			WillReturnRows(userRow(t, "pass123", true))

		_, err := svc.Login("alice@example.com", "pass123")
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo, mock := newMockUserRepo(t)
		svc := newAuthService(repo)

		mock.ExpectQuery("SELECT (.+) FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := svc.Login("nobody@example.com", "pass123")
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo, mock := newMockUserRepo(t)
	svc := newAuthService(repo)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRow(t, "pass123", false))

	err := svc.Register(&model.User{Email: "alice@example.com", Password: "pass123"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}
