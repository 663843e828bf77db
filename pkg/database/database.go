package database

import (
	"fmt"
	"log"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Instructor{},
		&model.StudyGroup{},
		&model.Note{},
		&model.NoteReport{},
		&model.Routine{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed a default instructor so group creation works on a fresh install.
	var count int64
	db.Model(&model.Instructor{}).Count(&count)
	if count == 0 {
		db.Create(&model.Instructor{
			Name:        "Staff Instructor",
			Credentials: "Platform default",
		})
	}

	return db, nil
}
