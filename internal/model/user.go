package model

import (
	"time"
)

type UserRole string

const (
	Student    UserRole = "student"
	TeamLeader UserRole = "team_leader"
	Admin      UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name          string      `gorm:"size:150;not null" json:"name"`
	Email         string      `gorm:"size:100;unique;not null" json:"email"`
	Password      string      `gorm:"size:100;not null" json:"-"`
	Role          UserRole    `gorm:"type:enum('student','team_leader','admin');default:'student'" json:"role"`
	Avatar        string      `gorm:"size:255" json:"avatar"`
	Disabled      bool        `gorm:"default:false" json:"disabled"`
	JoinedGroupID *uint       `gorm:"index" json:"joinedGroupId"`
	JoinedGroup   *StudyGroup `gorm:"foreignKey:JoinedGroupID" json:"joinedGroup,omitempty"`

	// Student profile fields
	ClassName   string `gorm:"size:100" json:"className"`
	SchoolName  string `gorm:"size:255" json:"schoolName"`
	Address     string `gorm:"size:255" json:"address"`
	ParentPhone string `gorm:"size:20" json:"parentPhone"`

	// Team-leader profile fields
	Qualification  string `gorm:"size:255" json:"qualification"`
	SubjectsTaught string `gorm:"size:255" json:"subjectsTaught"`
	PhoneNumber    string `gorm:"size:20" json:"phoneNumber"`

	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
