package model

// GroupCategory doubles as the quiz category enum: every group belongs to one
// of the four subjects the quiz generator knows how to ask about.
type GroupCategory string

const (
	CategoryPython         GroupCategory = "python"
	CategoryWebDevelopment GroupCategory = "web-development"
	CategorySQL            GroupCategory = "sql"
	CategoryPHP            GroupCategory = "php"
)

func ValidCategory(c string) bool {
	switch GroupCategory(c) {
	case CategoryPython, CategoryWebDevelopment, CategorySQL, CategoryPHP:
		return true
	}
	return false
}

// swagger:model Instructor
type Instructor struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Credentials string `gorm:"size:200" json:"credentials"`
}

func (Instructor) TableName() string {
	return "instructors"
}

// swagger:model StudyGroup
type StudyGroup struct {
	BaseModel
	Title        string        `gorm:"size:200;not null" json:"title"`
	InstructorID uint          `gorm:"not null;index" json:"instructorId"`
	Instructor   Instructor    `gorm:"foreignKey:InstructorID" json:"instructor"`
	Image        string        `gorm:"size:255" json:"image"`
	Category     GroupCategory `gorm:"type:enum('python','web-development','sql','php');default:'python'" json:"category"`
	Members      []User        `gorm:"foreignKey:JoinedGroupID" json:"members,omitempty"`
}

func (StudyGroup) TableName() string {
	return "study_groups"
}
