package model

// swagger:model Note
type Note struct {
	BaseModel
	Title         string  `gorm:"size:200;not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	ModuleCode    string  `gorm:"size:20" json:"moduleCode"`
	Pages         int     `json:"pages"`
	FileURL       string  `gorm:"size:255;not null" json:"fileUrl"`
	FileName      string  `gorm:"size:255" json:"fileName"`
	UploadedByID  uint    `gorm:"not null;index" json:"uploadedById"`
	UploadedBy    User    `gorm:"foreignKey:UploadedByID" json:"uploadedBy"`
	Rating        float64 `gorm:"default:0" json:"rating"`
	DownloadCount int     `gorm:"default:0" json:"downloadCount"`
}

func (Note) TableName() string {
	return "notes"
}

// swagger:model NoteReport
type NoteReport struct {
	BaseModel
	NoteID       uint   `gorm:"not null;index" json:"noteId"`
	Note         Note   `gorm:"foreignKey:NoteID" json:"note"`
	ReportedByID uint   `gorm:"not null;index" json:"reportedById"`
	ReportedBy   User   `gorm:"foreignKey:ReportedByID" json:"reportedBy"`
	Reason       string `gorm:"type:text" json:"reason"`
	Resolved     bool   `gorm:"default:false" json:"resolved"`
}

func (NoteReport) TableName() string {
	return "note_reports"
}
