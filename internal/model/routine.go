package model

// Weekday and TimeSlot enumerate the rows and columns of the weekly class
// timetable. A (day, slot) pair is unique: one class per cell.

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var TimeSlots = []string{"8-10", "10-12", "12-2", "2-4", "4-6"}

func ValidWeekday(d string) bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

func ValidTimeSlot(s string) bool {
	for _, t := range TimeSlots {
		if t == s {
			return true
		}
	}
	return false
}

// swagger:model Routine
type Routine struct {
	BaseModel
	Day       string `gorm:"size:10;not null;uniqueIndex:idx_day_slot" json:"day"`
	TimeSlot  string `gorm:"size:5;not null;uniqueIndex:idx_day_slot" json:"timeSlot"`
	GroupCode string `gorm:"size:20;not null" json:"groupCode"`
	GroupName string `gorm:"size:100" json:"groupName"`
}

func (Routine) TableName() string {
	return "routines"
}
