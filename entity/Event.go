package entity

import (
	"gorm.io/gorm"
)

// Event dates are calendar dates in "2006-01-02" form, so range checks are
// plain string comparisons.
type Event struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	ImageURL     string `json:"imageUrl"`
	Views        int64  `json:"views"`
	Participants int64  `json:"participants"`
}

func (Event) TableName() string { return "events" }

// ActiveOn reports whether date (same calendar form) falls inside the event
// window, bounds inclusive.
func (e *Event) ActiveOn(date string) bool {
	return e.StartDate <= date && date <= e.EndDate
}
