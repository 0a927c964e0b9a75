package models

import "time"

// Feedback is a message left by a visitor through the feedback form.
type Feedback struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:128;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName keeps the singular table name used by existing deployments.
func (Feedback) TableName() string {
	return "feedback"
}
