package notification

import "time"

// Setting is a reminder configuration attached to a task or a schedule.
type Setting struct {
	SettingID               int64      `gorm:"column:setting_id;primaryKey;autoIncrement" json:"setting_id"`
	UserID                  int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	ItemType                ItemType   `gorm:"size:20;not null" json:"item_type"`
	TaskID                  *int64     `gorm:"column:task_id" json:"task_id,omitempty"`
	ScheduleID              *int64     `gorm:"column:schedule_id" json:"schedule_id,omitempty"`
	ReminderType            string     `gorm:"size:50;not null" json:"reminder_type"`
	ReminderTimes           string     `gorm:"type:text;not null" json:"reminder_times"`
	SentTimes               *string    `gorm:"type:text" json:"sent_times,omitempty"`
	IsActive                bool       `gorm:"not null" json:"is_active"`
	IsPendingAcknowledgment bool       `gorm:"not null;default:false" json:"is_pending_acknowledgment"`
	LastMessageID           *int64     `json:"last_message_id,omitempty"`
	CreatedAt               *time.Time `json:"created_at,omitempty"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty"`
}

func (Setting) TableName() string {
	return "notification_settings"
}

func ID(s Setting) int64 {
	return s.SettingID
}
