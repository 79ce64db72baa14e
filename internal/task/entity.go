package task

import "time"

type Task struct {
	TaskID          int64      `gorm:"column:task_id;primaryKey;autoIncrement" json:"task_id"`
	UserID          int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	TaskNumber      int        `gorm:"not null" json:"task_number"`
	TaskDescription string     `gorm:"type:text;not null" json:"task_description"`
	Priority        *string    `gorm:"size:50" json:"priority,omitempty"`
	Status          *string    `gorm:"size:50" json:"status,omitempty"`
	Importance      *int       `json:"importance,omitempty"`
	IsCompleted     bool       `gorm:"not null;default:false" json:"is_completed"`
	CustomField     *string    `gorm:"type:text" json:"custom_field,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

func ID(t Task) int64 {
	return t.TaskID
}
