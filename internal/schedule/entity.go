package schedule

import (
	"time"

	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

type Schedule struct {
	ScheduleID  int64      `gorm:"column:schedule_id;primaryKey;autoIncrement" json:"schedule_id"`
	UserID      int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	Activity    string     `gorm:"type:text;not null" json:"activity"`
	Date        util.Date  `gorm:"not null" json:"date"`
	TimeFrame   string     `gorm:"size:8;not null" json:"time_frame"`
	IsRecurring bool       `gorm:"not null;default:false" json:"is_recurring"`
	Importance  *int       `json:"importance,omitempty"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CustomField *string    `gorm:"type:text" json:"custom_field,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}

func ID(s Schedule) int64 {
	return s.ScheduleID
}
