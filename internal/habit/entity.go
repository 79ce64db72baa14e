package habit

import (
	"time"

	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

type Habit struct {
	HabitID          int64      `gorm:"column:habit_id;primaryKey;autoIncrement" json:"habit_id"`
	UserID           int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	HabitNumber      int        `gorm:"not null" json:"habit_number"`
	HabitDescription string     `gorm:"type:text;not null" json:"habit_description"`
	HabitType        *string    `gorm:"size:50" json:"habit_type,omitempty"`
	StartDate        *util.Date `json:"start_date,omitempty"`
	Importance       *int       `json:"importance,omitempty"`
	IsActive         bool       `gorm:"not null" json:"is_active"`
	CustomField      *string    `gorm:"type:text" json:"custom_field,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func (Habit) TableName() string {
	return "habits"
}

func ID(h Habit) int64 {
	return h.HabitID
}
