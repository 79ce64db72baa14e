package goal

import (
	"time"

	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

type Goal struct {
	GoalID          int64      `gorm:"column:goal_id;primaryKey;autoIncrement" json:"goal_id"`
	UserID          int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	GoalNumber      int        `gorm:"not null" json:"goal_number"`
	GoalType        *string    `gorm:"size:50" json:"goal_type,omitempty"`
	GoalDescription string     `gorm:"type:text;not null" json:"goal_description"`
	StartDate       *util.Date `json:"start_date,omitempty"`
	EndDate         *util.Date `json:"end_date,omitempty"`
	Importance      *int       `json:"importance,omitempty"`
	IsCompleted     bool       `gorm:"not null;default:false" json:"is_completed"`
	IsActive        bool       `gorm:"not null" json:"is_active"`
	CustomField     *string    `gorm:"type:text" json:"custom_field,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}

func ID(g Goal) int64 {
	return g.GoalID
}
