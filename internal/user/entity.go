package user

import (
	"time"

	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

type User struct {
	UserID                  int64      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	TelegramID              int64      `gorm:"column:telegram_id;uniqueIndex;not null" json:"telegram_id"`
	FirstName               *string    `gorm:"size:100" json:"first_name,omitempty"`
	LastName                *string    `gorm:"size:100" json:"last_name,omitempty"`
	PreferredName           *string    `gorm:"size:100" json:"preferred_name,omitempty"`
	Age                     *int       `json:"age,omitempty"`
	FamilyStatus            *string    `gorm:"size:50" json:"family_status,omitempty"`
	City                    *string    `gorm:"size:100" json:"city,omitempty"`
	Timezone                *string    `gorm:"size:50" json:"timezone,omitempty"`
	Occupation              *string    `gorm:"size:100" json:"occupation,omitempty"`
	CompanyOrSchoolName     *string    `gorm:"size:150" json:"company_or_school_name,omitempty"`
	PositionOrFieldOfStudy  *string    `gorm:"size:150" json:"position_or_field_of_study,omitempty"`
	YearsAtJobOrStudy       *int       `json:"years_at_job_or_study,omitempty"`
	EmotionalStabilityNotes *string    `gorm:"type:text" json:"emotional_stability_notes,omitempty"`
	CommunicationStyle      *string    `gorm:"type:text" json:"communication_style,omitempty"`
	CustomNotes             *string    `gorm:"type:text" json:"custom_notes,omitempty"`
	CustomField             *string    `gorm:"type:text" json:"custom_field,omitempty"`
	CreatedAt               *time.Time `json:"created_at,omitempty"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Statistic is one day of the user's productivity history.
type Statistic struct {
	StatisticsID      int64      `gorm:"column:statistics_id;primaryKey;autoIncrement" json:"statistics_id"`
	UserID            int64      `gorm:"column:user_id;not null;uniqueIndex:idx_user_statistics_day" json:"user_id"`
	Date              util.Date  `gorm:"not null;uniqueIndex:idx_user_statistics_day" json:"date"`
	TasksCompleted    int        `gorm:"not null;default:0" json:"tasks_completed"`
	TasksPending      int        `gorm:"not null;default:0" json:"tasks_pending"`
	HabitsFollowed    int        `gorm:"not null;default:0" json:"habits_followed"`
	ProductivityScore float64    `gorm:"not null;default:0" json:"productivity_score"`
	Notes             *string    `gorm:"type:text" json:"notes,omitempty"`
	CustomField       *string    `gorm:"type:text" json:"custom_field,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

func (Statistic) TableName() string {
	return "user_statistics"
}

// ProductivityScore is the share of completed tasks, in percent.
func ProductivityScore(completed, pending int) float64 {
	total := completed + pending
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
