package schedule

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

type ScheduleData struct {
	Activity    string    `json:"activity"`
	Date        util.Date `json:"date"`
	TimeFrame   string    `json:"time_frame"`
	IsRecurring *bool     `json:"is_recurring,omitempty"`
	Importance  *int      `json:"importance,omitempty"`
	IsCompleted *bool     `json:"is_completed,omitempty"`
	CustomField *string   `json:"custom_field,omitempty"`
}

func (d ScheduleData) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Activity) == "" {
		missing = append(missing, "activity")
	}
	if d.Date.IsZero() {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(d.TimeFrame) == "" {
		missing = append(missing, "time_frame")
	}
	if err := apiclient.Required("schedule", missing...); err != nil {
		return err
	}
	if _, err := util.ParseClock(d.TimeFrame); err != nil {
		return fmt.Errorf("%w: schedule: %v", apiclient.ErrValidation, err)
	}
	return nil
}

func (d ScheduleData) Record(userID int64) Schedule {
	s := Schedule{
		UserID:      userID,
		Activity:    d.Activity,
		Date:        d.Date,
		TimeFrame:   d.TimeFrame,
		Importance:  d.Importance,
		CustomField: d.CustomField,
	}
	if d.IsRecurring != nil {
		s.IsRecurring = *d.IsRecurring
	}
	if d.IsCompleted != nil {
		s.IsCompleted = *d.IsCompleted
	}
	return s
}

type SchedulePatch struct {
	Activity    *string    `json:"activity,omitempty"`
	Date        *util.Date `json:"date,omitempty"`
	TimeFrame   *string    `json:"time_frame,omitempty"`
	IsRecurring *bool      `json:"is_recurring,omitempty"`
	Importance  *int       `json:"importance,omitempty"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
	CustomField *string    `json:"custom_field,omitempty"`
}

func (p SchedulePatch) Apply(s *Schedule) {
	if p.Activity != nil {
		s.Activity = *p.Activity
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.TimeFrame != nil {
		s.TimeFrame = *p.TimeFrame
	}
	if p.IsRecurring != nil {
		s.IsRecurring = *p.IsRecurring
	}
	if p.Importance != nil {
		s.Importance = p.Importance
	}
	if p.IsCompleted != nil {
		s.IsCompleted = *p.IsCompleted
	}
	if p.CustomField != nil {
		s.CustomField = p.CustomField
	}
}
