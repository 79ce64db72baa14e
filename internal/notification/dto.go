package notification

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
)

type SettingData struct {
	ItemType                ItemType `json:"item_type"`
	TaskID                  *int64   `json:"task_id,omitempty"`
	ScheduleID              *int64   `json:"schedule_id,omitempty"`
	ReminderType            string   `json:"reminder_type"`
	ReminderTimes           string   `json:"reminder_times"`
	IsActive                *bool    `json:"is_active,omitempty"`
	IsPendingAcknowledgment *bool    `json:"is_pending_acknowledgment,omitempty"`
	LastMessageID           *int64   `json:"last_message_id,omitempty"`
}

func (d SettingData) Validate() error {
	var missing []string
	if d.ItemType == "" {
		missing = append(missing, "item_type")
	}
	if strings.TrimSpace(d.ReminderType) == "" {
		missing = append(missing, "reminder_type")
	}
	if strings.TrimSpace(d.ReminderTimes) == "" {
		missing = append(missing, "reminder_times")
	}
	if err := apiclient.Required("notification setting", missing...); err != nil {
		return err
	}
	if !d.ItemType.IsValid() {
		return fmt.Errorf("%w: notification setting: unknown item_type %q", apiclient.ErrValidation, d.ItemType)
	}
	return nil
}

func (d SettingData) Record(userID int64) Setting {
	s := Setting{
		UserID:        userID,
		ItemType:      d.ItemType,
		TaskID:        d.TaskID,
		ScheduleID:    d.ScheduleID,
		ReminderType:  d.ReminderType,
		ReminderTimes: d.ReminderTimes,
		IsActive:      true,
		LastMessageID: d.LastMessageID,
	}
	if d.IsActive != nil {
		s.IsActive = *d.IsActive
	}
	if d.IsPendingAcknowledgment != nil {
		s.IsPendingAcknowledgment = *d.IsPendingAcknowledgment
	}
	return s
}

type SettingPatch struct {
	ItemType                *ItemType `json:"item_type,omitempty"`
	TaskID                  *int64    `json:"task_id,omitempty"`
	ScheduleID              *int64    `json:"schedule_id,omitempty"`
	ReminderType            *string   `json:"reminder_type,omitempty"`
	ReminderTimes           *string   `json:"reminder_times,omitempty"`
	IsActive                *bool     `json:"is_active,omitempty"`
	IsPendingAcknowledgment *bool     `json:"is_pending_acknowledgment,omitempty"`
	LastMessageID           *int64    `json:"last_message_id,omitempty"`
}

func (p SettingPatch) Apply(s *Setting) {
	if p.ItemType != nil {
		s.ItemType = *p.ItemType
	}
	if p.TaskID != nil {
		s.TaskID = p.TaskID
	}
	if p.ScheduleID != nil {
		s.ScheduleID = p.ScheduleID
	}
	if p.ReminderType != nil {
		s.ReminderType = *p.ReminderType
	}
	if p.ReminderTimes != nil {
		s.ReminderTimes = *p.ReminderTimes
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	if p.IsPendingAcknowledgment != nil {
		s.IsPendingAcknowledgment = *p.IsPendingAcknowledgment
	}
	if p.LastMessageID != nil {
		s.LastMessageID = p.LastMessageID
	}
}
