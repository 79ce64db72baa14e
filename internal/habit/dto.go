package habit

import (
	"strings"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

type HabitData struct {
	HabitNumber      *int       `json:"habit_number"`
	HabitDescription string     `json:"habit_description"`
	HabitType        *string    `json:"habit_type,omitempty"`
	StartDate        *util.Date `json:"start_date,omitempty"`
	Importance       *int       `json:"importance,omitempty"`
	IsActive         *bool      `json:"is_active,omitempty"`
	CustomField      *string    `json:"custom_field,omitempty"`
}

func (d HabitData) Validate() error {
	var missing []string
	if d.HabitNumber == nil {
		missing = append(missing, "habit_number")
	}
	if strings.TrimSpace(d.HabitDescription) == "" {
		missing = append(missing, "habit_description")
	}
	return apiclient.Required("habit", missing...)
}

func (d HabitData) Record(userID int64) Habit {
	h := Habit{
		UserID:           userID,
		HabitDescription: d.HabitDescription,
		HabitType:        d.HabitType,
		StartDate:        d.StartDate,
		Importance:       d.Importance,
		IsActive:         true,
		CustomField:      d.CustomField,
	}
	if d.HabitNumber != nil {
		h.HabitNumber = *d.HabitNumber
	}
	if d.IsActive != nil {
		h.IsActive = *d.IsActive
	}
	return h
}

type HabitPatch struct {
	HabitNumber      *int       `json:"habit_number,omitempty"`
	HabitDescription *string    `json:"habit_description,omitempty"`
	HabitType        *string    `json:"habit_type,omitempty"`
	StartDate        *util.Date `json:"start_date,omitempty"`
	Importance       *int       `json:"importance,omitempty"`
	IsActive         *bool      `json:"is_active,omitempty"`
	CustomField      *string    `json:"custom_field,omitempty"`
}

func (p HabitPatch) Apply(h *Habit) {
	if p.HabitNumber != nil {
		h.HabitNumber = *p.HabitNumber
	}
	if p.HabitDescription != nil {
		h.HabitDescription = *p.HabitDescription
	}
	if p.HabitType != nil {
		h.HabitType = p.HabitType
	}
	if p.StartDate != nil {
		h.StartDate = p.StartDate
	}
	if p.Importance != nil {
		h.Importance = p.Importance
	}
	if p.IsActive != nil {
		h.IsActive = *p.IsActive
	}
	if p.CustomField != nil {
		h.CustomField = p.CustomField
	}
}

// NextNumber follows the last habit number on the list.
func NextNumber(habits []Habit) int {
	next := 1
	for _, h := range habits {
		if h.HabitNumber >= next {
			next = h.HabitNumber + 1
		}
	}
	return next
}

func defaultNumber(habits []Habit, data *HabitData) {
	if data.HabitNumber == nil {
		n := NextNumber(habits)
		data.HabitNumber = &n
	}
}
