package goal

import (
	"errors"
	"strings"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

var ErrInvalidPeriod = errors.New("end_date before start_date")

type GoalData struct {
	GoalNumber      *int       `json:"goal_number"`
	GoalType        *string    `json:"goal_type,omitempty"`
	GoalDescription string     `json:"goal_description"`
	StartDate       *util.Date `json:"start_date,omitempty"`
	EndDate         *util.Date `json:"end_date,omitempty"`
	Importance      *int       `json:"importance,omitempty"`
	IsCompleted     *bool      `json:"is_completed,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
	CustomField     *string    `json:"custom_field,omitempty"`
}

func (d GoalData) Validate() error {
	var missing []string
	if d.GoalNumber == nil {
		missing = append(missing, "goal_number")
	}
	if strings.TrimSpace(d.GoalDescription) == "" {
		missing = append(missing, "goal_description")
	}
	if err := apiclient.Required("goal", missing...); err != nil {
		return err
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(d.StartDate.Time) {
		return errors.Join(apiclient.ErrValidation, ErrInvalidPeriod)
	}
	return nil
}

func (d GoalData) Record(userID int64) Goal {
	g := Goal{
		UserID:          userID,
		GoalType:        d.GoalType,
		GoalDescription: d.GoalDescription,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		Importance:      d.Importance,
		IsActive:        true,
		CustomField:     d.CustomField,
	}
	if d.GoalNumber != nil {
		g.GoalNumber = *d.GoalNumber
	}
	if d.IsCompleted != nil {
		g.IsCompleted = *d.IsCompleted
	}
	if d.IsActive != nil {
		g.IsActive = *d.IsActive
	}
	return g
}

type GoalPatch struct {
	GoalNumber      *int       `json:"goal_number,omitempty"`
	GoalType        *string    `json:"goal_type,omitempty"`
	GoalDescription *string    `json:"goal_description,omitempty"`
	StartDate       *util.Date `json:"start_date,omitempty"`
	EndDate         *util.Date `json:"end_date,omitempty"`
	Importance      *int       `json:"importance,omitempty"`
	IsCompleted     *bool      `json:"is_completed,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
	CustomField     *string    `json:"custom_field,omitempty"`
}

func (p GoalPatch) Apply(g *Goal) {
	if p.GoalNumber != nil {
		g.GoalNumber = *p.GoalNumber
	}
	if p.GoalType != nil {
		g.GoalType = p.GoalType
	}
	if p.GoalDescription != nil {
		g.GoalDescription = *p.GoalDescription
	}
	if p.StartDate != nil {
		g.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		g.EndDate = p.EndDate
	}
	if p.Importance != nil {
		g.Importance = p.Importance
	}
	if p.IsCompleted != nil {
		g.IsCompleted = *p.IsCompleted
	}
	if p.IsActive != nil {
		g.IsActive = *p.IsActive
	}
	if p.CustomField != nil {
		g.CustomField = p.CustomField
	}
}

// NextNumber follows the last goal number on the list.
func NextNumber(goals []Goal) int {
	next := 1
	for _, g := range goals {
		if g.GoalNumber >= next {
			next = g.GoalNumber + 1
		}
	}
	return next
}

func defaultNumber(goals []Goal, data *GoalData) {
	if data.GoalNumber == nil {
		n := NextNumber(goals)
		data.GoalNumber = &n
	}
}
