package task

import (
	"strings"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
)

// TaskData is the create payload. TaskNumber is a pointer so that an absent
// number can be told apart from zero.
type TaskData struct {
	TaskNumber      *int    `json:"task_number"`
	TaskDescription string  `json:"task_description"`
	Priority        *string `json:"priority,omitempty"`
	Status          *string `json:"status,omitempty"`
	Importance      *int    `json:"importance,omitempty"`
	IsCompleted     *bool   `json:"is_completed,omitempty"`
	CustomField     *string `json:"custom_field,omitempty"`
}

func (d TaskData) Validate() error {
	var missing []string
	if d.TaskNumber == nil {
		missing = append(missing, "task_number")
	}
	if strings.TrimSpace(d.TaskDescription) == "" {
		missing = append(missing, "task_description")
	}
	return apiclient.Required("task", missing...)
}

// Record builds the row stored for userID. Call Validate first.
func (d TaskData) Record(userID int64) Task {
	t := Task{
		UserID:          userID,
		TaskDescription: d.TaskDescription,
		Priority:        d.Priority,
		Status:          d.Status,
		Importance:      d.Importance,
		CustomField:     d.CustomField,
	}
	if d.TaskNumber != nil {
		t.TaskNumber = *d.TaskNumber
	}
	if d.IsCompleted != nil {
		t.IsCompleted = *d.IsCompleted
	}
	return t
}

// TaskPatch carries only the fields being changed.
type TaskPatch struct {
	TaskNumber      *int    `json:"task_number,omitempty"`
	TaskDescription *string `json:"task_description,omitempty"`
	Priority        *string `json:"priority,omitempty"`
	Status          *string `json:"status,omitempty"`
	Importance      *int    `json:"importance,omitempty"`
	IsCompleted     *bool   `json:"is_completed,omitempty"`
	CustomField     *string `json:"custom_field,omitempty"`
}

func (p TaskPatch) Apply(t *Task) {
	if p.TaskNumber != nil {
		t.TaskNumber = *p.TaskNumber
	}
	if p.TaskDescription != nil {
		t.TaskDescription = *p.TaskDescription
	}
	if p.Priority != nil {
		t.Priority = p.Priority
	}
	if p.Status != nil {
		t.Status = p.Status
	}
	if p.Importance != nil {
		t.Importance = p.Importance
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}
	if p.CustomField != nil {
		t.CustomField = p.CustomField
	}
}

// NextNumber is the number the task form proposes for a new task.
func NextNumber(tasks []Task) int {
	return len(tasks) + 1
}

func defaultNumber(tasks []Task, data *TaskData) {
	if data.TaskNumber == nil {
		n := NextNumber(tasks)
		data.TaskNumber = &n
	}
}
