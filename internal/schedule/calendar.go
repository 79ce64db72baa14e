package schedule

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/saulo-duarte/planner-miniapp/internal/task"
	"github.com/saulo-duarte/planner-miniapp/internal/view"
)

// Event is a schedule as the calendar widget draws it.
type Event struct {
	ID          int64     `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// ToEvent places the schedule at its date and time frame. A schedule with no
// usable date is drawn at now.
func ToEvent(s Schedule, now time.Time) Event {
	start := now
	if !s.Date.IsZero() {
		if at, err := s.Date.At(s.TimeFrame); err == nil {
			start = at
		}
	}

	return Event{
		ID:          s.ScheduleID,
		Start:       start,
		End:         start,
		Title:       s.Activity,
		Description: "Importance: " + importanceLabel(s.Importance),
	}
}

func importanceLabel(importance *int) string {
	if importance == nil || *importance == 0 {
		return "Normal"
	}
	return strconv.Itoa(*importance)
}

func ToEvents(schedules []Schedule, now time.Time) []Event {
	events := make([]Event, 0, len(schedules))
	for _, s := range schedules {
		events = append(events, ToEvent(s, now))
	}
	return events
}

// CalendarScreen is the home screen: the schedule calendar with the task
// list underneath. Each part keeps its own list state.
type CalendarScreen struct {
	Schedules *Container
	Tasks     *task.Container
}

type CalendarSnapshot struct {
	Events   []Event                  `json:"events"`
	Loading  bool                     `json:"loading"`
	Error    string                   `json:"error,omitempty"`
	Notice   string                   `json:"notice,omitempty"`
	Version  uint64                   `json:"version"`
	SyncedAt *time.Time               `json:"synced_at,omitempty"`
	Tasks    view.Snapshot[task.Task] `json:"tasks"`
}

func NewCalendarScreen(schedules Gateway, tasks task.Gateway, userID int64, reconcile bool) *CalendarScreen {
	return &CalendarScreen{
		Schedules: NewScreen(schedules, userID, reconcile),
		Tasks:     task.NewScreen(tasks, userID, reconcile),
	}
}

func (c *CalendarScreen) Load(ctx context.Context) error {
	return errors.Join(c.Schedules.Load(ctx), c.Tasks.Load(ctx))
}

func (c *CalendarScreen) Reconcile(ctx context.Context) error {
	return errors.Join(c.Schedules.Reconcile(ctx), c.Tasks.Reconcile(ctx))
}

func (c *CalendarScreen) Snapshot() CalendarSnapshot {
	s := c.Schedules.Snapshot()
	return CalendarSnapshot{
		Events:   ToEvents(s.Items, time.Now()),
		Loading:  s.Loading,
		Error:    s.Error,
		Notice:   s.Notice,
		Version:  s.Version,
		SyncedAt: s.SyncedAt,
		Tasks:    c.Tasks.Snapshot(),
	}
}
