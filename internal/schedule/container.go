package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/metrics"
	"github.com/saulo-duarte/planner-miniapp/internal/session"
	"github.com/saulo-duarte/planner-miniapp/internal/task"
	"github.com/saulo-duarte/planner-miniapp/internal/view"
)

const Screen = "calendar"

type Container = view.Container[Schedule, ScheduleData, SchedulePatch]

func NewScreen(gateway Gateway, userID int64, reconcile bool) *Container {
	return view.NewContainer[Schedule, ScheduleData, SchedulePatch](gateway, userID, view.Config[Schedule, ScheduleData]{
		Labels:                 view.Labels{Singular: "schedule", Plural: "schedules"},
		ID:                     ID,
		ReconcileAfterMutation: reconcile,
	})
}

type CalendarHandler struct {
	sessions  *session.Registry
	schedules Gateway
	tasks     task.Gateway
	reconcile bool
}

func NewCalendarHandler(sessions *session.Registry, schedules Gateway, tasks task.Gateway, reconcile bool) *CalendarHandler {
	return &CalendarHandler{sessions: sessions, schedules: schedules, tasks: tasks, reconcile: reconcile}
}

func (h *CalendarHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Mount)
	r.Post("/reconcile", h.Reconcile)

	r.Route("/schedules", func(r chi.Router) {
		r.Post("/", h.CreateSchedule)
		r.Put("/{id}", h.UpdateSchedule)
		r.Delete("/{id}", h.DeleteSchedule)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
	})
	return r
}

func (h *CalendarHandler) build(userID int64) func() *CalendarScreen {
	return func() *CalendarScreen {
		return NewCalendarScreen(h.schedules, h.tasks, userID, h.reconcile)
	}
}

func (h *CalendarHandler) Mount(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}

	screen := session.Mount(h.sessions, userID, Screen, h.build(userID))
	metrics.IncScreenMount(Screen)
	_ = screen.Load(r.Context())

	config.JSON(w, http.StatusOK, screen.Snapshot())
}

func (h *CalendarHandler) current(r *http.Request, userID int64) *CalendarScreen {
	screen, fresh := session.Current(h.sessions, userID, Screen, h.build(userID))
	if fresh {
		metrics.IncScreenMount(Screen)
		_ = screen.Load(r.Context())
	}
	return screen
}

func (h *CalendarHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}

	screen := h.current(r, userID)
	_ = screen.Reconcile(r.Context())
	config.JSON(w, http.StatusOK, screen.Snapshot())
}

func (h *CalendarHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}
	var data ScheduleData
	if !view.Decode(w, r, &data) {
		return
	}

	screen := h.current(r, userID)
	_, _ = screen.Schedules.Create(r.Context(), data)
	config.JSON(w, http.StatusOK, screen.Snapshot())
}

func (h *CalendarHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}
	id, ok := view.PathID(w, r)
	if !ok {
		return
	}
	var patch SchedulePatch
	if !view.Decode(w, r, &patch) {
		return
	}

	screen := h.current(r, userID)
	_, _ = screen.Schedules.Update(r.Context(), id, patch)
	config.JSON(w, http.StatusOK, screen.Snapshot())
}

func (h *CalendarHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}
	id, ok := view.PathID(w, r)
	if !ok {
		return
	}

	screen := h.current(r, userID)
	_ = screen.Schedules.Delete(r.Context(), id)
	config.JSON(w, http.StatusOK, screen.Snapshot())
}

func (h *CalendarHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}
	var data task.TaskData
	if !view.Decode(w, r, &data) {
		return
	}

	screen := h.current(r, userID)
	_, _ = screen.Tasks.Create(r.Context(), data)
	config.JSON(w, http.StatusOK, screen.Snapshot())
}

func (h *CalendarHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}
	id, ok := view.PathID(w, r)
	if !ok {
		return
	}
	var patch task.TaskPatch
	if !view.Decode(w, r, &patch) {
		return
	}

	screen := h.current(r, userID)
	_, _ = screen.Tasks.Update(r.Context(), id, patch)
	config.JSON(w, http.StatusOK, screen.Snapshot())
}

func (h *CalendarHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}
	id, ok := view.PathID(w, r)
	if !ok {
		return
	}

	screen := h.current(r, userID)
	_ = screen.Tasks.Delete(r.Context(), id)
	config.JSON(w, http.StatusOK, screen.Snapshot())
}

type ScheduleContainer struct {
	Gateway Gateway
	Handler *CalendarHandler
}

func NewScheduleContainer(client *apiclient.Client, tasks task.Gateway, sessions *session.Registry, reconcile bool) *ScheduleContainer {
	gateway := NewGateway(client)
	return &ScheduleContainer{
		Gateway: gateway,
		Handler: NewCalendarHandler(sessions, gateway, tasks, reconcile),
	}
}
