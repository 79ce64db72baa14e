package habit

import (
	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/session"
	"github.com/saulo-duarte/planner-miniapp/internal/view"
)

const Screen = "habits"

type (
	Container = view.Container[Habit, HabitData, HabitPatch]
	Handler   = view.Handler[Habit, HabitData, HabitPatch]
)

func NewScreen(gateway Gateway, userID int64, reconcile bool) *Container {
	return view.NewContainer[Habit, HabitData, HabitPatch](gateway, userID, view.Config[Habit, HabitData]{
		Labels:                 view.Labels{Singular: "habit", Plural: "habits"},
		ID:                     ID,
		ReconcileAfterMutation: reconcile,
		BeforeCreate:           defaultNumber,
	})
}

type HabitContainer struct {
	Gateway Gateway
	Handler *Handler
}

func NewHabitContainer(client *apiclient.Client, sessions *session.Registry, reconcile bool) *HabitContainer {
	gateway := NewGateway(client)
	return &HabitContainer{
		Gateway: gateway,
		Handler: view.NewHandler(Screen, sessions, func(userID int64) *Container {
			return NewScreen(gateway, userID, reconcile)
		}),
	}
}
