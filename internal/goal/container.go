package goal

import (
	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/session"
	"github.com/saulo-duarte/planner-miniapp/internal/view"
)

const Screen = "goals"

type (
	Container = view.Container[Goal, GoalData, GoalPatch]
	Handler   = view.Handler[Goal, GoalData, GoalPatch]
)

func NewScreen(gateway Gateway, userID int64, reconcile bool) *Container {
	return view.NewContainer[Goal, GoalData, GoalPatch](gateway, userID, view.Config[Goal, GoalData]{
		Labels:                 view.Labels{Singular: "goal", Plural: "goals"},
		ID:                     ID,
		ReconcileAfterMutation: reconcile,
		BeforeCreate:           defaultNumber,
	})
}

type GoalContainer struct {
	Gateway Gateway
	Handler *Handler
}

func NewGoalContainer(client *apiclient.Client, sessions *session.Registry, reconcile bool) *GoalContainer {
	gateway := NewGateway(client)
	return &GoalContainer{
		Gateway: gateway,
		Handler: view.NewHandler(Screen, sessions, func(userID int64) *Container {
			return NewScreen(gateway, userID, reconcile)
		}),
	}
}
