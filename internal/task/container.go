package task

import (
	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/session"
	"github.com/saulo-duarte/planner-miniapp/internal/view"
)

const Screen = "tasks"

type (
	Container = view.Container[Task, TaskData, TaskPatch]
	Handler   = view.Handler[Task, TaskData, TaskPatch]
)

var Labels = view.Labels{Singular: "task", Plural: "tasks"}

// NewScreen builds the task list state for one user.
func NewScreen(gateway Gateway, userID int64, reconcile bool) *Container {
	return view.NewContainer[Task, TaskData, TaskPatch](gateway, userID, view.Config[Task, TaskData]{
		Labels:                 Labels,
		ID:                     ID,
		ReconcileAfterMutation: reconcile,
		BeforeCreate:           defaultNumber,
	})
}

type TaskContainer struct {
	Gateway Gateway
	Handler *Handler
}

func NewTaskContainer(client *apiclient.Client, sessions *session.Registry, reconcile bool) *TaskContainer {
	gateway := NewGateway(client)
	handler := view.NewHandler(Screen, sessions, func(userID int64) *Container {
		return NewScreen(gateway, userID, reconcile)
	})

	return &TaskContainer{
		Gateway: gateway,
		Handler: handler,
	}
}
