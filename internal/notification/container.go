package notification

import (
	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/session"
	"github.com/saulo-duarte/planner-miniapp/internal/view"
)

const Screen = "notifications"

type (
	Container = view.Container[Setting, SettingData, SettingPatch]
	Handler   = view.Handler[Setting, SettingData, SettingPatch]
)

func NewScreen(gateway Gateway, userID int64, reconcile bool) *Container {
	return view.NewContainer[Setting, SettingData, SettingPatch](gateway, userID, view.Config[Setting, SettingData]{
		Labels:                 view.Labels{Singular: "notification setting", Plural: "notification settings"},
		ID:                     ID,
		ReconcileAfterMutation: reconcile,
	})
}

type NotificationContainer struct {
	Gateway Gateway
	Handler *Handler
}

func NewNotificationContainer(client *apiclient.Client, sessions *session.Registry, reconcile bool) *NotificationContainer {
	gateway := NewGateway(client)
	return &NotificationContainer{
		Gateway: gateway,
		Handler: view.NewHandler(Screen, sessions, func(userID int64) *Container {
			return NewScreen(gateway, userID, reconcile)
		}),
	}
}
