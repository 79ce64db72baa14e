package user

import (
	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/session"
)

type UserContainer struct {
	Gateway Gateway
	Handler *Handler
}

func NewUserContainer(client *apiclient.Client, sessions *session.Registry) *UserContainer {
	gateway := NewGateway(client)
	return &UserContainer{
		Gateway: gateway,
		Handler: NewHandler(sessions, gateway),
	}
}
