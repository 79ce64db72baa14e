package container

import (
	"fmt"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/auth"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/goal"
	"github.com/saulo-duarte/planner-miniapp/internal/habit"
	"github.com/saulo-duarte/planner-miniapp/internal/notification"
	"github.com/saulo-duarte/planner-miniapp/internal/router"
	"github.com/saulo-duarte/planner-miniapp/internal/schedule"
	"github.com/saulo-duarte/planner-miniapp/internal/session"
	"github.com/saulo-duarte/planner-miniapp/internal/task"
	"github.com/saulo-duarte/planner-miniapp/internal/user"
)

type Container struct {
	Settings              *config.Settings
	Client                *apiclient.Client
	Sessions              *session.Registry
	Resolver              *auth.Resolver
	AuthHandler           *auth.Handler
	TaskContainer         *task.TaskContainer
	HabitContainer        *habit.HabitContainer
	GoalContainer         *goal.GoalContainer
	ScheduleContainer     *schedule.ScheduleContainer
	NotificationContainer *notification.NotificationContainer
	UserContainer         *user.UserContainer
}

func New(settings *config.Settings) (*Container, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	config.InitLogger(settings.Log.Level, settings.Log.Format)
	auth.Init(settings.JWT.Secret)

	client, err := apiclient.New(settings.API)
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}

	if settings.Telegram.FallbackUserID != 0 {
		config.Logger.WithField("tguser_id", settings.Telegram.FallbackUserID).
			Warn("Fallback Telegram user configured; requests without identity will act as this user")
	}

	resolver := auth.NewResolver(settings.Telegram.BotToken, settings.Telegram.InitDataTTL, settings.Telegram.FallbackUserID)
	sessions := session.NewRegistry(settings.Session.IdleTTL)
	reconcile := settings.View.ReconcileAfterMutation

	taskContainer := task.NewTaskContainer(client, sessions, reconcile)

	return &Container{
		Settings:              settings,
		Client:                client,
		Sessions:              sessions,
		Resolver:              resolver,
		AuthHandler:           auth.NewHandler(resolver, settings.JWT.TTL),
		TaskContainer:         taskContainer,
		HabitContainer:        habit.NewHabitContainer(client, sessions, reconcile),
		GoalContainer:         goal.NewGoalContainer(client, sessions, reconcile),
		ScheduleContainer:     schedule.NewScheduleContainer(client, taskContainer.Gateway, sessions, reconcile),
		NotificationContainer: notification.NewNotificationContainer(client, sessions, reconcile),
		UserContainer:         user.NewUserContainer(client, sessions),
	}, nil
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		AllowedOrigins:      c.Settings.Server.AllowedOrigins,
		Resolver:            c.Resolver,
		AuthHandler:         c.AuthHandler,
		CalendarHandler:     c.ScheduleContainer.Handler,
		TaskHandler:         c.TaskContainer.Handler,
		GoalHandler:         c.GoalContainer.Handler,
		HabitHandler:        c.HabitContainer.Handler,
		NotificationHandler: c.NotificationContainer.Handler,
		UserHandler:         c.UserContainer.Handler,
	}
}
