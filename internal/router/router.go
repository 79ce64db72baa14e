package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saulo-duarte/planner-miniapp/internal/auth"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/goal"
	"github.com/saulo-duarte/planner-miniapp/internal/habit"
	"github.com/saulo-duarte/planner-miniapp/internal/metrics"
	"github.com/saulo-duarte/planner-miniapp/internal/middlewares"
	"github.com/saulo-duarte/planner-miniapp/internal/notification"
	"github.com/saulo-duarte/planner-miniapp/internal/schedule"
	"github.com/saulo-duarte/planner-miniapp/internal/task"
	"github.com/saulo-duarte/planner-miniapp/internal/user"
)

type RouterConfig struct {
	AllowedOrigins      []string
	Resolver            *auth.Resolver
	AuthHandler         *auth.Handler
	CalendarHandler     *schedule.CalendarHandler
	TaskHandler         *task.Handler
	GoalHandler         *goal.Handler
	HabitHandler        *habit.Handler
	NotificationHandler *notification.Handler
	UserHandler         *user.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))
	r.Use(middlewares.JSONOnly)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/telegram", cfg.AuthHandler.TelegramLogin)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.Resolver))

		r.Get("/", cfg.CalendarHandler.Mount)
		r.Mount("/calendar", cfg.CalendarHandler.Routes())
		r.Mount("/tasks", cfg.TaskHandler.Routes())
		r.Mount("/goals", cfg.GoalHandler.Routes())
		r.Mount("/habits", cfg.HabitHandler.Routes())
		r.Mount("/notifications", cfg.NotificationHandler.Routes())
		r.Mount("/profile", user.Routes(cfg.UserHandler))
	})
	return r
}
