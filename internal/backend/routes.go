package backend

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/metrics"
	"github.com/saulo-duarte/planner-miniapp/internal/middlewares"
)

func Routes(c *Container) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middlewares.JSONOnly)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(UserMiddleware(c.Users))

		r.Mount("/tasks", c.Tasks.Routes())
		r.Mount("/habits", c.Habits.Routes())
		r.Mount("/goals", c.Goals.Routes())
		r.Mount("/schedules", c.Schedules.Routes())
		r.Mount("/notifications", c.Notifications.Routes())

		r.Get("/user", c.UserHandler.Get)
		r.Put("/user", c.UserHandler.Update)
		r.Get("/user/statistics", c.UserHandler.Statistics)
	})
	return r
}
