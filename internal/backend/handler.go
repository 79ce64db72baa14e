package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/user"
	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

type contextKey string

const userKey contextKey = "backend_user"

// Data is a create payload that can check itself and build its record.
type Data[T any] interface {
	Validate() error
	Record(userID int64) T
}

// Patch applies a partial update onto a record.
type Patch[T any] interface {
	Apply(record *T)
}

// UserMiddleware resolves the tguser_id query parameter to the stored user,
// creating the user on first contact.
func UserMiddleware(users UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			telegramID, err := strconv.ParseInt(r.URL.Query().Get(apiclient.UserIDParam), 10, 64)
			if err != nil || telegramID <= 0 {
				http.Error(w, "tguser_id is required", http.StatusBadRequest)
				return
			}

			u, err := users.FindOrCreate(r.Context(), telegramID)
			if err != nil {
				log.WithError(err).WithField("tguser_id", telegramID).Error("Failed to resolve user")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
		})
	}
}

func userFromContext(ctx context.Context) *user.User {
	u, _ := ctx.Value(userKey).(*user.User)
	return u
}

// Resource serves the CRUD endpoints of one entity collection.
type Resource[T any, D Data[T], P Patch[T]] struct {
	name string
	repo Repository[T]
}

func NewResource[T any, D Data[T], P Patch[T]](name string, repo Repository[T]) *Resource[T, D, P] {
	return &Resource[T, D, P]{name: name, repo: repo}
}

func (h *Resource[T, D, P]) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *Resource[T, D, P]) List(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())

	records, err := h.repo.ListByUser(r.Context(), u.UserID)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Errorf("Failed to list %s records", h.name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, records)
}

func (h *Resource[T, D, P]) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	u := userFromContext(r.Context())

	var data D
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := data.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record := data.Record(u.UserID)
	if err := h.repo.Create(r.Context(), &record); err != nil {
		log.WithError(err).Errorf("Failed to create %s", h.name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusCreated, record)
}

func (h *Resource[T, D, P]) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	u := userFromContext(r.Context())

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch P
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.repo.FindByID(r.Context(), u.UserID, id)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, h.name+" not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.WithError(err).Errorf("Failed to load %s", h.name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	patch.Apply(record)
	if err := h.repo.Update(r.Context(), record); err != nil {
		log.WithError(err).Errorf("Failed to update %s", h.name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, record)
}

func (h *Resource[T, D, P]) Delete(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.repo.Delete(r.Context(), u.UserID, id)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, h.name+" not found", http.StatusNotFound)
		return
	}
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Errorf("Failed to delete %s", h.name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, apiclient.MessageResponse{Message: h.name + " deleted successfully"})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// UserHandler serves the user record and its statistics.
type UserHandler struct {
	users UserRepository
	stats StatisticsRepository
}

func NewUserHandler(users UserRepository, stats StatisticsRepository) *UserHandler {
	return &UserHandler{users: users, stats: stats}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, userFromContext(r.Context()))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	u := userFromContext(r.Context())

	var patch user.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	patch.Apply(u)
	if err := h.users.Update(r.Context(), u); err != nil {
		log.WithError(err).Error("Failed to update user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, u)
}

func (h *UserHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	u := userFromContext(r.Context())

	if err := h.stats.Snapshot(r.Context(), u.UserID, util.Today()); err != nil {
		log.WithError(err).Error("Failed to snapshot user statistics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	stats, err := h.stats.ListByUser(r.Context(), u.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list user statistics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, stats)
}
