package view

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/planner-miniapp/internal/auth"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/metrics"
	"github.com/saulo-duarte/planner-miniapp/internal/session"
)

var ErrInvalidID = errors.New("invalid id")

// Handler serves one list screen. Every response is the screen snapshot;
// failures of the REST service show up in its error string, not as an
// HTTP error.
type Handler[T, D, P any] struct {
	screen   string
	sessions *session.Registry
	build    func(userID int64) *Container[T, D, P]
}

func NewHandler[T, D, P any](screen string, sessions *session.Registry, build func(userID int64) *Container[T, D, P]) *Handler[T, D, P] {
	return &Handler[T, D, P]{screen: screen, sessions: sessions, build: build}
}

func (h *Handler[T, D, P]) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Mount)
	r.Post("/", h.Create)
	r.Post("/reconcile", h.Reconcile)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *Handler[T, D, P]) Mount(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(w, r)
	if !ok {
		return
	}

	c := session.Mount(h.sessions, userID, h.screen, func() *Container[T, D, P] { return h.build(userID) })
	metrics.IncScreenMount(h.screen)
	_ = c.Load(r.Context())

	config.JSON(w, http.StatusOK, c.Snapshot())
}

func (h *Handler[T, D, P]) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(w, r)
	if !ok {
		return
	}

	var data D
	if !Decode(w, r, &data) {
		return
	}

	c := h.current(r, userID)
	_, _ = c.Create(r.Context(), data)
	config.JSON(w, http.StatusOK, c.Snapshot())
}

func (h *Handler[T, D, P]) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(w, r)
	if !ok {
		return
	}
	id, ok := PathID(w, r)
	if !ok {
		return
	}

	var patch P
	if !Decode(w, r, &patch) {
		return
	}

	c := h.current(r, userID)
	_, _ = c.Update(r.Context(), id, patch)
	config.JSON(w, http.StatusOK, c.Snapshot())
}

func (h *Handler[T, D, P]) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(w, r)
	if !ok {
		return
	}
	id, ok := PathID(w, r)
	if !ok {
		return
	}

	c := h.current(r, userID)
	_ = c.Delete(r.Context(), id)
	config.JSON(w, http.StatusOK, c.Snapshot())
}

func (h *Handler[T, D, P]) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(w, r)
	if !ok {
		return
	}

	c := h.current(r, userID)
	_ = c.Reconcile(r.Context())
	config.JSON(w, http.StatusOK, c.Snapshot())
}

// current returns the mounted container, mounting and loading one when the
// user mutates a screen they have not opened.
func (h *Handler[T, D, P]) current(r *http.Request, userID int64) *Container[T, D, P] {
	c, fresh := session.Current(h.sessions, userID, h.screen, func() *Container[T, D, P] { return h.build(userID) })
	if fresh {
		metrics.IncScreenMount(h.screen)
		_ = c.Load(r.Context())
	}
	return c
}

func UserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func PathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
