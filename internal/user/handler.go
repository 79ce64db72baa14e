package user

import (
	"net/http"

	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/metrics"
	"github.com/saulo-duarte/planner-miniapp/internal/session"
	"github.com/saulo-duarte/planner-miniapp/internal/view"
)

const Screen = "profile"

type Handler struct {
	sessions *session.Registry
	gateway  Gateway
}

func NewHandler(sessions *session.Registry, gateway Gateway) *Handler {
	return &Handler{sessions: sessions, gateway: gateway}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}

	profile := session.Mount(h.sessions, userID, Screen, func() *Profile { return NewProfile(h.gateway, userID) })
	metrics.IncScreenMount(Screen)
	_ = profile.Load(r.Context())

	config.JSON(w, http.StatusOK, profile.Snapshot())
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}

	var patch UserPatch
	if !view.Decode(w, r, &patch) {
		return
	}

	profile := h.current(r, userID)
	_, _ = profile.Update(r.Context(), patch)
	config.JSON(w, http.StatusOK, profile.Snapshot())
}

func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID, ok := view.UserID(w, r)
	if !ok {
		return
	}

	profile := h.current(r, userID)
	_ = profile.Reconcile(r.Context())
	config.JSON(w, http.StatusOK, profile.Snapshot())
}

func (h *Handler) current(r *http.Request, userID int64) *Profile {
	profile, fresh := session.Current(h.sessions, userID, Screen, func() *Profile { return NewProfile(h.gateway, userID) })
	if fresh {
		metrics.IncScreenMount(Screen)
		_ = profile.Load(r.Context())
	}
	return profile
}
