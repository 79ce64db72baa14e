package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	resolver *Resolver
	ttl      time.Duration
}

func NewHandler(resolver *Resolver, ttl time.Duration) *Handler {
	return &Handler{resolver: resolver, ttl: ttl}
}

type loginRequest struct {
	InitData string `json:"init_data"`
}

type loginResponse struct {
	Token  string    `json:"token"`
	UserID int64     `json:"user_id"`
	User   *Identity `json:"user"`
}

// TelegramLogin verifies the WebApp initData and opens a session.
func (h *Handler) TelegramLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid login body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, err := h.resolver.Resolve(req.InitData)
	if err != nil {
		log.WithError(err).Warn("Telegram login rejected")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := GenerateJWT(identity.UserID, h.ttl)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	log.WithFields(logrus.Fields{
		"tguser_id": identity.UserID,
		"fallback":  identity.Fallback,
	}).Info("Telegram session opened")

	config.JSON(w, http.StatusOK, loginResponse{Token: token, UserID: identity.UserID, User: identity})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
