package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heritagehub/apiserver/internal/metrics"
	"github.com/heritagehub/apiserver/internal/services"
	"github.com/rs/zerolog/log"
)

// FavoriteHandler provides HTTP handlers for favorites.
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
	metrics         *metrics.Metrics
}

func NewFavoriteHandler(favoriteService *services.FavoriteService, m *metrics.Metrics) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, metrics: m}
}

// FavoriteRouter registers the /favorites routes.
func FavoriteRouter(
	r chi.Router,
	favoriteService *services.FavoriteService,
	m *metrics.Metrics,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewFavoriteHandler(favoriteService, m)

	r.With(authMiddleware).Post("/toggle", handler.Toggle)
}

func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req FavoriteToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.UserID == 0 || req.MonumentID == 0 {
		writeError(w, http.StatusBadRequest, "User ID and Monument ID are required.")
		return
	}

	status, err := h.favoriteService.Toggle(r.Context(), req.UserID, req.MonumentID)
	if err != nil {
		log.Error().Err(err).Int("user_id", req.UserID).Int("monument_id", req.MonumentID).
			Msg("favorites: toggle failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.metrics.FavoriteToggles.WithLabelValues(status).Inc()
	writeJSON(w, http.StatusOK, FavoriteToggleResponse{Status: status})
}

// ListUserFavorites handles GET /users/{userID}/favorites.
func (h *FavoriteHandler) ListUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	monuments, err := h.favoriteService.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("favorites: list failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, monuments)
}

type FavoriteToggleRequest struct {
	UserID     int `json:"user_id"`
	MonumentID int `json:"monument_id"`
}

type FavoriteToggleResponse struct {
	Status string `json:"status"`
}
