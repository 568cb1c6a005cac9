package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heritagehub/apiserver/internal/services"
	"github.com/heritagehub/apiserver/internal/store"
	"github.com/heritagehub/apiserver/types"
	"github.com/rs/zerolog/log"
)

// UserHandler provides admin user-management endpoints.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRouter registers the /users routes. Per-user bookings and
// favorites listings live here too since they hang off /users/{userID}.
func UserRouter(
	r chi.Router,
	userService *services.UserService,
	tourHandler *TourHandler,
	favoriteHandler *FavoriteHandler,
	authMiddleware func(http.Handler) http.Handler,
	authorizer *Authorizer,
) {
	handler := NewUserHandler(userService)

	r.With(authMiddleware, authorizer.RequireAdmin).Get("/", handler.ListUsers)
	r.Route("/{userID}", func(r chi.Router) {
		r.With(authMiddleware, authorizer.RequireAdmin).Put("/role", handler.UpdateRole)
		r.With(authMiddleware, authorizer.RequireAdmin).Delete("/", handler.DeleteUser)
		r.Get("/bookings", tourHandler.ListUserBookings)
		r.Get("/favorites", favoriteHandler.ListUserFavorites)
	})
}

// ListUsers returns every account without its password hash.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("users: list failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req RoleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !types.ValidRole(req.Role) {
		writeError(w, http.StatusBadRequest, "Unknown role.")
		return
	}

	if err := h.userService.UpdateRole(r.Context(), id, req.Role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Int("user_id", id).Msg("users: role update failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMessage(w, http.StatusOK, "Role updated successfully")
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Int("user_id", id).Msg("users: delete failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMessage(w, http.StatusOK, "User deleted successfully")
}

type RoleUpdateRequest struct {
	Role string `json:"role"`
}
