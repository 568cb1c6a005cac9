package handlers

import (
	"errors"
	"net/http"

	"github.com/heritagehub/apiserver/internal/services"
	"github.com/heritagehub/apiserver/internal/store"
	"github.com/heritagehub/apiserver/types"
	"github.com/rs/zerolog/log"
)

// Authorizer performs server-side capability checks for mutating
// routes. The role is re-read from the users table on every check, not
// taken from the token, so a demotion takes effect immediately.
type Authorizer struct {
	userService *services.UserService
}

func NewAuthorizer(userService *services.UserService) *Authorizer {
	return &Authorizer{userService: userService}
}

// RequireAdmin admits only Admin.
func (a *Authorizer) RequireAdmin(next http.Handler) http.Handler {
	return a.requireRole(next, types.RoleAdmin)
}

// RequireGuide admits users permitted to schedule tours.
func (a *Authorizer) RequireGuide(next http.Handler) http.Handler {
	return a.requireRole(next, types.RoleTourGuide, types.RoleAdmin)
}

// RequireStaff admits users permitted to create content.
func (a *Authorizer) RequireStaff(next http.Handler) http.Handler {
	return a.requireRole(next, types.RoleAdmin, types.RoleTourGuide, types.RoleContentCreator)
}

func (a *Authorizer) requireRole(next http.Handler, roles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		user, err := a.userService.GetByID(r.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			log.Error().Err(err).Int("user_id", session.UserID).Msg("authz: role lookup failed")
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		for _, role := range roles {
			if user.Role == role {
				next.ServeHTTP(w, r)
				return
			}
		}
		writeError(w, http.StatusForbidden, "insufficient role")
	})
}
