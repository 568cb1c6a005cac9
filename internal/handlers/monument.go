package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/heritagehub/apiserver/internal/services"
	"github.com/heritagehub/apiserver/internal/store"
	"github.com/heritagehub/apiserver/types"
	"github.com/rs/zerolog/log"
)

// MonumentHandler provides HTTP handlers for monuments and their
// nested resources.
type MonumentHandler struct {
	monumentService *services.MonumentService
}

func NewMonumentHandler(monumentService *services.MonumentService) *MonumentHandler {
	return &MonumentHandler{monumentService: monumentService}
}

// MonumentRouter registers monument routes and the nested
// review/timeline/tour routes that hang off a single monument.
func MonumentRouter(
	r chi.Router,
	monumentService *services.MonumentService,
	reviewService *services.ReviewService,
	timelineService *services.TimelineService,
	tourHandler *TourHandler,
	authMiddleware func(http.Handler) http.Handler,
	authorizer *Authorizer,
) {
	handler := NewMonumentHandler(monumentService)

	r.Get("/", handler.ListMonuments)
	r.With(authMiddleware, authorizer.RequireStaff).Post("/", handler.CreateMonument)
	r.Route("/{monumentID}", func(r chi.Router) {
		r.Get("/", handler.GetMonument)
		r.With(authMiddleware, authorizer.RequireStaff).Put("/", handler.UpdateMonument)
		r.With(authMiddleware, authorizer.RequireStaff).Delete("/", handler.DeleteMonument)
		r.Route("/reviews", func(r chi.Router) {
			ReviewRouter(r, reviewService, authMiddleware)
		})
		r.Route("/timeline", func(r chi.Router) {
			TimelineRouter(r, timelineService, authMiddleware, authorizer)
		})
		r.Get("/tours", tourHandler.ListMonumentTours)
	})
}

func (h *MonumentHandler) ListMonuments(w http.ResponseWriter, r *http.Request) {
	monuments, err := h.monumentService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("monuments: list failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, monuments)
}

func (h *MonumentHandler) GetMonument(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "monumentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	monument, err := h.monumentService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Monument not found")
			return
		}
		log.Error().Err(err).Int("monument_id", id).Msg("monuments: fetch failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, monument)
}

func (h *MonumentHandler) CreateMonument(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMonumentRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "Name and description are required.")
		return
	}

	created, err := h.monumentService.Create(r.Context(), req.toMonument())
	if err != nil {
		log.Error().Err(err).Msg("monuments: create failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *MonumentHandler) UpdateMonument(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "monumentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := decodeMonumentRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	monument := req.toMonument()
	monument.ID = id

	updated, err := h.monumentService.Update(r.Context(), monument)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Monument not found")
			return
		}
		log.Error().Err(err).Int("monument_id", id).Msg("monuments: update failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *MonumentHandler) DeleteMonument(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "monumentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.monumentService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Monument not found")
			return
		}
		log.Error().Err(err).Int("monument_id", id).Msg("monuments: delete failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMessage(w, http.StatusOK, "Monument deleted successfully")
}

// MonumentUpsertRequest is the create/update payload. The client sends
// camelCase image fields; responses mirror the column names.
type MonumentUpsertRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	PanoURL     string   `json:"panoUrl"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Category    string   `json:"category"`
	State       string   `json:"state"`
	Gallery     []string `json:"gallery"`
}

func (req MonumentUpsertRequest) toMonument() types.Monument {
	return types.Monument{
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		ImageURL:     req.ImageURL,
		PanoImageURL: req.PanoURL,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Category:     req.Category,
		State:        req.State,
		Gallery:      req.Gallery,
	}
}

func decodeMonumentRequest(r *http.Request) (MonumentUpsertRequest, error) {
	var req MonumentUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return MonumentUpsertRequest{}, err
	}
	return req, nil
}
