package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/heritagehub/apiserver/internal/services"
	"github.com/heritagehub/apiserver/types"
	"github.com/rs/zerolog/log"
)

// TimelineHandler provides HTTP handlers for monument timelines.
type TimelineHandler struct {
	timelineService *services.TimelineService
}

func NewTimelineHandler(timelineService *services.TimelineService) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}

// TimelineRouter registers timeline routes nested under a monument.
func TimelineRouter(
	r chi.Router,
	timelineService *services.TimelineService,
	authMiddleware func(http.Handler) http.Handler,
	authorizer *Authorizer,
) {
	handler := NewTimelineHandler(timelineService)

	r.Get("/", handler.ListEvents)
	r.With(authMiddleware, authorizer.RequireStaff).Post("/", handler.CreateEvent)
}

func (h *TimelineHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	monumentID, err := parseIDParam(r, "monumentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.timelineService.ListByMonument(r.Context(), monumentID)
	if err != nil {
		log.Error().Err(err).Int("monument_id", monumentID).Msg("timeline: list failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *TimelineHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	monumentID, err := parseIDParam(r, "monumentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req TimelineEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.EventYear == 0 || strings.TrimSpace(req.EventTitle) == "" {
		writeError(w, http.StatusBadRequest, "Event year and title are required.")
		return
	}

	event, err := h.timelineService.Create(r.Context(), types.TimelineEvent{
		MonumentID:       monumentID,
		EventYear:        req.EventYear,
		EventTitle:       req.EventTitle,
		EventDescription: req.EventDescription,
	})
	if err != nil {
		log.Error().Err(err).Int("monument_id", monumentID).Msg("timeline: create failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

type TimelineEventRequest struct {
	EventYear        int    `json:"event_year"`
	EventTitle       string `json:"event_title"`
	EventDescription string `json:"event_description"`
}
