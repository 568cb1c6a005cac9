package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/heritagehub/apiserver/internal/metrics"
	"github.com/heritagehub/apiserver/internal/services"
	"github.com/heritagehub/apiserver/internal/store"
	"github.com/heritagehub/apiserver/types"
	"github.com/rs/zerolog/log"
)

// TourHandler provides HTTP handlers for tour scheduling and booking.
type TourHandler struct {
	tourService *services.TourService
	metrics     *metrics.Metrics
}

func NewTourHandler(tourService *services.TourService, m *metrics.Metrics) *TourHandler {
	return &TourHandler{tourService: tourService, metrics: m}
}

// TourRouter registers the /tours routes.
func TourRouter(
	r chi.Router,
	tourService *services.TourService,
	m *metrics.Metrics,
	authMiddleware func(http.Handler) http.Handler,
	authorizer *Authorizer,
) {
	handler := NewTourHandler(tourService, m)

	r.With(authMiddleware, authorizer.RequireGuide).Post("/", handler.CreateTour)
	r.Route("/{tourID}", func(r chi.Router) {
		r.With(authMiddleware).Post("/book", handler.BookTour)
		r.With(authMiddleware).Get("/attendees", handler.ListAttendees)
	})
}

// ListMonumentTours handles GET /monuments/{monumentID}/tours.
func (h *TourHandler) ListMonumentTours(w http.ResponseWriter, r *http.Request) {
	monumentID, err := parseIDParam(r, "monumentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tours, err := h.tourService.ListByMonument(r.Context(), monumentID)
	if err != nil {
		log.Error().Err(err).Int("monument_id", monumentID).Msg("tours: list failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, tours)
}

func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req TourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if strings.TrimSpace(req.TourDate) == "" || strings.TrimSpace(req.TourTime) == "" ||
		strings.TrimSpace(req.MeetingLink) == "" {
		writeError(w, http.StatusBadRequest, "Date, time, and link are required.")
		return
	}

	tour, err := h.tourService.Create(r.Context(), types.Tour{
		MonumentID:  req.MonumentID,
		GuideID:     req.GuideID,
		TourDate:    req.TourDate,
		TourTime:    req.TourTime,
		MeetingLink: req.MeetingLink,
	})
	if err != nil {
		log.Error().Err(err).Msg("tours: create failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, tour)
}

// BookTour books a ticket for the authenticated flow. There is no
// pre-check: the store's unique constraint decides, so two concurrent
// requests for the same pair cannot both succeed.
func (h *TourHandler) BookTour(w http.ResponseWriter, r *http.Request) {
	tourID, err := parseIDParam(r, "tourID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "User ID is required.")
		return
	}

	if _, err := h.tourService.Book(r.Context(), tourID, req.UserID); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			h.metrics.BookingConflicts.Inc()
			writeError(w, http.StatusBadRequest, "You already booked this tour.")
			return
		}
		log.Error().Err(err).Int("tour_id", tourID).Msg("tours: booking failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.metrics.Bookings.Inc()
	writeMessage(w, http.StatusOK, "Ticket booked successfully!")
}

func (h *TourHandler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	tourID, err := parseIDParam(r, "tourID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	attendees, err := h.tourService.ListAttendees(r.Context(), tourID)
	if err != nil {
		log.Error().Err(err).Int("tour_id", tourID).Msg("tours: attendees failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, attendees)
}

// ListUserBookings handles GET /users/{userID}/bookings.
func (h *TourHandler) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := h.tourService.ListUserBookings(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("tours: bookings failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

type TourRequest struct {
	MonumentID  int    `json:"monument_id"`
	GuideID     int    `json:"guide_id"`
	TourDate    string `json:"tour_date"`
	TourTime    string `json:"tour_time"`
	MeetingLink string `json:"meeting_link"`
}

type BookingRequest struct {
	UserID int `json:"user_id"`
}
