package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heritagehub/apiserver/internal/services"
	"github.com/heritagehub/apiserver/types"
	"github.com/rs/zerolog/log"
)

// ReviewHandler provides HTTP handlers for monument reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewRouter registers review routes nested under a monument.
func ReviewRouter(
	r chi.Router,
	reviewService *services.ReviewService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewReviewHandler(reviewService)

	r.Get("/", handler.ListReviews)
	r.With(authMiddleware).Post("/", handler.CreateReview)
}

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	monumentID, err := parseIDParam(r, "monumentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := h.reviewService.ListByMonument(r.Context(), monumentID)
	if err != nil {
		log.Error().Err(err).Int("monument_id", monumentID).Msg("reviews: list failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	monumentID, err := parseIDParam(r, "monumentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Rating == 0 || req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "Rating and User ID are required.")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5.")
		return
	}

	review, err := h.reviewService.Create(r.Context(), types.Review{
		MonumentID: monumentID,
		UserID:     req.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		log.Error().Err(err).Int("monument_id", monumentID).Msg("reviews: create failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	UserID  int    `json:"user_id"`
}
