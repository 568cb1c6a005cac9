package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/heritagehub/apiserver/internal/handlers"
	"github.com/heritagehub/apiserver/internal/services"
	"github.com/heritagehub/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewRouter(reviewRepo *stubReviewRepo) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/monuments/{monumentID}/reviews", func(r chi.Router) {
		handlers.ReviewRouter(r, services.NewReviewService(reviewRepo), handlers.RequireAuth(testSecret))
	})
	return router
}

func TestCreateReview(t *testing.T) {
	reviewRepo := &stubReviewRepo{}
	router := newReviewRouter(reviewRepo)
	token := signTestToken(t, 5, types.RoleUser)

	rec := authedPostJSON(t, router, "/monuments/3/reviews", token, handlers.ReviewRequest{
		Rating:  4,
		Comment: "Worth the climb.",
		UserID:  5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var review types.Review
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&review))
	assert.Equal(t, 3, review.MonumentID)
	assert.Equal(t, 4, review.Rating)
	assert.NotZero(t, review.ID)
}

func TestCreateReviewMissingFields(t *testing.T) {
	router := newReviewRouter(&stubReviewRepo{})
	token := signTestToken(t, 5, types.RoleUser)

	rec := authedPostJSON(t, router, "/monuments/3/reviews", token, handlers.ReviewRequest{
		Comment: "no rating",
		UserID:  5,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Rating and User ID are required.", decodeMessage(t, rec))
}

func TestCreateReviewRatingBounds(t *testing.T) {
	router := newReviewRouter(&stubReviewRepo{})
	token := signTestToken(t, 5, types.RoleUser)

	for _, rating := range []int{-1, 6} {
		rec := authedPostJSON(t, router, "/monuments/3/reviews", token, handlers.ReviewRequest{
			Rating: rating,
			UserID: 5,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Rating must be between 1 and 5.", decodeMessage(t, rec))
	}
}

func TestListReviews(t *testing.T) {
	reviewRepo := &stubReviewRepo{reviews: []types.Review{
		{ID: 1, MonumentID: 3, UserID: 5, Rating: 5, Username: "asha"},
		{ID: 2, MonumentID: 9, UserID: 5, Rating: 2},
	}}
	router := newReviewRouter(reviewRepo)

	req := httptest.NewRequest(http.MethodGet, "/monuments/3/reviews", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var reviews []types.Review
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "asha", reviews[0].Username)
}
