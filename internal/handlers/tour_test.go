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

func newTourRouter(userRepo *stubUserRepo, tourRepo *stubTourRepo) *chi.Mux {
	userService := services.NewUserService(userRepo)
	authorizer := handlers.NewAuthorizer(userService)
	auth := handlers.RequireAuth(testSecret)

	router := chi.NewRouter()
	router.Route("/tours", func(r chi.Router) {
		handlers.TourRouter(r, services.NewTourService(tourRepo), testMetrics, auth, authorizer)
	})
	return router
}

func authedPostJSON(t *testing.T, router http.Handler, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateTour(t *testing.T) {
	userRepo := newStubUserRepo(types.User{
		ID: 2, Username: "guide", Email: "guide@example.com", Role: types.RoleTourGuide,
	})
	tourRepo := newStubTourRepo()
	router := newTourRouter(userRepo, tourRepo)
	token := signTestToken(t, 2, types.RoleTourGuide)

	rec := authedPostJSON(t, router, "/tours", token, handlers.TourRequest{
		MonumentID:  1,
		GuideID:     2,
		TourDate:    "2026-10-05",
		TourTime:    "10:00",
		MeetingLink: "https://meet.example.com/tour",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var tour types.Tour
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tour))
	assert.NotZero(t, tour.ID)
	assert.Equal(t, "2026-10-05", tour.TourDate)
}

func TestCreateTourRequiresGuideRole(t *testing.T) {
	userRepo := newStubUserRepo(types.User{
		ID: 3, Username: "visitor", Email: "visitor@example.com", Role: types.RoleUser,
	})
	router := newTourRouter(userRepo, newStubTourRepo())

	// The stored role decides, even if the token claims otherwise.
	token := signTestToken(t, 3, types.RoleTourGuide)
	rec := authedPostJSON(t, router, "/tours", token, handlers.TourRequest{
		MonumentID:  1,
		GuideID:     3,
		TourDate:    "2026-10-05",
		TourTime:    "10:00",
		MeetingLink: "https://meet.example.com/tour",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateTourMissingFields(t *testing.T) {
	userRepo := newStubUserRepo(types.User{
		ID: 2, Username: "guide", Email: "guide@example.com", Role: types.RoleTourGuide,
	})
	router := newTourRouter(userRepo, newStubTourRepo())
	token := signTestToken(t, 2, types.RoleTourGuide)

	rec := authedPostJSON(t, router, "/tours", token, handlers.TourRequest{
		MonumentID: 1,
		GuideID:    2,
		TourDate:   "2026-10-05",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Date, time, and link are required.", decodeMessage(t, rec))
}

func TestBookTour(t *testing.T) {
	userRepo := newStubUserRepo(types.User{
		ID: 5, Username: "asha", Email: "asha@example.com", Role: types.RoleUser,
	})
	tourRepo := newStubTourRepo()
	router := newTourRouter(userRepo, tourRepo)
	token := signTestToken(t, 5, types.RoleUser)

	rec := authedPostJSON(t, router, "/tours/1/book", token, handlers.BookingRequest{UserID: 5})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ticket booked successfully!", decodeMessage(t, rec))

	rec = authedPostJSON(t, router, "/tours/1/book", token, handlers.BookingRequest{UserID: 5})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You already booked this tour.", decodeMessage(t, rec))

	// Another tour is still bookable.
	rec = authedPostJSON(t, router, "/tours/2/book", token, handlers.BookingRequest{UserID: 5})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBookTourRequiresAuth(t *testing.T) {
	router := newTourRouter(newStubUserRepo(), newStubTourRepo())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tours/1/book", jsonBody(t, handlers.BookingRequest{UserID: 5}))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListAttendees(t *testing.T) {
	userRepo := newStubUserRepo(types.User{
		ID: 5, Username: "asha", Email: "asha@example.com", Role: types.RoleUser,
	})
	tourRepo := newStubTourRepo()
	router := newTourRouter(userRepo, tourRepo)
	token := signTestToken(t, 5, types.RoleUser)

	rec := authedPostJSON(t, router, "/tours/9/book", token, handlers.BookingRequest{UserID: 5})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/tours/9/attendees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var attendees []types.Attendee
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&attendees))
	assert.Len(t, attendees, 1)
}
