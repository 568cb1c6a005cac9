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

func newTimelineRouter(userRepo *stubUserRepo, timelineRepo *stubTimelineRepo) *chi.Mux {
	userService := services.NewUserService(userRepo)
	authorizer := handlers.NewAuthorizer(userService)

	router := chi.NewRouter()
	router.Route("/monuments/{monumentID}/timeline", func(r chi.Router) {
		handlers.TimelineRouter(r, services.NewTimelineService(timelineRepo), handlers.RequireAuth(testSecret), authorizer)
	})
	return router
}

func TestCreateTimelineEvent(t *testing.T) {
	timelineRepo := &stubTimelineRepo{}
	router := newTimelineRouter(newStubUserRepo(creatorSeed()...), timelineRepo)
	token := signTestToken(t, 1, types.RoleContentCreator)

	rec := authedPostJSON(t, router, "/monuments/3/timeline", token, handlers.TimelineEventRequest{
		EventYear:        1632,
		EventTitle:       "Construction begins",
		EventDescription: "Commissioned by Shah Jahan.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var event types.TimelineEvent
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&event))
	assert.Equal(t, 3, event.MonumentID)
	assert.Equal(t, 1632, event.EventYear)
}

func TestCreateTimelineEventMissingFields(t *testing.T) {
	router := newTimelineRouter(newStubUserRepo(creatorSeed()...), &stubTimelineRepo{})
	token := signTestToken(t, 1, types.RoleContentCreator)

	rec := authedPostJSON(t, router, "/monuments/3/timeline", token, handlers.TimelineEventRequest{
		EventTitle: "Undated event",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Event year and title are required.", decodeMessage(t, rec))
}

func TestListTimelineEvents(t *testing.T) {
	timelineRepo := &stubTimelineRepo{events: []types.TimelineEvent{
		{ID: 1, MonumentID: 3, EventYear: 1632, EventTitle: "Construction begins"},
		{ID: 2, MonumentID: 9, EventYear: 1911, EventTitle: "Restoration"},
	}}
	router := newTimelineRouter(newStubUserRepo(), timelineRepo)

	req := httptest.NewRequest(http.MethodGet, "/monuments/3/timeline", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []types.TimelineEvent
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&events))
	require.Len(t, events, 1)
	assert.Equal(t, "Construction begins", events[0].EventTitle)
}
