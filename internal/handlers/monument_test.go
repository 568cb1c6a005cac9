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

func newMonumentRouter(userRepo *stubUserRepo, monumentRepo *stubMonumentRepo) *chi.Mux {
	userService := services.NewUserService(userRepo)
	authorizer := handlers.NewAuthorizer(userService)
	auth := handlers.RequireAuth(testSecret)
	tourHandler := handlers.NewTourHandler(services.NewTourService(newStubTourRepo()), testMetrics)

	router := chi.NewRouter()
	router.Route("/monuments", func(r chi.Router) {
		handlers.MonumentRouter(
			r,
			services.NewMonumentService(monumentRepo),
			services.NewReviewService(&stubReviewRepo{}),
			services.NewTimelineService(&stubTimelineRepo{}),
			tourHandler,
			auth,
			authorizer,
		)
	})
	return router
}

func creatorSeed() []types.User {
	return []types.User{
		{ID: 1, Username: "curator", Email: "curator@example.com", Role: types.RoleContentCreator},
		{ID: 2, Username: "asha", Email: "asha@example.com", Role: types.RoleUser},
	}
}

func TestCreateMonument(t *testing.T) {
	monumentRepo := newStubMonumentRepo()
	router := newMonumentRouter(newStubUserRepo(creatorSeed()...), monumentRepo)
	token := signTestToken(t, 1, types.RoleContentCreator)

	rec := authedPostJSON(t, router, "/monuments", token, handlers.MonumentUpsertRequest{
		Name:        "Sanchi Stupa",
		Description: "Buddhist complex from the 3rd century BCE.",
		Gallery:     []string{"https://img.example.com/a.jpg"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var monument types.Monument
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&monument))
	assert.NotZero(t, monument.ID)
	assert.Equal(t, types.DefaultMonumentCategory, monument.Category)
	assert.Equal(t, types.DefaultMonumentState, monument.State)
}

func TestCreateMonumentMissingFields(t *testing.T) {
	router := newMonumentRouter(newStubUserRepo(creatorSeed()...), newStubMonumentRepo())
	token := signTestToken(t, 1, types.RoleContentCreator)

	rec := authedPostJSON(t, router, "/monuments", token, handlers.MonumentUpsertRequest{
		Name: "Sanchi Stupa",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name and description are required.", decodeMessage(t, rec))
}

func TestCreateMonumentRequiresStaff(t *testing.T) {
	router := newMonumentRouter(newStubUserRepo(creatorSeed()...), newStubMonumentRepo())
	token := signTestToken(t, 2, types.RoleUser)

	rec := authedPostJSON(t, router, "/monuments", token, handlers.MonumentUpsertRequest{
		Name:        "Sanchi Stupa",
		Description: "Buddhist complex.",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetMonument(t *testing.T) {
	monumentRepo := newStubMonumentRepo(types.Monument{
		ID:   4,
		Name: "Hampi",
	})
	router := newMonumentRouter(newStubUserRepo(), monumentRepo)

	req := httptest.NewRequest(http.MethodGet, "/monuments/4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var monument types.Monument
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&monument))
	assert.Equal(t, "Hampi", monument.Name)
}

func TestGetMonumentEmptyGallery(t *testing.T) {
	monumentRepo := newStubMonumentRepo(types.Monument{
		ID:   4,
		Name: "Hampi",
	})
	router := newMonumentRouter(newStubUserRepo(), monumentRepo)

	req := httptest.NewRequest(http.MethodGet, "/monuments/4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// A monument without extra images serializes gallery as [], not
	// null, and never drops the field.
	assert.Contains(t, rec.Body.String(), `"gallery":[]`)
}

func TestGetMonumentNotFound(t *testing.T) {
	router := newMonumentRouter(newStubUserRepo(), newStubMonumentRepo())

	req := httptest.NewRequest(http.MethodGet, "/monuments/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Monument not found", decodeMessage(t, rec))
}

func TestDeleteMonument(t *testing.T) {
	userRepo := newStubUserRepo(types.User{
		ID: 1, Username: "root", Email: "root@example.com", Role: types.RoleAdmin,
	})
	monumentRepo := newStubMonumentRepo(types.Monument{ID: 4, Name: "Hampi"})
	router := newMonumentRouter(userRepo, monumentRepo)
	token := signTestToken(t, 1, types.RoleAdmin)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/monuments/4", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Monument deleted successfully", decodeMessage(t, rec))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/monuments/4", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
