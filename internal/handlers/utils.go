package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type contextKey string

const contextSessionKey contextKey = "session"

// Session is the authenticated caller, derived from the bearer token.
// It is the single source of truth for identity inside a request;
// handlers never trust ids or roles supplied in the body for
// authorization decisions.
type Session struct {
	UserID int
	Role   string
}

func sessionFromContext(ctx context.Context) (Session, error) {
	session, ok := ctx.Value(contextSessionKey).(Session)
	if !ok || session.UserID < 1 {
		return Session{}, errors.New("missing session")
	}
	return session, nil
}

func withSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, contextSessionKey, session)
}

func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

// ErrorResponse is the error payload: {"message": "..."}.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is a success payload carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
