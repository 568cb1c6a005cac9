package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/heritagehub/apiserver/internal/storage"
	"github.com/rs/zerolog/log"
)

const (
	maxUploadMemory = 8 << 20
	maxImageBytes   = 16 << 20
	formFieldImage  = "image"
)

// UploadHandler stores gallery/cover images in object storage and hands
// back a URL usable in monument image fields.
type UploadHandler struct {
	storage       *storage.Storage
	publicBaseURL string
}

func NewUploadHandler(store *storage.Storage, publicBaseURL string) *UploadHandler {
	return &UploadHandler{
		storage:       store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// UploadRouter registers the /uploads routes.
func UploadRouter(
	r chi.Router,
	store *storage.Storage,
	publicBaseURL string,
	authMiddleware func(http.Handler) http.Handler,
	authorizer *Authorizer,
) {
	handler := NewUploadHandler(store, publicBaseURL)

	r.With(authMiddleware, authorizer.RequireStaff).Post("/", handler.UploadImage)
}

func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := r.MultipartForm.File[formFieldImage]
	if len(files) != 1 {
		writeError(w, http.StatusBadRequest, "exactly one image file is required")
		return
	}

	fileHeader := files[0]
	file, err := fileHeader.Open()
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image file")
		return
	}
	data, err := readFileLimited(file, maxImageBytes)
	_ = file.Close()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := fmt.Sprintf("uploads/%d_%s", time.Now().UnixNano(), path.Base(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	if err := h.storage.Put(r.Context(), key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		log.Error().Err(err).Str("key", key).Msg("uploads: store failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, UploadResponse{URL: h.publicBaseURL + "/" + key})
}

type UploadResponse struct {
	URL string `json:"url"`
}

func readFileLimited(reader io.Reader, limit int64) ([]byte, error) {
	limited := io.LimitReader(reader, limit+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, errors.New("failed to read upload")
	}
	if int64(len(data)) > limit {
		return nil, errors.New("uploaded file too large")
	}
	return data, nil
}
