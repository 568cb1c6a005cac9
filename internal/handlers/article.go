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

// ArticleHandler provides HTTP handlers for articles.
type ArticleHandler struct {
	articleService *services.ArticleService
}

func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ArticleRouter registers article routes on the given router.
func ArticleRouter(
	r chi.Router,
	articleService *services.ArticleService,
	authMiddleware func(http.Handler) http.Handler,
	authorizer *Authorizer,
) {
	handler := NewArticleHandler(articleService)

	r.Get("/", handler.ListArticles)
	r.With(authMiddleware, authorizer.RequireStaff).Post("/", handler.CreateArticle)
}

func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("articles: list failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" || req.AuthorID == 0 {
		writeError(w, http.StatusBadRequest, "Title, content, and author are required.")
		return
	}

	article, err := h.articleService.Create(r.Context(), types.Article{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		log.Error().Err(err).Msg("articles: create failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

type ArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
	AuthorID int    `json:"author_id"`
}
