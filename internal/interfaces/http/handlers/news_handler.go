package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/internal/domain/repositories"
	"interact-club.backend/internal/interfaces/http/response"
	"interact-club.backend/pkg/richtext"
)

type NewsHandler struct {
	repo repositories.NewsRepository
}

func NewNewsHandler(repo repositories.NewsRepository) *NewsHandler {
	return &NewsHandler{repo: repo}
}

func withHTML(a *entities.NewsArticle) *entities.NewsArticle {
	a.ContentHTML = richtext.Render(a.Content)
	return a
}

// ListNews returns articles newest first with rendered content.
// GET /api/news
func (h *NewsHandler) ListNews(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	for _, a := range items {
		withHTML(a)
	}
	response.Success(c, http.StatusOK, items)
}

// POST /api/news
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var input entities.CreateNewsInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	article := &entities.NewsArticle{
		Title:   input.Title,
		Date:    input.Date,
		Excerpt: input.Excerpt,
		Content: input.Content,
		Image:   input.Image,
	}
	if err := h.repo.Create(c.Request.Context(), article); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, withHTML(article))
}

// PUT /api/news/:id
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := pathID(c, "news article")
	if !ok {
		return
	}
	var input entities.UpdateNewsInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	ctx := c.Request.Context()
	article, err := h.repo.GetByID(ctx, id)
	if err != nil {
		response.Error(c, notFoundAs(err, "News article not found"))
		return
	}
	input.Apply(article)
	if err := h.repo.Update(ctx, article); err != nil {
		response.Error(c, notFoundAs(err, "News article not found"))
		return
	}
	response.Success(c, http.StatusOK, withHTML(article))
}

// DELETE /api/news/:id
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, ok := pathID(c, "news article")
	if !ok {
		return
	}
	if err := h.repo.SoftDelete(c.Request.Context(), id); err != nil {
		response.Error(c, notFoundAs(err, "News article not found"))
		return
	}
	response.Message(c, http.StatusOK, "News article deleted successfully")
}
