package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/models"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/recommend"
)

// Ranker answers a query against the current corpus.
type Ranker interface {
	Rank(ctx context.Context, query string, topK int) ([]models.RankedResult, error)
}

type Handler struct {
	recommender Ranker
}

func NewHandler(recommender Ranker) *Handler {
	return &Handler{recommender: recommender}
}

type recommendRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// Recommend handles POST /api/recommend. Every failure shape is a JSON
// object with an "error" field.
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'query' field"})
		return
	}

	results, err := h.recommender.Rank(c.Request.Context(), query, req.TopK)
	if err != nil {
		if errors.Is(err, recommend.ErrQueryEmbedding) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to embed query"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
