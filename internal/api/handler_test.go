package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/models"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/recommend"
)

func newTestRouter(ranker Ranker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(ranker)
	r.POST("/api/recommend", handler.Recommend)
	r.GET("/health", handler.Health)
	return r
}

func postRecommend(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRecommend(t *testing.T) {
	mock := &mockRanker{results: []models.RankedResult{
		{Title: "Data Engineer", Company: "Acme", URL: "u1", Score: 0.951},
		{Title: "Analytics Engineer", Company: "Beta", URL: "u2", Score: 0.84},
	}}
	r := newTestRouter(mock)

	w := postRecommend(r, `{"query": "data engineer", "top_k": 2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response []models.RankedResult
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Errorf("Expected 2 results, got %d", len(response))
	}
	if response[0].Score != 0.951 {
		t.Errorf("Unexpected score %v", response[0].Score)
	}
	if mock.lastQuery != "data engineer" || mock.lastTopK != 2 {
		t.Errorf("Ranker received query=%q topK=%d", mock.lastQuery, mock.lastTopK)
	}
}

func TestRecommendMissingQuery(t *testing.T) {
	r := newTestRouter(&mockRanker{})

	for _, body := range []string{`{}`, `{"query": ""}`, `{"query": "   "}`, `not json`} {
		w := postRecommend(r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Body %q: expected status 400, got %d", body, w.Code)
		}
		var response map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Errorf("Body %q: error payload not JSON: %v", body, err)
			continue
		}
		if response["error"] == "" {
			t.Errorf("Body %q: expected an 'error' field", body)
		}
	}
}

func TestRecommendQueryEmbeddingFailure(t *testing.T) {
	mock := &mockRanker{err: fmt.Errorf("%w: rate limited", recommend.ErrQueryEmbedding)}
	r := newTestRouter(mock)

	w := postRecommend(r, `{"query": "data engineer"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Error payload not JSON: %v", err)
	}
	if response["error"] != "failed to embed query" {
		t.Errorf("Unexpected error message %q", response["error"])
	}
}

func TestRecommendInternalFailure(t *testing.T) {
	mock := &mockRanker{err: errors.New("loading today's snapshot: file does not exist")}
	r := newTestRouter(mock)

	w := postRecommend(r, `{"query": "data engineer"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Error payload not JSON: %v", err)
	}
	if response["error"] == "" {
		t.Error("Expected an 'error' field")
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&mockRanker{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

type mockRanker struct {
	results   []models.RankedResult
	err       error
	lastQuery string
	lastTopK  int
}

func (m *mockRanker) Rank(ctx context.Context, query string, topK int) ([]models.RankedResult, error) {
	m.lastQuery = query
	m.lastTopK = topK
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}
