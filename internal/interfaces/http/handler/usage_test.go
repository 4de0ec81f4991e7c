package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"loreforge-ai-api/internal/application/usage"
	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/interfaces/http/dto"
)

type fakeUsageRepo struct {
	total       int64
	err         error
	lastWorldID string
	lastStart   time.Time
	lastEnd     time.Time
}

func (f *fakeUsageRepo) Create(ctx context.Context, evt *entity.LLMUsageEvent) error {
	return nil
}

func (f *fakeUsageRepo) GetTokenUsage(ctx context.Context, worldID string, start, end time.Time) (int64, error) {
	f.lastWorldID = worldID
	f.lastStart = start
	f.lastEnd = end
	return f.total, f.err
}

func newUsageTestRouter(repo *fakeUsageRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewUsageHandler(usage.NewRecorder(repo), nil)

	r := gin.New()
	r.GET("/v1/generation/usage", h.GetTokenUsage)
	return r
}

func TestUsageEndpoint_Success(t *testing.T) {
	repo := &fakeUsageRepo{total: 12345}
	r := newUsageTestRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/v1/generation/usage?world_id=w1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data dto.TokenUsageResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Data.TotalTokens != 12345 {
		t.Errorf("expected 12345 tokens, got %d", resp.Data.TotalTokens)
	}
	if resp.Data.WorldID != "w1" {
		t.Errorf("expected world w1, got %s", resp.Data.WorldID)
	}
	if resp.Data.Days != 7 {
		t.Errorf("expected default 7 day window, got %d", resp.Data.Days)
	}
	if repo.lastWorldID != "w1" {
		t.Errorf("repository queried with world %s", repo.lastWorldID)
	}

	window := repo.lastEnd.Sub(repo.lastStart)
	if window < 6*24*time.Hour || window > 8*24*time.Hour {
		t.Errorf("expected a 7 day window, got %v", window)
	}
}

func TestUsageEndpoint_CustomDays(t *testing.T) {
	repo := &fakeUsageRepo{total: 1}
	r := newUsageTestRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/v1/generation/usage?world_id=w1&days=30", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data dto.TokenUsageResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Data.Days != 30 {
		t.Errorf("expected 30 day window, got %d", resp.Data.Days)
	}
}

func TestUsageEndpoint_MissingWorldID(t *testing.T) {
	r := newUsageTestRouter(&fakeUsageRepo{})
	w := doRequest(t, r, http.MethodGet, "/v1/generation/usage", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without world_id, got %d", w.Code)
	}
}

func TestUsageEndpoint_InvalidDays(t *testing.T) {
	r := newUsageTestRouter(&fakeUsageRepo{})
	for _, days := range []string{"0", "-1", "91", "abc"} {
		w := doRequest(t, r, http.MethodGet, "/v1/generation/usage?world_id=w1&days="+days, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("days=%s: expected 400, got %d", days, w.Code)
		}
	}
}

func TestUsageEndpoint_RepositoryError(t *testing.T) {
	repo := &fakeUsageRepo{err: fmt.Errorf("connection refused")}
	r := newUsageTestRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/v1/generation/usage?world_id=w1", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on repository failure, got %d", w.Code)
	}
}
