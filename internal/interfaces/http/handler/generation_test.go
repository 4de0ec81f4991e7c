package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"loreforge-ai-api/internal/application/generation"
	"loreforge-ai-api/internal/application/generation/template"
	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/domain/repository"
)

type stubProvider struct{ content string }

func (s *stubProvider) Chat(ctx context.Context, messages []generation.ChatMessage, params generation.Parameters) (*generation.ChatResult, error) {
	return &generation.ChatResult{
		Content:          s.content,
		PromptTokens:     10,
		CompletionTokens: 5,
		Provider:         "stub",
		Model:            "stub-1",
	}, nil
}

type emptyWorldReader struct{}

func (emptyWorldReader) FetchWorld(ctx context.Context, worldID string) (*entity.World, error) {
	return nil, nil
}

func (emptyWorldReader) FetchWorldSetting(ctx context.Context, projectID string) (*entity.WorldSetting, error) {
	return nil, nil
}

func (emptyWorldReader) FetchRelated(ctx context.Context, entityType entity.EntityType, worldID string, limit int) ([]repository.RelatedEntitySummary, error) {
	return nil, nil
}

type stubEntityWriter struct{}

func (stubEntityWriter) CreateCharacter(ctx context.Context, row *entity.Character) error {
	row.ID = "char-1"
	return nil
}
func (stubEntityWriter) CreateLocation(ctx context.Context, row *entity.Location) error  { return nil }
func (stubEntityWriter) CreateItem(ctx context.Context, row *entity.Item) error          { return nil }
func (stubEntityWriter) CreateFaction(ctx context.Context, row *entity.Faction) error    { return nil }
func (stubEntityWriter) CreateEnergySystem(ctx context.Context, row *entity.EnergySystem) error {
	return nil
}
func (stubEntityWriter) CreateCivilization(ctx context.Context, row *entity.Civilization) error {
	return nil
}
func (stubEntityWriter) CreateHistoricalEvent(ctx context.Context, row *entity.HistoricalEvent) error {
	return nil
}
func (stubEntityWriter) CreateRegion(ctx context.Context, row *entity.Region) error       { return nil }
func (stubEntityWriter) CreateDimension(ctx context.Context, row *entity.Dimension) error { return nil }

func newTestRouter(content string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	generator := generation.NewGenerator(
		template.NewStore(),
		generation.NewAssembler(emptyWorldReader{}, 0, 0),
		&stubProvider{content: content},
		nil,
		1,
	)
	saver := generation.NewSaver(stubEntityWriter{}, nil)
	h := NewGenerationHandler(generator, saver)

	r := gin.New()
	v1 := r.Group("/v1/generation")
	v1.GET("/strategies", h.ListStrategies)
	v1.GET("/types", h.ListTypes)
	v1.GET("/:entity_type/fields", h.GetFields)
	v1.POST("/batch", h.GenerateBatch)
	v1.POST("/save", h.Save)
	v1.POST("/:entity_type", h.Generate)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint_Success(t *testing.T) {
	r := newTestRouter(`{"name": "夜刃", "description": "影之刺客"}`)
	w := doRequest(t, r, http.MethodPost, "/v1/generation/character", `{"prompt": "一个刺客"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Code int                `json:"code"`
		Data *generation.Result `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Data == nil || !resp.Data.Success {
		t.Fatalf("expected successful generation, got %+v", resp.Data)
	}
	if resp.Data.Data["name"] != "夜刃" {
		t.Errorf("expected generated name 夜刃, got %s", resp.Data.Data["name"])
	}
}

func TestGenerateEndpoint_UnsupportedType(t *testing.T) {
	r := newTestRouter(`{}`)
	w := doRequest(t, r, http.MethodPost, "/v1/generation/starship", `{"prompt": "p"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGenerateEndpoint_MissingPrompt(t *testing.T) {
	r := newTestRouter(`{}`)
	w := doRequest(t, r, http.MethodPost, "/v1/generation/character", `{"style": "x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing prompt, got %d", w.Code)
	}
}

func TestBatchEndpoint_Success(t *testing.T) {
	r := newTestRouter(`{"name": "n", "location_type": "城市"}`)
	body := `{"items": [
		{"entity_type": "location", "prompt": "一座城"},
		{"entity_type": "location", "prompt": "另一座城"}
	]}`
	w := doRequest(t, r, http.MethodPost, "/v1/generation/batch", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []*generation.Result `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Data))
	}
}

func TestBatchEndpoint_EmptyItemsRejected(t *testing.T) {
	r := newTestRouter(`{}`)
	w := doRequest(t, r, http.MethodPost, "/v1/generation/batch", `{"items": []}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %d", w.Code)
	}
}

func TestSaveEndpoint_Success(t *testing.T) {
	r := newTestRouter(`{}`)
	body := `{"entity_type": "character", "data": {"name": "艾文"}, "world_id": "w1"}`
	w := doRequest(t, r, http.MethodPost, "/v1/generation/save", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSaveEndpoint_RejectedWithoutName(t *testing.T) {
	r := newTestRouter(`{}`)
	body := `{"entity_type": "character", "data": {"description": "无名"}}`
	w := doRequest(t, r, http.MethodPost, "/v1/generation/save", body)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFieldsEndpoint(t *testing.T) {
	r := newTestRouter(`{}`)
	w := doRequest(t, r, http.MethodGet, "/v1/generation/location/fields?strategy=simple", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			Strategy       string   `json:"strategy"`
			Fields         []string `json:"fields"`
			RequiredFields []string `json:"required_fields"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Data.Strategy != "simple" {
		t.Errorf("expected simple strategy, got %s", resp.Data.Strategy)
	}
	if len(resp.Data.Fields) != 3 {
		t.Errorf("expected 3 simple fields for location, got %v", resp.Data.Fields)
	}
	if len(resp.Data.RequiredFields) != 2 {
		t.Errorf("expected 2 required fields, got %v", resp.Data.RequiredFields)
	}
}

func TestStrategiesEndpoint(t *testing.T) {
	r := newTestRouter(`{}`)
	w := doRequest(t, r, http.MethodGet, "/v1/generation/strategies", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data struct {
			Default    string `json:"default"`
			Strategies []struct {
				Name string `json:"name"`
			} `json:"strategies"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Data.Default != "detailed" {
		t.Errorf("expected default detailed, got %s", resp.Data.Default)
	}
	if len(resp.Data.Strategies) != 5 {
		t.Errorf("expected 5 strategies, got %d", len(resp.Data.Strategies))
	}
}

func TestTypesEndpoint(t *testing.T) {
	r := newTestRouter(`{}`)
	w := doRequest(t, r, http.MethodGet, "/v1/generation/types", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data struct {
			Types []struct {
				EntityType string `json:"entity_type"`
			} `json:"types"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp.Data.Types) != 9 {
		t.Errorf("expected 9 entity types, got %d", len(resp.Data.Types))
	}
}
