package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sumcoach/session"
	"sumcoach/types"

	"github.com/gin-gonic/gin"
)

// instantProvider resolves immediately so handler tests only wait for the
// engine's async application, not a network call.
type instantProvider struct{}

func (instantProvider) FetchArticle(ctx context.Context) (*types.Article, error) {
	return &types.Article{
		Title:   "테스트 기사",
		Content: "정부가 오늘 새로운 정책을 발표했다.",
		URL:     "https://example.com/1",
		Source:  "테스트",
	}, nil
}

type instantEvaluator struct{}

func (instantEvaluator) Evaluate(ctx context.Context, article *types.Article, oneSentence, threeLines string) (*types.EvaluationResult, error) {
	return &types.EvaluationResult{
		OneSentence:  types.SummaryFeedback{Score: 82, Comments: "좋아요", SuggestedSummary: "모범 답안"},
		ThreeLines:   types.SummaryFeedback{Score: 75, Comments: "무난해요", SuggestedSummary: "모범 답안"},
		EstimatedAge: 34,
		AgeComment:   "안정적입니다",
	}, nil
}

func newTestRouter() (*gin.Engine, *session.Engine) {
	gin.SetMode(gin.TestMode)
	engine := session.NewEngine(instantProvider{}, instantEvaluator{}, session.Config{})
	return NewRouter(engine), engine
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) types.Snapshot {
	t.Helper()
	var snap types.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("Failed to decode snapshot: %v (body %s)", err, w.Body.String())
	}
	return snap
}

// waitForStep polls the snapshot endpoint until the engine reaches the step
func waitForStep(t *testing.T, router *gin.Engine, step types.Step) types.Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w := perform(router, http.MethodGet, "/api/session", "")
		if w.Code != http.StatusOK {
			t.Fatalf("GET /api/session returned %d", w.Code)
		}
		snap := decodeSnapshot(t, w)
		if snap.Step == step {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for step %s", step)
	return types.Snapshot{}
}

func TestHealthEndpoint(t *testing.T) {
	router, engine := newTestRouter()
	defer engine.Close()

	w := perform(router, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestGetSnapshotBeforeStart(t *testing.T) {
	router, engine := newTestRouter()
	defer engine.Close()

	w := perform(router, http.MethodGet, "/api/session", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	snap := decodeSnapshot(t, w)
	if snap.Step != types.StepIntro {
		t.Errorf("Expected intro step, got %s", snap.Step)
	}
}

func TestFullFlowOverHTTP(t *testing.T) {
	router, engine := newTestRouter()
	defer engine.Close()

	w := perform(router, http.MethodPost, "/api/session/start", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected 202 from start, got %d", w.Code)
	}
	waitForStep(t, router, types.StepReading)

	w = perform(router, http.MethodPost, "/api/session/advance/summary-one", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from advance, got %d: %s", w.Code, w.Body.String())
	}

	w = perform(router, http.MethodPost, "/api/session/one-sentence", `{"text": "정부가 새로운 정책을 발표했다."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from edit, got %d", w.Code)
	}
	if snap := decodeSnapshot(t, w); !snap.OneSentenceValid {
		t.Error("Expected one-sentence draft to be valid")
	}

	w = perform(router, http.MethodPost, "/api/session/advance/summary-three", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from gated advance, got %d: %s", w.Code, w.Body.String())
	}

	w = perform(router, http.MethodPost, "/api/session/three-lines", `{"text": "정부가 새 정책을 발표했다.\n예산이 늘어난다.\n시행은 내년부터다."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from edit, got %d", w.Code)
	}

	w = perform(router, http.MethodPost, "/api/session/submit", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected 202 from submit, got %d: %s", w.Code, w.Body.String())
	}

	snap := waitForStep(t, router, types.StepFeedback)
	if snap.Result == nil || snap.Result.OneSentence.Score != 82 || snap.Result.EstimatedAge != 34 {
		t.Errorf("Unexpected evaluation result: %+v", snap.Result)
	}
	if snap.Loading || snap.Error != "" {
		t.Errorf("Expected clean feedback snapshot, got loading=%v error=%q", snap.Loading, snap.Error)
	}
}

func TestWrongStepIsConflict(t *testing.T) {
	router, engine := newTestRouter()
	defer engine.Close()

	w := perform(router, http.MethodPost, "/api/session/advance/summary-one", "")
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for wrong-step intent, got %d", w.Code)
	}

	w = perform(router, http.MethodPost, "/api/session/back", "")
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for go-back from intro, got %d", w.Code)
	}

	w = perform(router, http.MethodPost, "/api/session/retry", "")
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for retry without error, got %d", w.Code)
	}
}

func TestFailedGateIsUnprocessable(t *testing.T) {
	router, engine := newTestRouter()
	defer engine.Close()

	perform(router, http.MethodPost, "/api/session/start", "")
	waitForStep(t, router, types.StepReading)
	perform(router, http.MethodPost, "/api/session/advance/summary-one", "")
	perform(router, http.MethodPost, "/api/session/one-sentence", `{"text": "짧다"}`)

	w := perform(router, http.MethodPost, "/api/session/advance/summary-three", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for failed gate, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMalformedEditBody(t *testing.T) {
	router, engine := newTestRouter()
	defer engine.Close()

	w := perform(router, http.MethodPost, "/api/session/one-sentence", `{"text": `)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", w.Code)
	}
}
