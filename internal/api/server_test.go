package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/formosa-labs/rapport/internal/quota"
	"github.com/formosa-labs/rapport/internal/rapport"
	"github.com/formosa-labs/rapport/internal/report"
)

type fakeReporter struct {
	reply string
	err   error
}

func (f *fakeReporter) Generate(_ context.Context, _ []rapport.Turn, _ rapport.Scenario, _ rapport.CustomerType, _ report.Persona, _ string) (string, error) {
	return f.reply, f.err
}

type fakeMinter struct {
	payload json.RawMessage
	err     error
}

func (f *fakeMinter) Mint(_ context.Context) (json.RawMessage, error) {
	return f.payload, f.err
}

func testQuota(t *testing.T) *quota.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return quota.NewStore(rdb, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Port == 0 {
		opts.Port = 8780
	}
	return NewServer(opts)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "GET", "/api/v1/rapport/status", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body struct {
		Service string `json:"service"`
		Rules   int    `json:"rules"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Service != "rapportd" {
		t.Errorf("expected service rapportd, got %q", body.Service)
	}
	if body.Rules != 40 {
		t.Errorf("expected 40 rules, got %d", body.Rules)
	}
}

func TestRulesEndpoint(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "GET", "/api/v1/rules", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "tele_skeptical_data_source") {
		t.Error("rule catalog missing expected rule id")
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "POST", "/api/v1/analyze", map[string]any{
		"scenario":      "phone_invite",
		"customer_type": "skeptical",
		"turns": []map[string]string{
			{"speaker": "customer", "text": "你是誰給你電話的？個資哪裡來的？"},
			{"speaker": "trainee", "text": "我理解您的疑慮，這是您之前填過的問卷資料。"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body analyzeResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.InitialScore != 40 || body.FinalScore != 32 {
		t.Errorf("scores = %d → %d, want 40 → 32", body.InitialScore, body.FinalScore)
	}
	if len(body.Trajectory) != 3 {
		t.Errorf("trajectory length = %d, want 3", len(body.Trajectory))
	}
	if len(body.Events) != 2 || len(body.CriticalMoments) != 1 {
		t.Errorf("events/critical = %d/%d, want 2/1", len(body.Events), len(body.CriticalMoments))
	}
	if body.Status.Level != rapport.BandWarning {
		t.Errorf("status level = %s, want warning", body.Status.Level)
	}
	if !strings.Contains(body.Summary, "客情管理分析") {
		t.Error("summary missing header")
	}
	if body.Report != "" {
		t.Error("report should be absent when not requested")
	}
}

func TestAnalyzeEndpoint_InvalidInput(t *testing.T) {
	srv := testServer(t, Options{})

	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown scenario", map[string]any{"scenario": "door_to_door", "customer_type": "neutral", "turns": []map[string]string{{"speaker": "customer", "text": "hi"}}}},
		{"unknown customer type", map[string]any{"scenario": "phone_invite", "customer_type": "angry", "turns": []map[string]string{{"speaker": "customer", "text": "hi"}}}},
		{"empty turns", map[string]any{"scenario": "phone_invite", "customer_type": "neutral", "turns": []map[string]string{}}},
		{"unknown speaker", map[string]any{"scenario": "phone_invite", "customer_type": "neutral", "turns": []map[string]string{{"speaker": "observer", "text": "我不需要"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, srv, "POST", "/api/v1/analyze", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestAnalyzeEndpoint_WithReport(t *testing.T) {
	srv := testServer(t, Options{Reporter: &fakeReporter{reply: "1. 教練回饋"}})

	w := doJSON(t, srv, "POST", "/api/v1/analyze", map[string]any{
		"scenario":        "product_marketing",
		"customer_type":   "neutral",
		"turns":           []map[string]string{{"speaker": "trainee", "text": "我理解您的想法"}},
		"generate_report": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body analyzeResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Report != "1. 教練回饋" {
		t.Errorf("report = %q", body.Report)
	}
}

func TestAnalyzeEndpoint_ReportUnconfigured(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "POST", "/api/v1/analyze", map[string]any{
		"scenario":        "product_marketing",
		"customer_type":   "neutral",
		"turns":           []map[string]string{{"speaker": "trainee", "text": "我理解您的想法"}},
		"generate_report": true,
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestAnalyzeEndpoint_ReportFailure(t *testing.T) {
	srv := testServer(t, Options{Reporter: &fakeReporter{err: errors.New("upstream down")}})

	w := doJSON(t, srv, "POST", "/api/v1/analyze", map[string]any{
		"scenario":        "product_marketing",
		"customer_type":   "neutral",
		"turns":           []map[string]string{{"speaker": "trainee", "text": "我理解您的想法"}},
		"generate_report": true,
	})
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}

func TestFeedbackEndpoint(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "POST", "/api/v1/feedback", map[string]any{
		"scenario":      "phone_invite",
		"customer_type": "skeptical",
		"speaker":       "customer",
		"text":          "你是誰給你電話的？個資哪裡來的？",
		"score":         40,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body feedbackResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Matched {
		t.Fatal("expected a match")
	}
	if body.Score != 28 || body.Change != -12 {
		t.Errorf("score/change = %d/%d, want 28/-12", body.Score, body.Change)
	}
	if body.RuleID != "tele_skeptical_data_source" {
		t.Errorf("rule id = %q", body.RuleID)
	}
	if body.Status.Level != rapport.BandDanger {
		t.Errorf("status level = %s, want danger", body.Status.Level)
	}
}

func TestFeedbackEndpoint_NoMatch(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "POST", "/api/v1/feedback", map[string]any{
		"scenario":      "phone_invite",
		"customer_type": "skeptical",
		"speaker":       "customer",
		"text":          "今天天氣還不錯",
		"score":         40,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body feedbackResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Matched {
		t.Error("expected no match")
	}
	if body.Score != 40 || body.Change != 0 {
		t.Errorf("score/change = %d/%d, want 40/0", body.Score, body.Change)
	}
}

func TestFeedbackEndpoint_InvalidSpeaker(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "POST", "/api/v1/feedback", map[string]any{
		"scenario":      "phone_invite",
		"customer_type": "skeptical",
		"speaker":       "observer",
		"text":          "我不需要",
		"score":         40,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCodeEndpoints(t *testing.T) {
	q := testQuota(t)
	if _, err := q.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	srv := testServer(t, Options{Quota: q, AdminKey: "topsecret"})

	w := doJSON(t, srv, "POST", "/api/v1/codes/verify", map[string]string{"code": "TRIAL-001"})
	if w.Code != http.StatusOK {
		t.Fatalf("verify: expected 200, got %d", w.Code)
	}
	var body codeResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Valid || body.Remaining != 1 {
		t.Errorf("verify response = %+v", body)
	}

	w = doJSON(t, srv, "POST", "/api/v1/codes/record-usage", map[string]string{"code": "TRIAL-001"})
	if w.Code != http.StatusOK {
		t.Fatalf("record-usage: expected 200, got %d", w.Code)
	}

	// The single-use code is now spent.
	w = doJSON(t, srv, "POST", "/api/v1/codes/verify", map[string]string{"code": "TRIAL-001"})
	if w.Code != http.StatusForbidden {
		t.Errorf("verify exhausted: expected 403, got %d", w.Code)
	}

	w = doJSON(t, srv, "POST", "/api/v1/codes/verify", map[string]string{"code": "NOPE-000"})
	if w.Code != http.StatusNotFound {
		t.Errorf("verify unknown: expected 404, got %d", w.Code)
	}
}

func TestSeedEndpoint_AdminKey(t *testing.T) {
	q := testQuota(t)
	srv := testServer(t, Options{Quota: q, AdminKey: "topsecret"})

	req := httptest.NewRequest("POST", "/api/v1/codes/seed", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("seed without key: expected 403, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/api/v1/codes/seed", nil)
	req.Header.Set("X-Admin-Key", "topsecret")
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed with key: expected 200, got %d", w.Code)
	}

	var body map[string]int
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["seeded"] != 8 {
		t.Errorf("seeded = %d, want 8", body["seeded"])
	}
}

func TestSeedEndpoint_NoAdminKeyConfigured(t *testing.T) {
	q := testQuota(t)
	srv := testServer(t, Options{Quota: q})

	req := httptest.NewRequest("POST", "/api/v1/codes/seed", nil)
	req.Header.Set("X-Admin-Key", "")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("seed with unset admin key: expected 403, got %d", w.Code)
	}
}

func TestCodeEndpoints_Unconfigured(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "POST", "/api/v1/codes/verify", map[string]string{"code": "TEST-001"})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestRealtimeSessionEndpoint(t *testing.T) {
	srv := testServer(t, Options{Minter: &fakeMinter{payload: json.RawMessage(`{"client_secret":{"value":"ek_test"}}`)}})

	w := doJSON(t, srv, "POST", "/api/v1/realtime/session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ek_test") {
		t.Error("session payload not relayed")
	}
}

func TestRealtimeSessionEndpoint_UpstreamFailure(t *testing.T) {
	srv := testServer(t, Options{Minter: &fakeMinter{err: errors.New("upstream down")}})

	w := doJSON(t, srv, "POST", "/api/v1/realtime/session", nil)
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}

func TestSessionEndpoints_Unconfigured(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "GET", "/api/v1/sessions", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}

	w = doJSON(t, srv, "GET", "/api/v1/sessions/not-a-uuid", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 before id validation, got %d", w.Code)
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := testServer(t, Options{})

	w := doJSON(t, srv, "GET", "/nonexistent", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
