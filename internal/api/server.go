package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/formosa-labs/rapport/internal/quota"
	"github.com/formosa-labs/rapport/internal/rapport"
	"github.com/formosa-labs/rapport/internal/report"
	"github.com/formosa-labs/rapport/internal/store"
)

// Quota gates training sessions behind access codes.
type Quota interface {
	Verify(ctx context.Context, code string) (quota.Code, error)
	RecordUsage(ctx context.Context, code string) (quota.Code, error)
	Seed(ctx context.Context) (int, error)
}

// Sessions reads persisted analyses.
type Sessions interface {
	GetSession(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error)
	RecentSessions(ctx context.Context, limit int) ([]store.SessionRecord, error)
}

// Reporter produces a narrative coaching report for an analyzed transcript.
type Reporter interface {
	Generate(ctx context.Context, turns []rapport.Turn, scenario rapport.Scenario, customerType rapport.CustomerType, persona report.Persona, engineSummary string) (string, error)
}

// Minter creates ephemeral realtime voice sessions.
type Minter interface {
	Mint(ctx context.Context) (json.RawMessage, error)
}

type Server struct {
	router   *chi.Mux
	port     int
	logger   *slog.Logger
	quota    Quota
	sessions Sessions
	reporter Reporter
	minter   Minter
	adminKey string
}

type Options struct {
	Port     int
	Logger   *slog.Logger
	Quota    Quota
	Sessions Sessions
	Reporter Reporter
	Minter   Minter
	AdminKey string
}

func NewServer(opts Options) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		port:     opts.Port,
		logger:   opts.Logger,
		quota:    opts.Quota,
		sessions: opts.Sessions,
		reporter: opts.Reporter,
		minter:   opts.Minter,
		adminKey: opts.AdminKey,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/rapport/status", s.status)
	router.Get("/api/v1/rules", s.rules)
	router.Post("/api/v1/analyze", s.analyze)
	router.Post("/api/v1/feedback", s.feedback)
	router.Post("/api/v1/codes/verify", s.verifyCode)
	router.Post("/api/v1/codes/record-usage", s.recordUsage)
	router.Post("/api/v1/codes/seed", s.seedCodes)
	router.Post("/api/v1/realtime/session", s.realtimeSession)
	router.Get("/api/v1/sessions", s.recentSessions)
	router.Get("/api/v1/sessions/{id}", s.getSession)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "rapportd",
		"status":  "ok",
		"rules":   len(rapport.Rules()),
	})
}

func (s *Server) rules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"rules": rapport.Rules()})
}

type analyzeRequest struct {
	Scenario       string         `json:"scenario"`
	CustomerType   string         `json:"customer_type"`
	Turns          []rapport.Turn `json:"turns"`
	InitialScore   *int           `json:"initial_score,omitempty"`
	Persona        personaPayload `json:"persona"`
	GenerateReport bool           `json:"generate_report"`
}

type personaPayload struct {
	Gender string `json:"gender,omitempty"`
	Age    int    `json:"age,omitempty"`
	Job    string `json:"job,omitempty"`
}

type analyzeResponse struct {
	InitialScore    int                 `json:"initial_score"`
	FinalScore      int                 `json:"final_score"`
	Status          rapport.Status      `json:"status"`
	Trajectory      []int               `json:"trajectory"`
	Events          []store.StoredEvent `json:"events"`
	CriticalMoments []store.StoredEvent `json:"critical_moments"`
	Summary         string              `json:"summary"`
	Report          string              `json:"report,omitempty"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	scenario, err := rapport.ParseScenario(req.Scenario)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	customerType, err := rapport.ParseCustomerType(req.CustomerType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Turns) == 0 {
		writeError(w, http.StatusBadRequest, "turns must not be empty")
		return
	}

	initial := 0
	var result *rapport.Result
	if req.InitialScore != nil {
		initial = *req.InitialScore
		result, err = rapport.AnalyzeFrom(req.Turns, scenario, customerType, initial)
	} else {
		initial, err = rapport.InitialScore(customerType)
		if err == nil {
			result, err = rapport.Analyze(req.Turns, scenario, customerType)
		}
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary := rapport.Summarize(result.Events, result.FinalScore, initial)

	resp := analyzeResponse{
		InitialScore:    initial,
		FinalScore:      result.FinalScore,
		Status:          rapport.StatusFor(result.FinalScore),
		Trajectory:      result.Trajectory,
		Events:          store.StoredEvents(result.Events),
		CriticalMoments: store.StoredEvents(result.CriticalMoments),
		Summary:         summary,
	}

	if req.GenerateReport {
		if s.reporter == nil {
			writeError(w, http.StatusServiceUnavailable, "report generation not configured")
			return
		}
		persona := report.Persona{Gender: req.Persona.Gender, Age: req.Persona.Age, Job: req.Persona.Job}
		text, err := s.reporter.Generate(r.Context(), req.Turns, scenario, customerType, persona, summary)
		if err != nil {
			s.logger.Error("report generation failed", "error", err)
			writeError(w, http.StatusBadGateway, "report generation failed")
			return
		}
		resp.Report = text
	}

	writeJSON(w, http.StatusOK, resp)
}

type feedbackRequest struct {
	Scenario     string `json:"scenario"`
	CustomerType string `json:"customer_type"`
	Speaker      string `json:"speaker"`
	Text         string `json:"text"`
	Score        int    `json:"score"`
}

type feedbackResponse struct {
	Matched           bool           `json:"matched"`
	RuleID            string         `json:"rule_id,omitempty"`
	Intent            string         `json:"intent,omitempty"`
	DetectedPosture   string         `json:"detected_posture,omitempty"`
	SuggestedStrategy string         `json:"suggested_strategy,omitempty"`
	ResponseGuide     string         `json:"response_guide,omitempty"`
	Score             int            `json:"score"`
	Change            int            `json:"change"`
	Status            rapport.Status `json:"status"`
}

func (s *Server) feedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	scenario, err := rapport.ParseScenario(req.Scenario)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	customerType, err := rapport.ParseCustomerType(req.CustomerType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	speaker, err := rapport.ParseSpeaker(req.Speaker)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := rapport.AnalyzeUtterance(req.Text, scenario, customerType, speaker)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	score := req.Score
	resp := feedbackResponse{
		Matched: analysis.Matched(),
		Score:   score,
	}
	if analysis.Matched() {
		newScore := rapport.ApplyDelta(score, analysis.Change)
		resp.Change = newScore - score
		resp.Score = newScore
		resp.DetectedPosture = string(analysis.DetectedPosture)
		resp.SuggestedStrategy = analysis.SuggestedStrategy
		resp.ResponseGuide = analysis.ResponseGuide
		if analysis.PrimaryRule != nil {
			resp.RuleID = analysis.PrimaryRule.ID
			resp.Intent = analysis.PrimaryRule.Intent
		}
	}
	resp.Status = rapport.StatusFor(resp.Score)

	writeJSON(w, http.StatusOK, resp)
}

type codeRequest struct {
	Code string `json:"code"`
}

type codeResponse struct {
	Valid     bool   `json:"valid"`
	Code      string `json:"code,omitempty"`
	Type      string `json:"type,omitempty"`
	Remaining int    `json:"remaining"`
	Error     string `json:"error,omitempty"`
}

func (s *Server) verifyCode(w http.ResponseWriter, r *http.Request) {
	s.handleCode(w, r, func(ctx context.Context, code string) (quota.Code, error) {
		return s.quota.Verify(ctx, code)
	})
}

func (s *Server) recordUsage(w http.ResponseWriter, r *http.Request) {
	s.handleCode(w, r, func(ctx context.Context, code string) (quota.Code, error) {
		return s.quota.RecordUsage(ctx, code)
	})
}

func (s *Server) handleCode(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (quota.Code, error)) {
	if s.quota == nil {
		writeError(w, http.StatusServiceUnavailable, "access codes not configured")
		return
	}

	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := op(r.Context(), req.Code)
	switch {
	case errors.Is(err, quota.ErrNotFound):
		writeJSON(w, http.StatusNotFound, codeResponse{Valid: false, Error: "invalid code"})
	case errors.Is(err, quota.ErrExhausted):
		writeJSON(w, http.StatusForbidden, codeResponse{Valid: false, Code: c.Code, Type: c.Type, Remaining: 0, Error: "code exhausted"})
	case err != nil:
		s.logger.Error("access code lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		writeJSON(w, http.StatusOK, codeResponse{Valid: true, Code: c.Code, Type: c.Type, Remaining: c.Remaining()})
	}
}

func (s *Server) seedCodes(w http.ResponseWriter, r *http.Request) {
	if s.quota == nil {
		writeError(w, http.StatusServiceUnavailable, "access codes not configured")
		return
	}
	if s.adminKey == "" || r.Header.Get("X-Admin-Key") != s.adminKey {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	n, err := s.quota.Seed(r.Context())
	if err != nil {
		s.logger.Error("seeding access codes failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"seeded": n})
}

func (s *Server) realtimeSession(w http.ResponseWriter, r *http.Request) {
	if s.minter == nil {
		writeError(w, http.StatusServiceUnavailable, "realtime sessions not configured")
		return
	}

	session, err := s.minter.Mint(r.Context())
	if err != nil {
		s.logger.Error("realtime session mint failed", "error", err)
		writeError(w, http.StatusBadGateway, "realtime session request failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(session)
}

func (s *Server) recentSessions(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		writeError(w, http.StatusServiceUnavailable, "session storage not configured")
		return
	}

	recs, err := s.sessions.RecentSessions(r.Context(), 20)
	if err != nil {
		s.logger.Error("listing sessions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": recs})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		writeError(w, http.StatusServiceUnavailable, "session storage not configured")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	rec, err := s.sessions.GetSession(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
