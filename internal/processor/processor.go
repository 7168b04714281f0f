package processor

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/formosa-labs/rapport/internal/bus"
	"github.com/formosa-labs/rapport/internal/rapport"
	"github.com/formosa-labs/rapport/internal/report"
	"github.com/formosa-labs/rapport/internal/store"
)

// Publisher sends pipeline events to the message bus.
type Publisher interface {
	Publish(subject string, data any) error
}

// SessionWriter persists completed analyses.
type SessionWriter interface {
	WriteSession(ctx context.Context, rec store.SessionRecord) (uuid.UUID, error)
}

// Reporter produces a narrative coaching report for a finished session.
type Reporter interface {
	Generate(ctx context.Context, turns []rapport.Turn, scenario rapport.Scenario, customerType rapport.CustomerType, persona report.Persona, engineSummary string) (string, error)
}

// Processor drives live sessions through the rapport engine: it accumulates
// transcript turns as they arrive, emits per-utterance feedback, and runs the
// full analysis when the session completes.
type Processor struct {
	store    SessionWriter
	bus      Publisher
	reporter Reporter
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*liveSession
}

// liveSession is the in-flight state of one training conversation. Guarded by
// Processor.mu; NATS handlers may run concurrently.
type liveSession struct {
	Ref          string
	Scenario     rapport.Scenario
	CustomerType rapport.CustomerType
	StartedAt    time.Time
	Turns        []rapport.Turn
	InitialScore int
	Score        int
}

func New(s SessionWriter, b Publisher, r Reporter, logger *slog.Logger) *Processor {
	return &Processor{
		store:    s,
		bus:      b,
		reporter: r,
		logger:   logger,
		sessions: make(map[string]*liveSession),
	}
}

// HandleSessionStarted is the NATS handler for voice.session.started.
func (p *Processor) HandleSessionStarted(subject string, data []byte) {
	var evt bus.SessionStarted
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse session started event", "error", err)
		return
	}

	scenario, err := rapport.ParseScenario(evt.Scenario)
	if err != nil {
		p.logger.Error("rejecting session", "session_ref", evt.SessionRef, "error", err)
		return
	}
	customerType, err := rapport.ParseCustomerType(evt.CustomerType)
	if err != nil {
		p.logger.Error("rejecting session", "session_ref", evt.SessionRef, "error", err)
		return
	}
	initial, err := rapport.InitialScore(customerType)
	if err != nil {
		p.logger.Error("rejecting session", "session_ref", evt.SessionRef, "error", err)
		return
	}

	p.mu.Lock()
	p.sessions[evt.SessionRef] = &liveSession{
		Ref:          evt.SessionRef,
		Scenario:     scenario,
		CustomerType: customerType,
		StartedAt:    time.Now().UTC(),
		InitialScore: initial,
		Score:        initial,
	}
	p.mu.Unlock()

	p.logger.Info("session started",
		"session_ref", evt.SessionRef,
		"scenario", scenario,
		"customer_type", customerType,
		"initial_score", initial,
	)
}

// HandleUtterance is the NATS handler for voice.session.utterance. Each
// matched utterance moves the live score and publishes a feedback event.
func (p *Processor) HandleUtterance(subject string, data []byte) {
	var evt bus.SessionUtterance
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse utterance event", "error", err)
		return
	}

	speaker, err := rapport.ParseSpeaker(evt.Speaker)
	if err != nil {
		p.logger.Warn("dropping utterance", "session_ref", evt.SessionRef, "error", err)
		return
	}

	p.mu.Lock()
	sess, ok := p.sessions[evt.SessionRef]
	if !ok {
		p.mu.Unlock()
		p.logger.Warn("utterance for unknown session", "session_ref", evt.SessionRef)
		return
	}
	sess.Turns = append(sess.Turns, rapport.Turn{Speaker: speaker, Text: evt.Text})

	analysis, err := rapport.AnalyzeUtterance(evt.Text, sess.Scenario, sess.CustomerType, speaker)
	if err != nil {
		p.mu.Unlock()
		p.logger.Error("utterance analysis failed", "session_ref", evt.SessionRef, "error", err)
		return
	}

	if !analysis.Matched() {
		p.mu.Unlock()
		return
	}

	before := sess.Score
	sess.Score = rapport.ApplyDelta(sess.Score, analysis.Change)
	score, change := sess.Score, sess.Score-before
	p.mu.Unlock()

	fb := bus.Feedback{
		SessionRef:        evt.SessionRef,
		Speaker:           string(speaker),
		Utterance:         evt.Text,
		DetectedPosture:   string(analysis.DetectedPosture),
		SuggestedStrategy: analysis.SuggestedStrategy,
		ResponseGuide:     analysis.ResponseGuide,
		Score:             score,
		Change:            change,
		Level:             string(rapport.StatusFor(score).Level),
	}
	if analysis.PrimaryRule != nil {
		fb.RuleID = analysis.PrimaryRule.ID
		fb.Intent = analysis.PrimaryRule.Intent
	}

	if err := p.bus.Publish(bus.SubjectFeedback, fb); err != nil {
		p.logger.Error("failed to publish feedback", "session_ref", evt.SessionRef, "error", err)
	}
}

// HandleSessionCompleted is the NATS handler for voice.session.completed. It
// re-runs the whole transcript from the seed score so the final analysis is a
// single consistent pass, persists it, and announces the result.
func (p *Processor) HandleSessionCompleted(subject string, data []byte) {
	ctx := context.Background()

	var evt bus.SessionCompleted
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse session completed event", "error", err)
		return
	}

	p.mu.Lock()
	sess, ok := p.sessions[evt.SessionRef]
	if ok {
		delete(p.sessions, evt.SessionRef)
	}
	p.mu.Unlock()

	if !ok {
		p.logger.Warn("completion for unknown session", "session_ref", evt.SessionRef)
		return
	}

	result, err := rapport.AnalyzeFrom(sess.Turns, sess.Scenario, sess.CustomerType, sess.InitialScore)
	if err != nil {
		p.logger.Error("final analysis failed", "session_ref", evt.SessionRef, "error", err)
		return
	}

	summary := rapport.Summarize(result.Events, result.FinalScore, sess.InitialScore)

	var reportText string
	if p.reporter != nil {
		reportText, err = p.reporter.Generate(ctx, sess.Turns, sess.Scenario, sess.CustomerType, report.Persona{}, summary)
		if err != nil {
			p.logger.Error("report generation failed", "session_ref", evt.SessionRef, "error", err)
			reportText = ""
		}
	}

	var storedID uuid.UUID
	if p.store != nil {
		storedID, err = p.store.WriteSession(ctx, store.SessionRecord{
			SessionRef:   sess.Ref,
			Scenario:     string(sess.Scenario),
			CustomerType: string(sess.CustomerType),
			InitialScore: sess.InitialScore,
			FinalScore:   result.FinalScore,
			Trajectory:   result.Trajectory,
			Events:       store.StoredEvents(result.Events),
			Summary:      summary,
			Report:       reportText,
		})
		if err != nil {
			p.logger.Error("session persistence failed", "session_ref", evt.SessionRef, "error", err)
		}
	}

	analyzed := bus.Analyzed{
		SessionRef:   sess.Ref,
		Scenario:     string(sess.Scenario),
		CustomerType: string(sess.CustomerType),
		InitialScore: sess.InitialScore,
		FinalScore:   result.FinalScore,
		Trajectory:   result.Trajectory,
		EventCount:   len(result.Events),
		Summary:      summary,
		Report:       reportText,
	}
	if storedID != uuid.Nil {
		analyzed.SessionID = storedID.String()
	}

	if err := p.bus.Publish(bus.SubjectAnalyzed, analyzed); err != nil {
		p.logger.Error("failed to publish analysis", "session_ref", evt.SessionRef, "error", err)
	}

	p.logger.Info("session analyzed",
		"session_ref", sess.Ref,
		"turns", len(sess.Turns),
		"events", len(result.Events),
		"final_score", result.FinalScore,
	)
}
