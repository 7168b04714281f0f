package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/formosa-labs/rapport/internal/rapport"
)

// SessionRecord is a persisted, fully analyzed training session.
type SessionRecord struct {
	ID           uuid.UUID
	SessionRef   string
	Scenario     string
	CustomerType string
	InitialScore int
	FinalScore   int
	Trajectory   []int
	Events       []StoredEvent
	Summary      string
	Report       string
	CreatedAt    time.Time
}

// StoredEvent is the durable shape of a rapport event. Rules are referenced
// by ID rather than embedded, so catalog edits never invalidate old rows.
type StoredEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Speaker     string    `json:"speaker"`
	Utterance   string    `json:"utterance"`
	RuleID      string    `json:"rule_id,omitempty"`
	Intent      string    `json:"intent,omitempty"`
	ScoreBefore int       `json:"score_before"`
	ScoreAfter  int       `json:"score_after"`
	Change      int       `json:"change"`
}

// StoredEvents converts analyzer events into their durable form.
func StoredEvents(events []rapport.RapportEvent) []StoredEvent {
	out := make([]StoredEvent, 0, len(events))
	for _, ev := range events {
		se := StoredEvent{
			Timestamp:   ev.Timestamp,
			Speaker:     string(ev.Speaker),
			Utterance:   ev.Utterance,
			ScoreBefore: ev.ScoreBefore,
			ScoreAfter:  ev.ScoreAfter,
			Change:      ev.Change,
		}
		if ev.Rule != nil {
			se.RuleID = ev.Rule.ID
			se.Intent = ev.Rule.Intent
		}
		out = append(out, se)
	}
	return out
}

// WriteSession persists an analyzed session and returns its row ID.
func (s *Store) WriteSession(ctx context.Context, rec SessionRecord) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	trajectory, err := json.Marshal(rec.Trajectory)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode trajectory: %w", err)
	}
	events, err := json.Marshal(rec.Events)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode events: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO rapport_sessions (id, session_ref, scenario, customer_type, initial_score, final_score, trajectory, events, summary, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())`,
		rec.ID, rec.SessionRef, rec.Scenario, rec.CustomerType, rec.InitialScore, rec.FinalScore, trajectory, events, rec.Summary, rec.Report,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert session: %w", err)
	}
	return rec.ID, nil
}

// GetSession fetches one session by row ID.
func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*SessionRecord, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, session_ref, scenario, customer_type, initial_score, final_score, trajectory, events, summary, report, created_at
		FROM rapport_sessions
		WHERE id = $1`,
		id,
	)
	return scanSession(row)
}

// GetSessionByRef fetches the most recent session with the given external
// reference.
func (s *Store) GetSessionByRef(ctx context.Context, sessionRef string) (*SessionRecord, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, session_ref, scenario, customer_type, initial_score, final_score, trajectory, events, summary, report, created_at
		FROM rapport_sessions
		WHERE session_ref = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		sessionRef,
	)
	return scanSession(row)
}

// RecentSessions returns the newest sessions, capped at limit.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, session_ref, scenario, customer_type, initial_score, final_score, trajectory, events, summary, report, created_at
		FROM rapport_sessions
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*SessionRecord, error) {
	var rec SessionRecord
	var trajectory, events []byte
	err := row.Scan(&rec.ID, &rec.SessionRef, &rec.Scenario, &rec.CustomerType, &rec.InitialScore, &rec.FinalScore, &trajectory, &events, &rec.Summary, &rec.Report, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(trajectory, &rec.Trajectory); err != nil {
		return nil, fmt.Errorf("decode trajectory: %w", err)
	}
	if err := json.Unmarshal(events, &rec.Events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return &rec, nil
}
