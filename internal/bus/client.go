package bus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// NATS subjects for the voice-training pipeline. The voice gateway publishes
// session lifecycle and transcript events; rapportd answers with live
// feedback and the final analysis.
const (
	SubjectSessionStarted   = "voice.session.started"
	SubjectSessionUtterance = "voice.session.utterance"
	SubjectSessionCompleted = "voice.session.completed"

	SubjectFeedback = "rapport.session.feedback"
	SubjectAnalyzed = "rapport.session.analyzed"
)

// SessionStarted announces a new training session.
type SessionStarted struct {
	SessionRef   string `json:"session_ref"`
	Scenario     string `json:"scenario"`
	CustomerType string `json:"customer_type"`
}

// SessionUtterance is one transcribed utterance from a live session.
type SessionUtterance struct {
	SessionRef string `json:"session_ref"`
	Speaker    string `json:"speaker"`
	Text       string `json:"text"`
}

// SessionCompleted signals that a session's transcript is final.
type SessionCompleted struct {
	SessionRef string `json:"session_ref"`
}

// Feedback is the live per-utterance coaching signal.
type Feedback struct {
	SessionRef        string `json:"session_ref"`
	Speaker           string `json:"speaker"`
	Utterance         string `json:"utterance"`
	RuleID            string `json:"rule_id,omitempty"`
	Intent            string `json:"intent,omitempty"`
	DetectedPosture   string `json:"detected_posture,omitempty"`
	SuggestedStrategy string `json:"suggested_strategy,omitempty"`
	ResponseGuide     string `json:"response_guide,omitempty"`
	Score             int    `json:"score"`
	Change            int    `json:"change"`
	Level             string `json:"level"`
}

// Analyzed is the final session analysis announcement.
type Analyzed struct {
	SessionID    string `json:"session_id,omitempty"`
	SessionRef   string `json:"session_ref"`
	Scenario     string `json:"scenario"`
	CustomerType string `json:"customer_type"`
	InitialScore int    `json:"initial_score"`
	FinalScore   int    `json:"final_score"`
	Trajectory   []int  `json:"trajectory"`
	EventCount   int    `json:"event_count"`
	Summary      string `json:"summary"`
	Report       string `json:"report,omitempty"`
}

type Client struct {
	conn   *nats.Conn
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewClient(url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Subscribe(subject string, handler func(subject string, data []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	c.logger.Info("subscribed", "subject", subject)
	return nil
}

func (c *Client) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.conn.Close()
}
