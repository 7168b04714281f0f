package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const sessionsURL = "https://api.openai.com/v1/realtime/sessions"

const coachInstructions = "You are a friendly insurance sales coach helping trainees practice calls in Mandarin."

// Client mints ephemeral realtime voice sessions. The returned token lets a
// browser open a WebRTC connection directly, so the API key never leaves the
// server.
type Client struct {
	apiKey string
	model  string
	voice  string
	client *http.Client
}

func NewClient(apiKey, model, voice string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		voice:  voice,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type sessionRequest struct {
	Model             string `json:"model"`
	Voice             string `json:"voice"`
	Instructions      string `json:"instructions"`
	InputAudioFormat  string `json:"input_audio_format"`
	OutputAudioFormat string `json:"output_audio_format"`
}

// Mint creates a new ephemeral session and returns the raw session payload
// for the caller to relay to the browser.
func (c *Client) Mint(ctx context.Context) (json.RawMessage, error) {
	reqBody := sessionRequest{
		Model:             c.model,
		Voice:             c.voice,
		Instructions:      coachInstructions,
		InputAudioFormat:  "pcm16",
		OutputAudioFormat: "pcm16",
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sessionsURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api error %d: %s", resp.StatusCode, string(respBody))
	}

	return json.RawMessage(respBody), nil
}
