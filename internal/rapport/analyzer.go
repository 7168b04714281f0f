package rapport

import (
	"strings"
	"time"
	"unicode/utf8"
)

// CriticalMomentThreshold separates a meaningful rapport swing from noise.
const CriticalMomentThreshold = 5

// Turn is one utterance in an ordered transcript.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// RapportEvent records one utterance that moved the score. Immutable after
// creation.
type RapportEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Speaker   Speaker   `json:"speaker"`
	Utterance string    `json:"utterance"`
	// Rule is the primary matched rule, by reference.
	Rule        *Rule `json:"-"`
	ScoreBefore int   `json:"score_before"`
	ScoreAfter  int   `json:"score_after"`
	// Change is the effective applied delta (ScoreAfter − ScoreBefore), after
	// boundary damping/amplification and clamping.
	Change int `json:"change"`
}

// Result is the full analysis of one conversation.
type Result struct {
	Events     []RapportEvent `json:"events"`
	FinalScore int            `json:"final_score"`
	// Trajectory holds one score per turn plus the seed, so its length is
	// always len(turns) + 1.
	Trajectory      []int          `json:"trajectory"`
	CriticalMoments []RapportEvent `json:"critical_moments"`
}

// AnalyzeUtterance runs the dual-track analysis for a single utterance:
// customer speech is tested against resistance patterns, trainee speech
// against trust-building patterns. Degenerate input (empty or shorter than
// the minimum) yields a zero-effect result, not an error.
func AnalyzeUtterance(text string, scenario Scenario, customerType CustomerType, speaker Speaker) (AnalysisResult, error) {
	if _, err := ParseScenario(string(scenario)); err != nil {
		return AnalysisResult{}, err
	}
	if _, err := ParseCustomerType(string(customerType)); err != nil {
		return AnalysisResult{}, err
	}
	candidates, err := RulesForSpeaker(speaker, scenario, customerType)
	if err != nil {
		return AnalysisResult{}, err
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minMatchRunes {
		return AnalysisResult{}, nil
	}

	var matched []*Rule
	for _, rule := range candidates {
		if Matches(text, rule) {
			matched = append(matched, rule)
		}
	}
	return Aggregate(matched), nil
}

// Analyze runs a full conversation through the engine, seeding the score from
// the customer type.
func Analyze(turns []Turn, scenario Scenario, customerType CustomerType) (*Result, error) {
	initial, err := InitialScore(customerType)
	if err != nil {
		return nil, err
	}
	return AnalyzeFrom(turns, scenario, customerType, initial)
}

// AnalyzeFrom is Analyze with an explicit seed score. Turns are processed in
// order; the scoring model is stateful and history-dependent, so order
// matters. The analyzer holds no state across invocations — every
// conversation is analyzed fresh from its seed.
func AnalyzeFrom(turns []Turn, scenario Scenario, customerType CustomerType, initialScore int) (*Result, error) {
	if _, err := ParseScenario(string(scenario)); err != nil {
		return nil, err
	}
	if _, err := ParseCustomerType(string(customerType)); err != nil {
		return nil, err
	}

	result := &Result{
		Trajectory: make([]int, 0, len(turns)+1),
	}
	result.Trajectory = append(result.Trajectory, initialScore)
	current := initialScore

	for _, turn := range turns {
		analysis, err := AnalyzeUtterance(turn.Text, scenario, customerType, turn.Speaker)
		if err != nil {
			return nil, err
		}

		if analysis.Matched() {
			before := current
			current = ApplyDelta(current, analysis.Change)
			result.Events = append(result.Events, RapportEvent{
				Timestamp:   time.Now().UTC(),
				Speaker:     turn.Speaker,
				Utterance:   turn.Text,
				Rule:        analysis.PrimaryRule,
				ScoreBefore: before,
				ScoreAfter:  current,
				Change:      current - before,
			})
		}

		result.Trajectory = append(result.Trajectory, current)
	}

	result.FinalScore = current
	for _, ev := range result.Events {
		if abs(ev.Change) >= CriticalMomentThreshold {
			result.CriticalMoments = append(result.CriticalMoments, ev)
		}
	}
	return result, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
