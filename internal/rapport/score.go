package rapport

import (
	"fmt"
	"math"
)

// AnalysisResult is the outcome of matching one utterance against the
// candidate rule set. When nothing matched, Change is zero and the derived
// fields are empty.
type AnalysisResult struct {
	MatchedRules []*Rule `json:"matched_rules,omitempty"`
	// TotalImpact is Σ(impact × weight) over all matched rules.
	TotalImpact float64 `json:"total_impact"`
	// Change is TotalImpact rounded to the integer rapport delta.
	Change int `json:"change"`

	// Derived from the primary rule — the match with the largest
	// |impact × weight|.
	PrimaryRule       *Rule   `json:"-"`
	DetectedPosture   Posture `json:"detected_posture,omitempty"`
	SuggestedStrategy string  `json:"suggested_strategy,omitempty"`
	ResponseGuide     string  `json:"response_guide,omitempty"`
}

// Matched reports whether any rule matched.
func (r *AnalysisResult) Matched() bool {
	return len(r.MatchedRules) > 0
}

// Aggregate combines all rules matched on one utterance into a single bounded
// result. The primary rule's explanatory fields are surfaced so a consumer
// can show one coherent suggestion even when several patterns fired at once.
func Aggregate(matched []*Rule) AnalysisResult {
	result := AnalysisResult{MatchedRules: matched}
	if len(matched) == 0 {
		return result
	}

	primary := matched[0]
	for _, r := range matched {
		result.TotalImpact += r.WeightedImpact()
		if math.Abs(r.WeightedImpact()) > math.Abs(primary.WeightedImpact()) {
			primary = r
		}
	}
	result.Change = int(math.Round(result.TotalImpact))
	result.PrimaryRule = primary
	result.DetectedPosture = primary.Posture
	result.SuggestedStrategy = primary.Strategy
	result.ResponseGuide = primary.ResponseGuide
	return result
}

// ApplyDelta computes the new rapport score after a change, with non-linear
// boundary effects applied before clamping to [0, 100]:
//
//	delta > 0, score < 30: ×0.7 — trust is hard to build from a low base
//	delta > 0, score > 70: ×0.8 — diminishing returns near the ceiling
//	delta < 0, score > 70: ×0.8 — high trust absorbs shocks
//	delta < 0, score < 30: ×1.2 — low trust is fragile, damage compounds
func ApplyDelta(currentScore, delta int) int {
	effective := float64(delta)
	switch {
	case delta > 0 && currentScore < 30:
		effective *= 0.7
	case delta > 0 && currentScore > 70:
		effective *= 0.8
	case delta < 0 && currentScore > 70:
		effective *= 0.8
	case delta < 0 && currentScore < 30:
		effective *= 1.2
	}
	return clamp(int(math.Round(float64(currentScore) + effective)))
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Band is the coarse health level of the customer relationship.
type Band string

const (
	BandDanger  Band = "danger"
	BandWarning Band = "warning"
	BandGood    Band = "good"
)

// Status is the presentation-ready reading of a rapport score. It is a pure
// function of the score, recomputed on demand and never stored.
type Status struct {
	Score       int    `json:"score"`
	Level       Band   `json:"level"`
	Color       string `json:"color"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Advice      string `json:"advice"`
}

// StatusFor maps a score to its band: <30 danger, 30–69 warning, ≥70 good.
func StatusFor(score int) Status {
	switch {
	case score < 30:
		return Status{
			Score:       score,
			Level:       BandDanger,
			Color:       "#ef4444",
			Label:       "關係危險",
			Description: "客戶防備心很重，隨時可能中斷對話",
			Advice:      "立即調整策略，避免推銷話術，專注建立信任",
		}
	case score < 70:
		return Status{
			Score:       score,
			Level:       BandWarning,
			Color:       "#f59e0b",
			Label:       "關係普通",
			Description: "客戶願意聽但還沒有信任",
			Advice:      "使用開放式問題，展現同理心，逐步建立連結",
		}
	default:
		return Status{
			Score:       score,
			Level:       BandGood,
			Color:       "#10b981",
			Label:       "關係良好",
			Description: "客戶對你有信任感，願意深入交流",
			Advice:      "保持當前節奏，可以適度引入產品討論",
		}
	}
}

// InitialScore is the starting trust level for a customer disposition:
// skepticism is the hardest opening position, neutrality the easiest.
func InitialScore(customerType CustomerType) (int, error) {
	switch customerType {
	case CustomerNeutral:
		return 50, nil
	case CustomerAvoidant:
		return 45, nil
	case CustomerSkeptical:
		return 40, nil
	case CustomerInsured:
		return 45, nil
	}
	return 0, fmt.Errorf("unknown customer type %q", customerType)
}
