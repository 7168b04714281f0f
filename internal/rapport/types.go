package rapport

import "fmt"

// Scenario identifies the training context a conversation runs in.
type Scenario string

const (
	ScenarioPhoneInvite       Scenario = "phone_invite"
	ScenarioProductMarketing  Scenario = "product_marketing"
	ScenarioObjectionHandling Scenario = "objection_handling"
)

// ParseScenario validates a wire-format scenario value.
func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case ScenarioPhoneInvite, ScenarioProductMarketing, ScenarioObjectionHandling:
		return Scenario(s), nil
	}
	return "", fmt.Errorf("unknown scenario %q", s)
}

// CustomerType is the simulated customer's baseline disposition. It is fixed
// for the whole session and determines both the applicable negative rules and
// the starting rapport score.
type CustomerType string

const (
	CustomerNeutral   CustomerType = "neutral"
	CustomerAvoidant  CustomerType = "avoidant"
	CustomerSkeptical CustomerType = "skeptical"
	CustomerInsured   CustomerType = "has_insurance"
)

// ParseCustomerType validates a wire-format customer type value.
func ParseCustomerType(s string) (CustomerType, error) {
	switch CustomerType(s) {
	case CustomerNeutral, CustomerAvoidant, CustomerSkeptical, CustomerInsured:
		return CustomerType(s), nil
	}
	return "", fmt.Errorf("unknown customer type %q", s)
}

// Posture is a Satir coping stance. Every rule is tagged with exactly one;
// congruent is reserved for positive rules.
type Posture string

const (
	PosturePlacating       Posture = "placating"
	PostureBlaming         Posture = "blaming"
	PostureSuperReasonable Posture = "super_reasonable"
	PostureIrrelevant      Posture = "irrelevant"
	PostureCongruent       Posture = "congruent"
)

// RuleKind separates customer-side resistance patterns from trainee-side
// trust-building patterns.
type RuleKind string

const (
	KindNegative RuleKind = "negative"
	KindPositive RuleKind = "positive"
)

// Speaker is the role that produced an utterance.
type Speaker string

const (
	// SpeakerTrainee is the human sales trainee.
	SpeakerTrainee Speaker = "trainee"
	// SpeakerCustomer is the simulated customer persona.
	SpeakerCustomer Speaker = "customer"
)

// ParseSpeaker validates a wire-format speaker role.
func ParseSpeaker(s string) (Speaker, error) {
	switch Speaker(s) {
	case SpeakerTrainee, SpeakerCustomer:
		return Speaker(s), nil
	}
	return "", fmt.Errorf("unknown speaker role %q", s)
}

// SentencePattern is a structural check the matcher enforces on top of the
// keyword gate. A rule with no patterns matches on keywords alone.
type SentencePattern string

const (
	// PatternShortSentence fails utterances longer than ~20 characters.
	PatternShortSentence SentencePattern = "short_sentence"
	// PatternInterrogative requires a question mark or interrogative particle.
	PatternInterrogative SentencePattern = "interrogative"
	// PatternComparative requires a comparison marker.
	PatternComparative SentencePattern = "comparative"
	// PatternNegation requires a negation marker.
	PatternNegation SentencePattern = "negation"
	// PatternOpenQuestion requires an explicit opinion-soliciting phrase.
	PatternOpenQuestion SentencePattern = "open_question"
	// PatternEmpathy requires an explicit understanding/empathy phrase.
	PatternEmpathy SentencePattern = "empathy"
)

// Rule is the atomic unit of domain knowledge: one linguistic/psychological
// pattern with its matching criteria, explanatory metadata, and trust impact.
// Rules are immutable after startup.
type Rule struct {
	ID        string     `json:"id"`
	Kind      RuleKind   `json:"kind"`
	Scenarios []Scenario `json:"scenarios"`
	// CustomerType is set on negative rules only; positive rules apply to
	// every customer type.
	CustomerType CustomerType      `json:"customer_type,omitempty"`
	Posture      Posture           `json:"posture"`
	Keywords     []string          `json:"keywords"`
	Patterns     []SentencePattern `json:"patterns,omitempty"`

	// Explanatory metadata, surfaced with every match for human and LLM
	// consumption. Not used by the matching algorithm.
	Intent        string `json:"intent"`
	Psychology    string `json:"psychology"`
	Strategy      string `json:"strategy"`
	ResponseGuide string `json:"response_guide"`

	// Impact is the nominal trust effect of this pattern occurring once;
	// Weight scales it when several rules match the same utterance.
	Impact float64 `json:"impact"`
	Weight float64 `json:"weight"`
}

// AppliesTo reports whether the rule's scenario set contains s.
func (r *Rule) AppliesTo(s Scenario) bool {
	for _, sc := range r.Scenarios {
		if sc == s {
			return true
		}
	}
	return false
}

// WeightedImpact is the rule's impact scaled by its weight.
func (r *Rule) WeightedImpact() float64 {
	return r.Impact * r.Weight
}

func (r *Rule) hasPattern(p SentencePattern) bool {
	for _, pat := range r.Patterns {
		if pat == p {
			return true
		}
	}
	return false
}
