package rapport

import "fmt"

// Rules returns the full catalog. Callers must not mutate the returned rules.
func Rules() []*Rule {
	return catalog
}

// RuleByID looks up a rule by its stable identifier.
func RuleByID(id string) (*Rule, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// RulesFor returns the rules applicable to a scenario and customer type.
// Positive rules always pass the customer-type filter; negative rules must
// match it exactly. An empty kind selects both kinds.
func RulesFor(scenario Scenario, customerType CustomerType, kind RuleKind) []*Rule {
	var out []*Rule
	for _, r := range catalog {
		if !r.AppliesTo(scenario) {
			continue
		}
		if r.Kind == KindNegative && r.CustomerType != customerType {
			continue
		}
		if kind != "" && r.Kind != kind {
			continue
		}
		out = append(out, r)
	}
	return out
}

// PositiveRules returns all positive rules, optionally filtered by scenario
// (empty scenario selects all).
func PositiveRules(scenario Scenario) []*Rule {
	var out []*Rule
	for _, r := range catalog {
		if r.Kind != KindPositive {
			continue
		}
		if scenario != "" && !r.AppliesTo(scenario) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// NegativeRules returns all negative rules, optionally filtered by scenario
// and/or customer type (either may be empty).
func NegativeRules(scenario Scenario, customerType CustomerType) []*Rule {
	var out []*Rule
	for _, r := range catalog {
		if r.Kind != KindNegative {
			continue
		}
		if scenario != "" && !r.AppliesTo(scenario) {
			continue
		}
		if customerType != "" && r.CustomerType != customerType {
			continue
		}
		out = append(out, r)
	}
	return out
}

// RulesForSpeaker is the dual-track dispatch: resistance patterns are only
// meaningful as customer speech, trust-building patterns only as trainee
// speech. An unrecognised role is a caller error, not a silent no-op.
func RulesForSpeaker(speaker Speaker, scenario Scenario, customerType CustomerType) ([]*Rule, error) {
	switch speaker {
	case SpeakerCustomer:
		return NegativeRules(scenario, customerType), nil
	case SpeakerTrainee:
		return PositiveRules(scenario), nil
	}
	return nil, fmt.Errorf("unknown speaker role %q", speaker)
}

// Validate asserts the catalog's integrity invariants. A violation is a
// programmer error and should be fatal at startup, not deferred to match time.
func Validate() error {
	seen := make(map[string]bool, len(catalog))
	for _, r := range catalog {
		if r.ID == "" {
			return fmt.Errorf("rule with empty id")
		}
		if seen[r.ID] {
			return fmt.Errorf("rule %s: duplicate id", r.ID)
		}
		seen[r.ID] = true

		if len(r.Keywords) == 0 {
			return fmt.Errorf("rule %s: empty keyword list", r.ID)
		}
		if len(r.Scenarios) == 0 {
			return fmt.Errorf("rule %s: empty scenario set", r.ID)
		}
		if r.Weight <= 0 {
			return fmt.Errorf("rule %s: non-positive weight %v", r.ID, r.Weight)
		}

		switch r.Kind {
		case KindNegative:
			if r.CustomerType == "" {
				return fmt.Errorf("rule %s: negative rule without customer type", r.ID)
			}
			if r.Posture == PostureCongruent {
				return fmt.Errorf("rule %s: congruent posture on a negative rule", r.ID)
			}
			if r.Impact >= 0 {
				return fmt.Errorf("rule %s: negative rule with non-negative impact %v", r.ID, r.Impact)
			}
		case KindPositive:
			if r.CustomerType != "" {
				return fmt.Errorf("rule %s: positive rule with customer type %q", r.ID, r.CustomerType)
			}
			if r.Posture != PostureCongruent {
				return fmt.Errorf("rule %s: positive rule with posture %q", r.ID, r.Posture)
			}
			if r.Impact <= 0 {
				return fmt.Errorf("rule %s: positive rule with non-positive impact %v", r.ID, r.Impact)
			}
		default:
			return fmt.Errorf("rule %s: unknown kind %q", r.ID, r.Kind)
		}
	}
	return nil
}
