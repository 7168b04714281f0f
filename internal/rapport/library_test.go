package rapport

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog failed validation: %v", err)
	}
}

func TestCatalogCounts(t *testing.T) {
	positives := PositiveRules("")
	negatives := NegativeRules("", "")

	if len(positives) != 15 {
		t.Errorf("expected 15 positive rules, got %d", len(positives))
	}
	if len(negatives) != 25 {
		t.Errorf("expected 25 negative rules, got %d", len(negatives))
	}
	if len(Rules()) != len(positives)+len(negatives) {
		t.Errorf("catalog size mismatch")
	}
}

func TestRuleByID(t *testing.T) {
	r, ok := RuleByID("dispute_insured_legal_threat")
	if !ok {
		t.Fatal("expected rule to exist")
	}
	if r.Kind != KindNegative || r.CustomerType != CustomerInsured {
		t.Errorf("unexpected rule attributes: kind=%s customerType=%s", r.Kind, r.CustomerType)
	}

	if _, ok := RuleByID("no_such_rule"); ok {
		t.Error("expected lookup miss")
	}
}

func TestRulesFor_ScenarioMembership(t *testing.T) {
	// A multi-scenario rule must be returned for every scenario it names.
	for _, sc := range []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling} {
		found := false
		for _, r := range RulesFor(sc, CustomerNeutral, "") {
			if r.ID == "sales_neutral_passive_listening" {
				found = true
			}
		}
		if !found {
			t.Errorf("multi-scenario rule missing for %s", sc)
		}
	}

	// A single-scenario rule must not leak into other scenarios.
	for _, r := range RulesFor(ScenarioPhoneInvite, CustomerSkeptical, "") {
		if r.ID == "dispute_skeptical_pre_existing" {
			t.Error("objection-handling rule returned for phone_invite")
		}
	}
}

func TestRulesFor_KindFilter(t *testing.T) {
	for _, r := range RulesFor(ScenarioProductMarketing, CustomerSkeptical, KindNegative) {
		if r.Kind != KindNegative {
			t.Errorf("kind filter leaked %s rule %s", r.Kind, r.ID)
		}
	}
	for _, r := range RulesFor(ScenarioProductMarketing, CustomerSkeptical, KindPositive) {
		if r.Kind != KindPositive {
			t.Errorf("kind filter leaked %s rule %s", r.Kind, r.ID)
		}
	}
}

func TestRulesFor_CustomerTypeFilter(t *testing.T) {
	for _, r := range RulesFor(ScenarioPhoneInvite, CustomerAvoidant, "") {
		if r.Kind == KindNegative && r.CustomerType != CustomerAvoidant {
			t.Errorf("negative rule %s for wrong customer type %s", r.ID, r.CustomerType)
		}
	}
}

func TestRulesForSpeaker_DualTrack(t *testing.T) {
	// Customer speech is only ever tested against resistance patterns,
	// trainee speech only against trust-building patterns.
	customerRules, err := RulesForSpeaker(SpeakerCustomer, ScenarioProductMarketing, CustomerSkeptical)
	if err != nil {
		t.Fatalf("customer dispatch: %v", err)
	}
	if len(customerRules) == 0 {
		t.Fatal("expected candidate rules for customer speech")
	}
	for _, r := range customerRules {
		if r.Kind != KindNegative {
			t.Errorf("customer track returned %s rule %s", r.Kind, r.ID)
		}
	}

	traineeRules, err := RulesForSpeaker(SpeakerTrainee, ScenarioProductMarketing, CustomerSkeptical)
	if err != nil {
		t.Fatalf("trainee dispatch: %v", err)
	}
	if len(traineeRules) == 0 {
		t.Fatal("expected candidate rules for trainee speech")
	}
	for _, r := range traineeRules {
		if r.Kind != KindPositive {
			t.Errorf("trainee track returned %s rule %s", r.Kind, r.ID)
		}
	}
}

func TestRulesForSpeaker_UnknownRole(t *testing.T) {
	if _, err := RulesForSpeaker("observer", ScenarioPhoneInvite, CustomerNeutral); err == nil {
		t.Fatal("expected error for unknown speaker role")
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseScenario("phone_invite"); err != nil {
		t.Errorf("valid scenario rejected: %v", err)
	}
	if _, err := ParseScenario("door_to_door"); err == nil {
		t.Error("invalid scenario accepted")
	}
	if _, err := ParseCustomerType("has_insurance"); err != nil {
		t.Errorf("valid customer type rejected: %v", err)
	}
	if _, err := ParseCustomerType("angry"); err == nil {
		t.Error("invalid customer type accepted")
	}
	if _, err := ParseSpeaker("customer"); err != nil {
		t.Errorf("valid speaker rejected: %v", err)
	}
	if _, err := ParseSpeaker("assistant"); err == nil {
		t.Error("invalid speaker accepted")
	}
}
