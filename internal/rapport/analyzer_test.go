package rapport

import (
	"strings"
	"testing"
)

func TestAnalyze_SkepticalColdCall(t *testing.T) {
	// Skeptical customer challenges the data source, trainee recovers with
	// empathy. Exercises the low-trust amplification and damping regimes in a
	// single conversation.
	turns := []Turn{
		{Speaker: SpeakerCustomer, Text: "你是誰給你電話的？個資哪裡來的？"},
		{Speaker: SpeakerTrainee, Text: "我理解您的疑慮，這是您之前填過的問卷資料。"},
	}

	result, err := Analyze(turns, ScenarioPhoneInvite, CustomerSkeptical)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(result.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(result.Events))
	}

	challenge := result.Events[0]
	if challenge.Rule == nil || challenge.Rule.ID != "tele_skeptical_data_source" {
		t.Errorf("turn 1 primary rule = %v, want tele_skeptical_data_source", challenge.Rule)
	}
	if challenge.ScoreBefore != 40 || challenge.ScoreAfter != 28 {
		t.Errorf("turn 1 scores = %d → %d, want 40 → 28", challenge.ScoreBefore, challenge.ScoreAfter)
	}
	if challenge.Change != -12 {
		t.Errorf("turn 1 change = %d, want -12", challenge.Change)
	}

	recovery := result.Events[1]
	if recovery.Rule == nil || recovery.Rule.ID != "positive_empathy_expression" {
		t.Errorf("turn 2 primary rule = %v, want positive_empathy_expression", recovery.Rule)
	}
	// +6 nominal, damped to +4 because the score sits below 30.
	if recovery.ScoreBefore != 28 || recovery.ScoreAfter != 32 {
		t.Errorf("turn 2 scores = %d → %d, want 28 → 32", recovery.ScoreBefore, recovery.ScoreAfter)
	}
	if recovery.Change != 4 {
		t.Errorf("turn 2 change = %d, want 4", recovery.Change)
	}

	wantTrajectory := []int{40, 28, 32}
	if len(result.Trajectory) != len(wantTrajectory) {
		t.Fatalf("trajectory length = %d, want %d", len(result.Trajectory), len(wantTrajectory))
	}
	for i, want := range wantTrajectory {
		if result.Trajectory[i] != want {
			t.Errorf("trajectory[%d] = %d, want %d", i, result.Trajectory[i], want)
		}
	}

	if result.FinalScore != 32 {
		t.Errorf("final score = %d, want 32", result.FinalScore)
	}

	// Only the −12 swing crosses the critical-moment threshold.
	if len(result.CriticalMoments) != 1 {
		t.Fatalf("expected 1 critical moment, got %d", len(result.CriticalMoments))
	}
	if result.CriticalMoments[0].Utterance != turns[0].Text {
		t.Errorf("critical moment points at wrong utterance: %q", result.CriticalMoments[0].Utterance)
	}
}

func TestAnalyze_TrajectoryLength(t *testing.T) {
	turns := []Turn{
		{Speaker: SpeakerCustomer, Text: "喂，哪位？"},
		{Speaker: SpeakerTrainee, Text: "您好，我是保險公司的專員。"},
		{Speaker: SpeakerCustomer, Text: "我在忙"},
	}

	result, err := Analyze(turns, ScenarioPhoneInvite, CustomerAvoidant)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Trajectory) != len(turns)+1 {
		t.Errorf("trajectory length = %d, want %d", len(result.Trajectory), len(turns)+1)
	}
	if result.Trajectory[0] != 45 {
		t.Errorf("trajectory seed = %d, want 45", result.Trajectory[0])
	}
}

func TestAnalyze_DegenerateTurns(t *testing.T) {
	// Empty and sub-minimum utterances contribute a trajectory entry but no
	// event; the score carries through unchanged.
	turns := []Turn{
		{Speaker: SpeakerCustomer, Text: ""},
		{Speaker: SpeakerCustomer, Text: "   "},
		{Speaker: SpeakerCustomer, Text: "喔"},
	}

	result, err := Analyze(turns, ScenarioProductMarketing, CustomerNeutral)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Events) != 0 {
		t.Errorf("expected no events, got %d", len(result.Events))
	}
	for i, score := range result.Trajectory {
		if score != 50 {
			t.Errorf("trajectory[%d] = %d, want flat 50", i, score)
		}
	}
	if result.FinalScore != 50 {
		t.Errorf("final score = %d, want 50", result.FinalScore)
	}
}

func TestAnalyze_NoMatchesFlatTrajectory(t *testing.T) {
	turns := []Turn{
		{Speaker: SpeakerCustomer, Text: "今天天氣還不錯"},
		{Speaker: SpeakerTrainee, Text: "是啊，出太陽了"},
	}

	result, err := Analyze(turns, ScenarioObjectionHandling, CustomerInsured)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Events) != 0 {
		t.Errorf("expected no events for keyword-free small talk, got %d", len(result.Events))
	}
	if result.FinalScore != 45 {
		t.Errorf("final score = %d, want unchanged 45", result.FinalScore)
	}
}

func TestAnalyze_InvalidInputs(t *testing.T) {
	turns := []Turn{{Speaker: SpeakerCustomer, Text: "我不需要保險"}}

	if _, err := Analyze(turns, "door_to_door", CustomerNeutral); err == nil {
		t.Error("expected error for unknown scenario")
	}
	if _, err := Analyze(turns, ScenarioPhoneInvite, "angry"); err == nil {
		t.Error("expected error for unknown customer type")
	}
	if _, err := Analyze([]Turn{{Speaker: "observer", Text: "我不需要保險"}}, ScenarioPhoneInvite, CustomerNeutral); err == nil {
		t.Error("expected error for unknown speaker role")
	}
}

func TestAnalyzeUtterance_DualTrackIsolation(t *testing.T) {
	// A customer resistance phrase spoken by the trainee must not fire, and
	// vice versa.
	asCustomer, err := AnalyzeUtterance("我不需要保險", ScenarioPhoneInvite, CustomerSkeptical, SpeakerCustomer)
	if err != nil {
		t.Fatalf("customer track: %v", err)
	}
	if !asCustomer.Matched() {
		t.Error("resistance phrase from customer should match")
	}

	asTrainee, err := AnalyzeUtterance("我不需要保險", ScenarioPhoneInvite, CustomerSkeptical, SpeakerTrainee)
	if err != nil {
		t.Fatalf("trainee track: %v", err)
	}
	if asTrainee.Matched() {
		t.Error("resistance phrase from trainee must not match trust-building rules")
	}
}

func TestAnalyzeFrom_ExplicitSeed(t *testing.T) {
	turns := []Turn{
		{Speaker: SpeakerTrainee, Text: "我理解您的想法，我們不急，您慢慢考慮。"},
	}

	result, err := AnalyzeFrom(turns, ScenarioProductMarketing, CustomerNeutral, 75)
	if err != nil {
		t.Fatalf("AnalyzeFrom: %v", err)
	}
	if result.Trajectory[0] != 75 {
		t.Errorf("trajectory seed = %d, want 75", result.Trajectory[0])
	}
	if result.FinalScore <= 75 {
		t.Errorf("trust-building turn should raise the score, got %d", result.FinalScore)
	}
}

func TestSummarize(t *testing.T) {
	turns := []Turn{
		{Speaker: SpeakerCustomer, Text: "你是誰給你電話的？個資哪裡來的？"},
		{Speaker: SpeakerTrainee, Text: "我理解您的疑慮，這是您之前填過的問卷資料。"},
	}
	result, err := Analyze(turns, ScenarioPhoneInvite, CustomerSkeptical)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	out := Summarize(result.Events, result.FinalScore, 40)

	for _, want := range []string{
		"=== 客情管理分析 ===",
		"初始客情分數：40",
		"最終客情分數：32",
		"總體變化：-8",
		"正向事件（1次）",
		"負向事件（1次）",
		"業務員說",
		"客戶說",
		"識別模式：信任測試 (Trust Test)",
		"心理分析：",
		"40 → 28 (-12)",
		"28 → 32 (+4)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\n%s", want, out)
		}
	}
}

func TestSummarize_NoEvents(t *testing.T) {
	out := Summarize(nil, 50, 50)
	if !strings.Contains(out, "未偵測到顯著的客情變化事件") {
		t.Errorf("no-event summary missing sentinel line:\n%s", out)
	}
	if !strings.Contains(out, "總體變化：0") {
		t.Errorf("no-event summary missing zero change line:\n%s", out)
	}
}

func TestSummarize_TruncatesLongQuote(t *testing.T) {
	long := strings.Repeat("這個方案我真的要想很久", 10)
	events := []RapportEvent{{
		Speaker:     SpeakerCustomer,
		Utterance:   long,
		ScoreBefore: 50,
		ScoreAfter:  45,
		Change:      -5,
	}}

	out := Summarize(events, 45, 50)
	if strings.Contains(out, long) {
		t.Error("summary should truncate long quotes")
	}
	if !strings.Contains(out, "...") {
		t.Error("truncated quote should carry an ellipsis")
	}
}
