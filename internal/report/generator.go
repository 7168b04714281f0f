package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/formosa-labs/rapport/internal/rapport"
)

const reportMaxTokens = 2000

const coachSystemPrompt = "你是一位專業的保險業務訓練教練，精通薩提爾溝通模式和 NLP 技巧。" +
	"請用繁體中文回覆，並使用台灣的用語習慣。條列式呈現，避免學術術語，要讓業務員能直接理解應用。"

// Persona describes the simulated customer the trainee faced.
type Persona struct {
	Gender string
	Age    int
	Job    string
}

// Generator turns an analyzed session into a narrative coaching report.
type Generator struct {
	provider Provider
	logger   *slog.Logger
}

func NewGenerator(provider Provider, logger *slog.Logger) *Generator {
	return &Generator{provider: provider, logger: logger}
}

// Generate builds the coaching prompt from the transcript and the engine's
// structured summary and returns the model's report.
func (g *Generator) Generate(ctx context.Context, turns []rapport.Turn, scenario rapport.Scenario, customerType rapport.CustomerType, persona Persona, engineSummary string) (string, error) {
	prompt := BuildPrompt(turns, scenario, customerType, persona, engineSummary)

	text, err := g.provider.Complete(ctx, coachSystemPrompt, prompt, reportMaxTokens)
	if err != nil {
		return "", fmt.Errorf("generate report via %s: %w", g.provider.Name(), err)
	}

	g.logger.Info("coaching report generated",
		"provider", g.provider.Name(),
		"turns", len(turns),
		"report_chars", len(text))
	return text, nil
}

// BuildPrompt assembles the analysis request sent to the model. The engine
// summary is appended so the narrative stays anchored to the deterministic
// scoring rather than the model's own reading of the transcript.
func BuildPrompt(turns []rapport.Turn, scenario rapport.Scenario, customerType rapport.CustomerType, persona Persona, engineSummary string) string {
	var b strings.Builder

	b.WriteString("請分析以下這段保險業務員與客戶的對話練習：\n\n")

	b.WriteString("客戶設定：\n")
	if persona.Gender != "" {
		fmt.Fprintf(&b, "- 性別：%s\n", genderLabel(persona.Gender))
	}
	if persona.Age > 0 {
		fmt.Fprintf(&b, "- 年齡：%d 歲\n", persona.Age)
	}
	if persona.Job != "" {
		fmt.Fprintf(&b, "- 職業：%s\n", persona.Job)
	}
	fmt.Fprintf(&b, "- 態度：%s\n", customerTypeLabel(customerType))
	fmt.Fprintf(&b, "- 情境：%s\n\n", scenarioLabel(scenario))

	b.WriteString("對話內容：\n")
	for _, turn := range turns {
		fmt.Fprintf(&b, "%s：%s\n", turnLabel(turn.Speaker), turn.Text)
	}
	b.WriteString("\n")

	if engineSummary != "" {
		b.WriteString("系統已完成的客情變化分析（請以此為依據，不要重新評分）：\n")
		b.WriteString(engineSummary)
		b.WriteString("\n")
	}

	b.WriteString(`請提供以下分析：

1. 薩提爾溝通姿態分析
   - 指責姿態：是否使用命令、要求的語言
   - 討好姿態：是否過度道歉
   - 超理智姿態：是否只談數據缺少情感
   - 一致性溝通：是否真誠直接

2. NLP 技巧運用
   - 呼應技巧：是否重複客戶用詞建立共鳴
   - 引導技巧：是否用引導語言讓客戶想像

3. 提問品質
   - 開放式vs封閉式問題比例
   - 是否深入探詢需求

4. 應對策略評估
   - 策略是否符合客戶態度
   - 做得好的地方
   - 需要改進的地方

5. 具體改進建議（3-5個，附範例對話）`)

	return b.String()
}

func genderLabel(g string) string {
	if g == "male" {
		return "男性"
	}
	return "女性"
}

func customerTypeLabel(ct rapport.CustomerType) string {
	switch ct {
	case rapport.CustomerSkeptical:
		return "質疑"
	case rapport.CustomerAvoidant:
		return "迴避"
	case rapport.CustomerInsured:
		return "已有保險"
	default:
		return "中立"
	}
}

func scenarioLabel(sc rapport.Scenario) string {
	switch sc {
	case rapport.ScenarioPhoneInvite:
		return "電話約訪"
	case rapport.ScenarioProductMarketing:
		return "商品推銷"
	default:
		return "客訴處理"
	}
}

func turnLabel(s rapport.Speaker) string {
	if s == rapport.SpeakerTrainee {
		return "業務員"
	}
	return "客戶"
}
