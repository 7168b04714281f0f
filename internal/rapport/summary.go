package rapport

import (
	"fmt"
	"strings"
)

// quoteMaxRunes bounds the length of utterance quotes in the summary.
const quoteMaxRunes = 50

// Summarize renders a deterministic, structured report of a conversation's
// rapport trajectory. The string is the hand-off artifact to a narrative
// generator: it carries every matched rule's intent classification and (for
// negative events) psychological rationale, so a downstream consumer never
// needs to re-derive what happened, only explain it.
func Summarize(events []RapportEvent, finalScore, initialScore int) string {
	var b strings.Builder

	b.WriteString("=== 客情管理分析 ===\n\n")
	fmt.Fprintf(&b, "初始客情分數：%d\n", initialScore)
	fmt.Fprintf(&b, "最終客情分數：%d\n", finalScore)
	fmt.Fprintf(&b, "總體變化：%s\n\n", signed(finalScore-initialScore))

	if len(events) == 0 {
		b.WriteString("本次對話未偵測到顯著的客情變化事件。\n")
		return b.String()
	}

	fmt.Fprintf(&b, "偵測到 %d 個客情變化事件：\n\n", len(events))

	var positive, negative []RapportEvent
	for _, ev := range events {
		if ev.Change > 0 {
			positive = append(positive, ev)
		} else if ev.Change < 0 {
			negative = append(negative, ev)
		}
	}

	if len(positive) > 0 {
		fmt.Fprintf(&b, "正向事件（%d次）：\n", len(positive))
		for i, ev := range positive {
			fmt.Fprintf(&b, "%d. %s說：「%s」\n", i+1, speakerLabel(ev.Speaker), truncate(ev.Utterance, quoteMaxRunes))
			if ev.Rule != nil {
				fmt.Fprintf(&b, "   識別模式：%s\n", ev.Rule.Intent)
			}
			fmt.Fprintf(&b, "   客情變化：%d → %d (%s)\n\n", ev.ScoreBefore, ev.ScoreAfter, signed(ev.Change))
		}
	}

	if len(negative) > 0 {
		fmt.Fprintf(&b, "負向事件（%d次）：\n", len(negative))
		for i, ev := range negative {
			fmt.Fprintf(&b, "%d. %s說：「%s」\n", i+1, speakerLabel(ev.Speaker), truncate(ev.Utterance, quoteMaxRunes))
			if ev.Rule != nil {
				fmt.Fprintf(&b, "   識別模式：%s\n", ev.Rule.Intent)
				fmt.Fprintf(&b, "   心理分析：%s\n", ev.Rule.Psychology)
			}
			fmt.Fprintf(&b, "   客情變化：%d → %d (%d)\n\n", ev.ScoreBefore, ev.ScoreAfter, ev.Change)
		}
	}

	return b.String()
}

func speakerLabel(s Speaker) string {
	if s == SpeakerTrainee {
		return "業務員"
	}
	return "客戶"
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
