package rapport

import (
	"regexp"
	"strings"
)

// Disambiguation resolves idioms whose surface form is identical across
// opposite intents. Keyword matching alone cannot tell a polite 不好意思 from
// a refusal, or genuine deliberation from a soft rejection.
type Disambiguation struct {
	// PoliteOpening: an apology-adjacent phrase used as a conversational
	// opener rather than a refusal.
	PoliteOpening bool
	// Rejection: the utterance's pragmatic force is refusal even though its
	// literal content is polite or non-committal.
	Rejection bool
	// GenuineConsideration: a "think it over" phrase that names a concrete
	// referent, signalling real deliberation.
	GenuineConsideration bool
}

var (
	considerConcreteRe = regexp.MustCompile(`考慮.{1,5}(預算|時間|家人|條款|內容|方案)`)
	considerBareRe     = regexp.MustCompile(`^.{0,10}(再)?考慮(一下|看看)?$`)
)

// Disambiguate classifies the ambiguous idioms in an utterance. It is a pure
// pass, kept separate from the matcher so new ambiguous phrases can be added
// without touching the keyword/structural pipeline.
func Disambiguate(utterance string) Disambiguation {
	var d Disambiguation

	if strings.Contains(utterance, "不好意思") {
		switch {
		// Sentence-initial and followed by a request: a politeness particle.
		case strings.HasPrefix(utterance, "不好意思") &&
			(strings.Contains(utterance, "請問") || strings.Contains(utterance, "想")):
			d.PoliteOpening = true
		// Followed by an explicit refusal verb: a softened rejection.
		case strings.Contains(utterance, "不需要") || strings.Contains(utterance, "不用"):
			d.Rejection = true
		}
	}

	if strings.Contains(utterance, "考慮") {
		if considerConcreteRe.MatchString(utterance) {
			d.GenuineConsideration = true
		} else if considerBareRe.MatchString(utterance) {
			d.Rejection = true
		}
	}

	// A bare 了解 with nothing after it is a topic terminator.
	if trimmed := strings.TrimSpace(utterance); trimmed == "了解" || trimmed == "了解。" {
		d.Rejection = true
	}

	return d
}
