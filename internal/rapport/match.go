package rapport

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minMatchRunes guards against empty or noise input; anything shorter never
// matches a rule.
const minMatchRunes = 2

// shortSentenceMaxRunes is the cutoff for the short-sentence structural check,
// used to recognise brush-offs and hurry-ups.
const shortSentenceMaxRunes = 20

// Marker sets for the structural checks. Mandarin mixes punctuation and
// particles, so each check accepts both.
var (
	interrogativeRe = regexp.MustCompile(`誰|什麼|為什麼|怎麼|哪裡|嗎`)
	comparativeRe   = regexp.MustCompile(`比|更|較|還`)
	negationRe      = regexp.MustCompile(`不|沒|別|甭|免`)
	openQuestionRe  = regexp.MustCompile(`您覺得|您認為|您的想法|請問|想請教|您希望|您需要`)
	empathyRe       = regexp.MustCompile(`我理解|我明白|我了解|我知道|我感覺|我能體會`)
)

// Matches decides whether an utterance exhibits the pattern a rule describes.
// The checks are layered and short-circuit: keyword gate, idiom
// disambiguation, then any structural checks the rule declares.
func Matches(utterance string, rule *Rule) bool {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if utf8.RuneCountInString(normalized) < minMatchRunes {
		return false
	}

	// Keyword gate: necessary but not sufficient.
	hasKeyword := false
	for _, kw := range rule.Keywords {
		if strings.Contains(normalized, strings.ToLower(kw)) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return false
	}

	// Idiom override: lexically identical phrases with opposite intents must
	// be resolved before the keyword gate is trusted.
	d := Disambiguate(utterance)
	if strings.Contains(normalized, "不好意思") {
		if strings.Contains(rule.Intent, "拒絕") && d.PoliteOpening {
			return false
		}
		if strings.Contains(rule.Intent, "禮貌") && d.Rejection {
			return false
		}
	}
	if strings.Contains(normalized, "考慮") {
		if d.GenuineConsideration && strings.Contains(rule.Intent, "Soft Rejection") {
			return false
		}
	}

	// Structural checks, each applied only if the rule declares the tag.
	if rule.hasPattern(PatternShortSentence) &&
		utf8.RuneCountInString(utterance) > shortSentenceMaxRunes {
		return false
	}
	if rule.hasPattern(PatternInterrogative) {
		hasMark := strings.Contains(utterance, "?") || strings.Contains(utterance, "？")
		if !hasMark && !interrogativeRe.MatchString(utterance) {
			return false
		}
	}
	if rule.hasPattern(PatternComparative) && !comparativeRe.MatchString(utterance) {
		return false
	}
	if rule.hasPattern(PatternNegation) && !negationRe.MatchString(utterance) {
		return false
	}
	if rule.hasPattern(PatternOpenQuestion) && !openQuestionRe.MatchString(utterance) {
		return false
	}
	if rule.hasPattern(PatternEmpathy) && !empathyRe.MatchString(utterance) {
		return false
	}

	return true
}
