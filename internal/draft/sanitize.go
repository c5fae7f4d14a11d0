package draft

import (
	"regexp"
	"strings"
)

const (
	MaxWords = 120

	// When a draft runs long, it is cut at the last sentence boundary
	// past this share of the word limit.
	truncateFloor = 0.8
)

var buzzwordSynonyms = []struct {
	term  string
	plain string
}{
	{"leverage", "use"},
	{"utilize", "use"},
	{"synergy", "fit"},
	{"cutting-edge", "modern"},
	{"state-of-the-art", "modern"},
	{"best-in-class", "strong"},
	{"game-changing", "useful"},
	{"revolutionary", "new"},
	{"disruptive", "new"},
	{"innovative", "fresh"},
	{"seamless", "smooth"},
	{"world-class", "strong"},
	{"supercharge", "improve"},
	{"empower", "help"},
}

var salesCliches = []string{
	"touching base",
	"just checking in",
	"circle back",
	"low-hanging fruit",
	"move the needle",
	"think outside the box",
	"at the end of the day",
	"win-win",
	"quick win",
	"take it to the next level",
}

var (
	buzzwordPatterns = compileTermPatterns()
	clichePatterns   = compileClichePatterns()
	doubleSpaces     = regexp.MustCompile(`[ \t]{2,}`)
	spacedPunct      = regexp.MustCompile(` +([.,!?;])`)
)

func compileTermPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(buzzwordSynonyms))
	for _, b := range buzzwordSynonyms {
		patterns = append(patterns, wholeWord(b.term))
	}
	return patterns
}

func compileClichePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(salesCliches))
	for _, c := range salesCliches {
		patterns = append(patterns, wholeWord(c))
	}
	return patterns
}

func wholeWord(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// applySubstitutions swaps buzzwords for plain language and strips sales
// cliches outright, whole-word and case-insensitive.
func applySubstitutions(s string) string {
	for i, pattern := range buzzwordPatterns {
		s = pattern.ReplaceAllString(s, buzzwordSynonyms[i].plain)
	}
	for _, pattern := range clichePatterns {
		s = pattern.ReplaceAllString(s, "")
	}
	s = doubleSpaces.ReplaceAllString(s, " ")
	s = spacedPunct.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

func enforceWordLimit(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}

	floor := int(truncateFloor * float64(maxWords))
	cut := 0
	for i, w := range words[:maxWords] {
		if endsSentence(w) && i+1 >= floor {
			cut = i + 1
		}
	}
	if cut == 0 {
		// No sentence boundary in the allowed window; hard cut.
		cut = maxWords
	}
	return strings.Join(words[:cut], " ")
}

func endsSentence(word string) bool {
	return strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") || strings.HasSuffix(word, "?")
}

// WordCount counts whitespace-separated words, the same way the limit is
// enforced.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
