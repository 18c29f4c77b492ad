package quizextractor

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	// questionStartPattern opens the span wrapping the question text.
	questionStartPattern = regexp.MustCompile(`<span[^>]*class="[^"]*M7eMe[^"]*"[^>]*>`)

	// optionPattern captures the text of one answer option span.
	optionPattern = regexp.MustCompile(`<span[^>]*class="[^"]*aDTYNe[^"]*"[^>]*>([^<]+)</span>`)

	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	edgeQuotePattern  = regexp.MustCompile(`^[\\"]+|[\\"]+$`)
	enumPrefixPattern = regexp.MustCompile(`^\d+\.\s*`)

	// optionMarkerPattern strips a leading letter marker such as "A.",
	// "(b)" or "c)" from an answer string.
	optionMarkerPattern = regexp.MustCompile(`^\([A-Da-d]\)\s*|^[A-Da-d][.)\]]\s*`)
)

// ExtractQuestionText pulls the question text out of one block. The wrapping
// span may itself contain styled sub-spans, so a naive search for the first
// closing tag would truncate the text; instead the scan keeps an explicit
// depth counter over open/close span tags and stops when depth returns to
// zero. This is a deliberate narrow lexical scan, not an HTML parser: the
// export markup is not well formed enough for one.
//
// Returns ok=false when the question marker is missing or the span never
// closes; callers substitute a positional placeholder in that case.
func ExtractQuestionText(block string) (string, bool) {
	start := questionStartPattern.FindStringIndex(block)
	if start == nil {
		return "", false
	}

	content := block[start[1]:]
	depth := 1
	pos := 0
	for depth > 0 && pos < len(content) {
		nextOpen := indexFrom(content, "<span", pos)
		nextClose := indexFrom(content, "</span>", pos)

		if nextClose == -1 {
			break
		}
		if nextOpen != -1 && nextOpen < nextClose {
			depth++
			pos = nextOpen + len("<span")
			continue
		}
		depth--
		if depth == 0 {
			return cleanQuestionText(content[:nextClose]), true
		}
		pos = nextClose + len("</span>")
	}
	return "", false
}

// indexFrom is strings.Index offset by a starting position.
func indexFrom(s, substr string, from int) int {
	idx := strings.Index(s[from:], substr)
	if idx == -1 {
		return -1
	}
	return idx + from
}

func cleanQuestionText(raw string) string {
	text := tagPattern.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.TrimSpace(text)
	text = edgeQuotePattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	text = enumPrefixPattern.ReplaceAllString(text, "")
	return text
}

// ExtractOptions collects the answer options of one block: every span
// carrying the option marker, cleaned, deduplicated by exact string match,
// and sorted by leading character. The sort is a display-order heuristic
// carried over from the source tool ("A." before "B."), not alphabetic
// correctness, and is kept for compatibility.
func ExtractOptions(block string) []string {
	matches := optionPattern.FindAllStringSubmatch(block, -1)

	var options []string
	for _, m := range matches {
		opt := whitespacePattern.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		opt = edgeQuotePattern.ReplaceAllString(opt, "")
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		if !containsString(options, opt) {
			options = append(options, opt)
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return leadRune(options[i]) < leadRune(options[j])
	})
	return options
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// leadRune returns the first rune of s, or 'Z' for an empty string so that
// empties sort last.
func leadRune(s string) rune {
	if s == "" {
		return 'Z'
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// StripOptionMarker removes a leading option letter ("A.", "(b)", "c]")
// and residual edge quotes from an answer string.
func StripOptionMarker(answer string) string {
	if answer == "" {
		return ""
	}
	clean := optionMarkerPattern.ReplaceAllString(answer, "")
	clean = edgeQuotePattern.ReplaceAllString(strings.TrimSpace(clean), "")
	return clean
}
