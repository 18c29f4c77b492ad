package quizextractor

import (
	"regexp"
	"strings"
)

// Resolution methods, in the order the resolver tries them. The method is
// surfaced for diagnostics only; ResolveDefault marks a low-confidence guess.
const (
	ResolveStatusProximity = "status-proximity"
	ResolveAnswerHeading   = "answer-heading"
	ResolveAriaChecked     = "aria-checked"
	ResolveAriaLabel       = "aria-label"
	ResolveDefault         = "default"
)

// Resolution is the outcome of correct-answer inference for one block.
type Resolution struct {
	Answer string
	Method string
}

// Answer-status indicators. The export localizes these ("Tama"/"Mali" in
// Filipino forms, "Correct"/"Incorrect" in English ones), so both variants
// are recognized.
var statusPatterns = []struct {
	re      *regexp.Regexp
	correct bool
}{
	{regexp.MustCompile(`(?i)<div class="fKfAyc">\s*Tama\s*</div>`), true},
	{regexp.MustCompile(`(?i)<div class="fKfAyc">\s*Correct\s*</div>`), true},
	{regexp.MustCompile(`(?i)<div class="fKfAyc">\s*Mali\s*</div>`), false},
	{regexp.MustCompile(`(?i)<div class="fKfAyc">\s*Incorrect\s*</div>`), false},
}

// Heading that announces the correct answer after an incorrect response.
var answerHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<div class="fD9txe"[^>]*role="heading"[^>]*aria-level="3"[^>]*>\s*Tamang sagot\s*</div>`),
	regexp.MustCompile(`(?i)<div class="fD9txe"[^>]*role="heading"[^>]*aria-level="3"[^>]*>\s*Correct answer\s*</div>`),
}

var ariaCheckedPattern = regexp.MustCompile(`aria-checked="true"[^>]*data-value="([^"]+)"`)

var ariaLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)aria-label="Correct"`),
	regexp.MustCompile(`(?i)aria-label="Tama"`),
}

// ResolveAnswer determines which of the extracted options is the correct
// answer for one block. The markup never links the correctness indicator to
// an option structurally, so the resolver layers heuristics:
//
//  1. An "answered correctly" status indicator: pick the option closest to
//     the indicator within a ±1000 character window (the indicator renders
//     adjacent to the selected option).
//  2. An "answered incorrectly" status: find the "correct answer" heading
//     and take the first option occurring verbatim in the 2000 characters
//     after it.
//  3. An aria-checked attribute whose data-value matches an option by
//     substring containment in either direction.
//  4. An aria-label correctness indicator, with a tighter ±500 window.
//  5. Default to the first option in sorted order, flagged low-confidence.
//
// The proximity heuristic is format-fragile by nature (options packed close
// together can be misattributed); the fixed window is kept as-is for
// compatibility with the source tool and is not validated further.
func ResolveAnswer(block string, options []string) Resolution {
	if len(options) == 0 {
		return Resolution{}
	}

	statusCorrect := false
	statusPos := -1
	for _, sp := range statusPatterns {
		if loc := sp.re.FindStringIndex(block); loc != nil {
			statusCorrect = sp.correct
			statusPos = loc[0]
			break
		}
	}

	if statusPos >= 0 && statusCorrect {
		if answer := nearestOption(block, options, statusPos, 1000); answer != "" {
			return Resolution{Answer: answer, Method: ResolveStatusProximity}
		}
	} else if statusPos >= 0 {
		for _, hp := range answerHeadingPatterns {
			loc := hp.FindStringIndex(block)
			if loc == nil {
				continue
			}
			after := block[loc[1]:]
			if len(after) > 2000 {
				after = after[:2000]
			}
			for _, opt := range options {
				if strings.Contains(after, opt) {
					return Resolution{Answer: opt, Method: ResolveAnswerHeading}
				}
			}
		}
	}

	// Fallback: an explicitly checked radio value.
	if m := ariaCheckedPattern.FindStringSubmatch(block); m != nil {
		value := m[1]
		for _, opt := range options {
			if strings.Contains(opt, value) || strings.Contains(value, opt) {
				return Resolution{Answer: opt, Method: ResolveAriaChecked}
			}
		}
	}

	// Fallback: accessibility-label indicators with a tighter window.
	for _, lp := range ariaLabelPatterns {
		for _, loc := range lp.FindAllStringIndex(block, -1) {
			start := loc[0] - 1000
			if start < 0 {
				start = 0
			}
			end := loc[1] + 1000
			if end > len(block) {
				end = len(block)
			}
			window := block[start:end]
			indicatorPos := strings.Index(window, block[loc[0]:loc[1]])

			for _, opt := range options {
				optionPos := strings.Index(window, opt)
				if optionPos < 0 {
					continue
				}
				if abs(optionPos-indicatorPos) < 500 {
					return Resolution{Answer: opt, Method: ResolveAriaLabel}
				}
			}
		}
	}

	return Resolution{Answer: options[0], Method: ResolveDefault}
}

// nearestOption picks the option whose first occurrence inside a window of
// ±radius characters around pos is closest to pos by absolute character
// distance. Returns "" when no option occurs in the window.
func nearestOption(block string, options []string, pos, radius int) string {
	start := pos - radius
	if start < 0 {
		start = 0
	}
	end := pos + radius
	if end > len(block) {
		end = len(block)
	}
	window := block[start:end]
	posInWindow := pos - start

	best := ""
	bestDistance := -1
	for _, opt := range options {
		optionPos := strings.Index(window, opt)
		if optionPos < 0 {
			continue
		}
		distance := abs(optionPos - posInWindow)
		if bestDistance < 0 || distance < bestDistance {
			bestDistance = distance
			best = opt
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
