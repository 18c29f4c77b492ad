package quizextractor

import "strings"

// Classification thresholds over the normalized 0-100 score.
const (
	hardThreshold   = 45.0
	mediumThreshold = 25.0
)

// ClassifyDifficulty buckets one question into easy, medium or hard. The
// score is a pure function of the question text and its options: it
// accumulates across seven independent dimensions, each taking the maximum
// (or capped sum, where noted) over its table, then normalizes against the
// fixed sum of the dimension maxima.
func ClassifyDifficulty(question string, options []string, correctAnswer string) string {
	score := difficultyScore(question, options)
	normalized := float64(score) / float64(maxPossibleScore) * 100

	switch {
	case normalized >= hardThreshold:
		return DifficultyHard
	case normalized >= mediumThreshold:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

func difficultyScore(question string, options []string) int {
	lower := strings.ToLower(strings.TrimSpace(question))

	score := cognitiveScore(lower)
	score += structureScore(lower)
	score += domainScore(lower)
	score += linguisticScore(question, lower)
	score += answerComplexityScore(options)
	score += contextScore(lower)
	score += hardSignatureScore(lower)
	return score
}

// Dimension 1: highest matching cognitive tier.
func cognitiveScore(lower string) int {
	best := 0
	for _, tier := range cognitiveLevels {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) && tier.weight > best {
				best = tier.weight
			}
		}
	}
	return best
}

// Dimension 2: highest matching structural pattern.
func structureScore(lower string) int {
	best := 0
	for _, entry := range structureIndicators {
		for _, re := range entry.patterns {
			if re.MatchString(lower) && entry.weight > best {
				best = entry.weight
			}
		}
	}
	return best
}

// Dimension 3: highest matching vocabulary tier.
func domainScore(lower string) int {
	best := 0
	for _, tier := range domainComplexity {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) && tier.weight > best {
				best = tier.weight
			}
		}
	}
	return best
}

// Dimension 4: word-count bonus, technical-term hits (capped at 3) and
// complex-sentence connectors.
func linguisticScore(question, lower string) int {
	score := 0

	wordCount := len(strings.Fields(question))
	if wordCount > 30 {
		score += 2
	} else if wordCount > 20 {
		score += 1
	}

	hits := 0
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	if hits > 3 {
		hits = 3
	}
	score += hits

	for _, re := range complexStructures {
		if re.MatchString(lower) {
			score++
		}
	}
	return score
}

// Dimension 5: average option word length, technical terms in options
// (capped at 2) and numeric/formula shapes.
func answerComplexityScore(options []string) int {
	if len(options) == 0 {
		return 0
	}
	score := 0

	stripped := make([]string, len(options))
	for i, opt := range options {
		stripped[i] = optionLetterPattern.ReplaceAllString(opt, "")
	}

	totalWords := 0
	for _, opt := range stripped {
		totalWords += len(strings.Fields(opt))
	}
	avgWords := float64(totalWords) / float64(len(stripped))
	if avgWords > 10 {
		score += 2
	} else if avgWords > 5 {
		score += 1
	}

	termHits := 0
	for _, opt := range stripped {
		optLower := strings.ToLower(opt)
		for _, term := range technicalTerms {
			if strings.Contains(optLower, term) {
				termHits++
			}
		}
	}
	if termHits > 2 {
		termHits = 2
	}
	score += termHits

	for _, opt := range stripped {
		for _, re := range numericalPatterns {
			if re.MatchString(opt) {
				score++
				break
			}
		}
	}
	return score
}

// Dimension 6: regional and policy prior-knowledge hits, policy weighted
// double, combined cap of 4.
func contextScore(lower string) int {
	score := 0
	for _, ctx := range philippineContext {
		if strings.Contains(lower, ctx) {
			score++
		}
	}
	for _, law := range educationalLaw {
		if strings.Contains(lower, law) {
			score += 2
		}
	}
	if score > maxContextScore {
		score = maxContextScore
	}
	return score
}

// Dimension 7: single highest-weight matching hard signature.
func hardSignatureScore(lower string) int {
	best := 0
	for _, sig := range hardSignatures {
		for _, re := range sig.patterns {
			if re.MatchString(lower) {
				if sig.weight > best {
					best = sig.weight
				}
				break
			}
		}
	}
	return best
}
