package quizextractor

import "testing"

func TestClassifyDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		question string
		options  []string
		want     string
	}{
		{
			name:     "recall question is easy",
			question: "What is the capital of France?",
			options:  []string{"A. Paris", "B. London", "C. Berlin", "D. Madrid"},
			want:     DifficultyEasy,
		},
		{
			name:     "evaluation with domain vocabulary is medium",
			question: "Which is the most appropriate enzyme to evaluate in cellular respiration?",
			options:  []string{"A. ATP", "B. Glucose", "C. Catalase", "D. Water"},
			want:     DifficultyMedium,
		},
		{
			name:     "compound strategy signature is hard",
			question: "What teaching strategy will I need to employ to develop critical thinking and problem solving?",
			options:  []string{"A. Lecture", "B. Role playing", "C. Drill", "D. Copying notes"},
			want:     DifficultyHard,
		},
		{
			name:     "roman numeral grid is hard",
			question: "Which of the following apply? i, ii, iii and iv describe the curriculum development model and its effectiveness in the classroom.",
			options:  []string{"A. i, ii, iii and iv", "B. i and ii only", "C. ii, iii and iv only", "D. none"},
			want:     DifficultyHard,
		},
		{
			name:     "empty question is easy",
			question: "",
			options:  nil,
			want:     DifficultyEasy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDifficulty(tt.question, tt.options, "")
			if got != tt.want {
				t.Errorf("got %s, want %s (score %d)", got, tt.want, difficultyScore(tt.question, tt.options))
			}
		})
	}
}

func TestClassifyDifficultyIgnoresCorrectAnswer(t *testing.T) {
	q := "What is the capital of France?"
	opts := []string{"A. Paris", "B. London"}
	if ClassifyDifficulty(q, opts, "Paris") != ClassifyDifficulty(q, opts, "a completely different answer") {
		t.Fatal("classification must not depend on the resolved answer")
	}
}

func TestDifficultyScoreMonotonicUnderAddedSignals(t *testing.T) {
	base := "What is the capital of France?"
	opts := []string{"A. Paris", "B. London"}
	baseScore := difficultyScore(base, opts)

	suffixes := []string{
		"i, ii, iii and iv",
		"reader-response theory",
		"behaviorist learning theory",
		"what does inclusivity mean",
		"pygmalion effect on teacher expectations and student performance",
	}
	for _, suffix := range suffixes {
		score := difficultyScore(base+" "+suffix, opts)
		if score < baseScore {
			t.Errorf("adding %q lowered the score: %d < %d", suffix, score, baseScore)
		}
	}
}

func TestAnswerComplexityScore(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		want    int
	}{
		{"no options", nil, 0},
		{"short plain options", []string{"A. Yes", "B. No"}, 0},
		{
			// Two options score a numeric shape, one each.
			name:    "numeric shapes",
			options: []string{"A. 3.14", "B. 50%", "C. seven"},
			want:    2,
		},
		{
			// Technical term hits cap at 2 even with four matches.
			name:    "technical term cap",
			options: []string{"A. mitosis", "B. meiosis", "C. osmosis", "D. diffusion"},
			want:    2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := answerComplexityScore(tt.options); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContextScoreCapped(t *testing.T) {
	// Three policy hits at 2 points each must clamp to the dimension cap.
	got := contextScore("ra 10533 enhanced basic education act magna carta deped k-12")
	if got != maxContextScore {
		t.Fatalf("got %d, want cap %d", got, maxContextScore)
	}
}

func TestDifficultyTableIntegrity(t *testing.T) {
	if maxPossibleScore != 46 {
		t.Fatalf("normalization denominator = %d, want 46", maxPossibleScore)
	}

	prev := 0
	for _, tier := range cognitiveLevels {
		if tier.weight <= prev {
			t.Errorf("cognitive tier %q weight %d not increasing", tier.name, tier.weight)
		}
		if len(tier.keywords) == 0 {
			t.Errorf("cognitive tier %q has no keywords", tier.name)
		}
		prev = tier.weight
	}
	if prev != maxCognitiveScore {
		t.Errorf("top cognitive weight %d != %d", prev, maxCognitiveScore)
	}

	for _, sig := range hardSignatures {
		if sig.weight < 10 || sig.weight > maxHardScore {
			t.Errorf("hard signature %q weight %d out of range", sig.name, sig.weight)
		}
		if len(sig.patterns) == 0 {
			t.Errorf("hard signature %q has no patterns", sig.name)
		}
	}

	for _, entry := range structureIndicators {
		if entry.weight < 1 || entry.weight > maxStructureScore {
			t.Errorf("structure entry %q weight %d out of range", entry.name, entry.weight)
		}
	}
	for _, tier := range domainComplexity {
		if tier.weight < 1 || tier.weight > maxDomainScore {
			t.Errorf("domain tier %q weight %d out of range", tier.name, tier.weight)
		}
	}
}
