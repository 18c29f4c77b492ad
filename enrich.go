package quizextractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Enricher fills the optional explanation field of extracted questions
// using GPT-4o. It runs strictly after extraction as a separate tool: the
// pipeline itself stays deterministic and never consults the model.
type Enricher struct {
	client *openai.Client
}

// NewEnricher creates a new enricher with an OpenAI client
func NewEnricher(apiKey string) *Enricher {
	return &Enricher{
		client: openai.NewClient(apiKey),
	}
}

// EnrichDataset generates explanations for every item that does not already
// have one. Per-item failures are logged and skipped; the dataset is
// modified in place and the number of enriched items returned.
func (en *Enricher) EnrichDataset(ctx context.Context, ds *Dataset, report *ReportLog) (int, error) {
	enriched := 0
	for i := range ds.Items {
		if ds.Items[i].Explanation != "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return enriched, err
		}

		explanation, err := en.ExplainQuestion(ctx, &ds.Items[i], report)
		if err != nil {
			VerboseLog("Failed to enrich question %s: %v", ds.Items[i].ID, err)
			continue
		}
		ds.Items[i].Explanation = explanation
		enriched++
	}
	return enriched, nil
}

// ExplainQuestion asks the model for a short explanation of why the correct
// answer is correct.
func (en *Enricher) ExplainQuestion(ctx context.Context, item *QuizItem, report *ReportLog) (string, error) {
	VerboseLog("Enriching question: %s", item.ID)

	prompt := en.buildPrompt(item)
	if report != nil {
		report.Logf("=== LLM REQUEST (%s) ===\n%s\n\n", item.ID, prompt)
	}

	resp, err := en.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an expert tutor. Explain concisely why the given answer to a multiple choice question is correct.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Tools: []openai.Tool{
				{
					Type: openai.ToolTypeFunction,
					Function: &openai.FunctionDefinition{
						Name:        "submit_explanation",
						Description: "Submit the explanation for the question's correct answer",
						Parameters: map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"explanation": map[string]interface{}{
									"type":        "string",
									"description": "Brief explanation (1-3 sentences) of why the correct answer is correct",
								},
							},
							"required": []string{"explanation"},
						},
					},
				},
			},
			ToolChoice: openai.ToolChoice{
				Type: openai.ToolTypeFunction,
				Function: openai.ToolFunction{
					Name: "submit_explanation",
				},
			},
		},
	)

	if err != nil {
		return "", fmt.Errorf("failed to generate explanation: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from GPT-4o")
	}

	choice := resp.Choices[0]
	if len(choice.Message.ToolCalls) == 0 {
		return "", fmt.Errorf("no tool calls in response")
	}

	toolCall := choice.Message.ToolCalls[0]
	if toolCall.Function.Name != "submit_explanation" {
		return "", fmt.Errorf("unexpected tool call: %s", toolCall.Function.Name)
	}

	var toolArgs struct {
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &toolArgs); err != nil {
		return "", fmt.Errorf("failed to parse tool arguments: %w", err)
	}

	if report != nil {
		report.Logf("=== LLM RESPONSE (%s) ===\n%s\n\n", item.ID, toolArgs.Explanation)
	}
	return strings.TrimSpace(toolArgs.Explanation), nil
}

func (en *Enricher) buildPrompt(item *QuizItem) string {
	var b strings.Builder
	b.WriteString("Question:\n")
	b.WriteString(item.Question)
	b.WriteString("\n\nCorrect answer: ")
	b.WriteString(item.CorrectAnswer)
	b.WriteString("\nOther options:\n")
	for _, w := range item.WrongAnswers {
		b.WriteString("- ")
		b.WriteString(w)
		b.WriteString("\n")
	}
	b.WriteString("\nExplain briefly why the correct answer is correct. ")
	b.WriteString("Return the explanation using the submit_explanation tool.")
	return b.String()
}
