package summarizer

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// SummarizeResult is the structured output expected from the model.
type SummarizeResult struct {
	SummaryShort string   `json:"summary_short"`
	SummaryLong  string   `json:"summary_long"`
	Tags         []string `json:"tags"`
	IsFailure    bool     `json:"is_failure"`
}

const SYSTEM_INSTRUCTION = `
You are a content summarization assistant for articles linked from Hacker News. Your task is to analyze the provided text and produce a structured summary.
The response MUST be a valid JSON object with four keys:
1.  summary_short: A concise summary of the article, no more than 200 characters.
2.  summary_long: A detailed summary of the article, no more than 1000 characters.
3.  tags: An array of at most five lowercase topic tags.
4.  is_failure: A boolean value. Set to true if the content contains a security check (e.g., "I'm not a bot," "Are you human?") that prevents summarization. Otherwise, set to false.
You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
If summarization fails, set is_failure to true and provide an empty string for both summary_short and summary_long.
`

// Summarizer calls Gemini for article summaries. Construct it with the API
// key and model name from config instead of reading globals.
type Summarizer struct {
	apiKey string
	model  string
}

func New(apiKey, model string) *Summarizer {
	return &Summarizer{apiKey: apiKey, model: model}
}

// ModelName reports the configured model, recorded in ai_logs.
func (s *Summarizer) ModelName() string {
	return s.model
}

// SummarizeText runs one summarization call over the extracted article
// text.
func (s *Summarizer) SummarizeText(ctx context.Context, text string) (*SummarizeResult, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: s.apiKey,
	})
	if err != nil {
		return nil, err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		s.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return nil, err
	}

	var summary SummarizeResult
	if err := json.Unmarshal([]byte(result.Text()), &summary); err != nil {
		return nil, fmt.Errorf("summarizer: decode model response: %w", err)
	}
	return &summary, nil
}
