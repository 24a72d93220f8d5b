package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/shukatsu-tools/es-analyzer/internal/domain/ai"
	"github.com/shukatsu-tools/es-analyzer/internal/infra/ai/prompt"
)

// Not deterministic: repeated calls with identical input may score differently.
const analysisTemperature = 0.7

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

// Analyze implements ai.Analyzer: one chat completion requesting a JSON-object
// reply, no retry.
func (c *Client) Analyze(ctx context.Context, in ai.Input) (*ai.Result, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: analysisTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt(in.Industry)},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetUserPrompt(in)},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, ai.ErrQuotaExceeded
		}
		return nil, &ai.AnalysisError{Err: fmt.Errorf("failed to create chat completion: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return nil, &ai.AnalysisError{Err: errors.New("empty completion response")}
	}

	res, err := prompt.ParseResult(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, &ai.AnalysisError{Err: err}
	}
	return res, nil
}
