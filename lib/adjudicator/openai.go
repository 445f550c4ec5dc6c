package adjudicator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

//go:generate moq --out mocks/openai_client.go --pkg mocks --skip-ensure . openAIClient:OpenAIClientMock

type openAIClient interface {
	CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIConfig contains parameters for OpenAI client
type OpenAIConfig struct {
	Model             string
	MaxTokensResponse int // hard limit for the number of tokens in the response
}

// OpenAI is a Client for OpenAI chat completion API (and compatible ones)
type OpenAI struct {
	client openAIClient
	params OpenAIConfig
}

// NewOpenAI makes a client for OpenAI. The api client is usually openai.NewClientWithConfig
func NewOpenAI(client openAIClient, params OpenAIConfig) *OpenAI {
	if params.Model == "" {
		params.Model = "gpt-4o-mini"
	}
	if params.MaxTokensResponse <= 0 {
		params.MaxTokensResponse = 300
	}
	return &OpenAI{client: client, params: params}
}

// Complete sends the prompt as a single user message and returns the first choice content
func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.params.Model,
		MaxTokens: o.params.MaxTokensResponse,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	// multiple choices are possible, only the first one is used
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
