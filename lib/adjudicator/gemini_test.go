package adjudicator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/adjudicator/mocks"
)

func TestGemini_Complete(t *testing.T) {
	modelsMock := &mocks.GeminiModelsMock{}
	client := NewGemini(modelsMock, GeminiConfig{})

	t.Run("text parts joined", func(t *testing.T) {
		modelsMock.GenerateContentFunc = func(ctx context.Context, model string, contents []*genai.Content,
			config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: `{"classification":`}, nil, {Text: `"spam"}`}}}},
			}}, nil
		}
		resp, err := client.Complete(context.Background(), "the prompt")
		require.NoError(t, err)
		assert.Equal(t, `{"classification":"spam"}`, resp)

		calls := modelsMock.GenerateContentCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "gemini-2.5-flash", calls[0].Model)
		assert.Equal(t, "application/json", calls[0].Config.ResponseMIMEType)
		assert.Equal(t, int32(300), calls[0].Config.MaxOutputTokens)
		require.Len(t, calls[0].Contents, 1)
		require.Len(t, calls[0].Contents[0].Parts, 1)
		assert.Equal(t, "the prompt", calls[0].Contents[0].Parts[0].Text)
	})

	t.Run("api error", func(t *testing.T) {
		modelsMock.GenerateContentFunc = func(ctx context.Context, model string, contents []*genai.Content,
			config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return nil, errors.New("quota exceeded")
		}
		_, err := client.Complete(context.Background(), "the prompt")
		require.EqualError(t, err, "failed to generate content: quota exceeded")
	})

	t.Run("no candidates", func(t *testing.T) {
		modelsMock.GenerateContentFunc = func(ctx context.Context, model string, contents []*genai.Content,
			config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{}, nil
		}
		_, err := client.Complete(context.Background(), "the prompt")
		require.EqualError(t, err, "no candidates in response")
	})
}
