package adapter_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bhanuteja449896/AskMyFile/pkg/adapter"
)

func TestGenerateText(t *testing.T) {
	apiKey := os.Getenv("TEST_GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("TEST_GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	client, err := adapter.NewGemini(ctx, apiKey)
	gt.NoError(t, err)

	text, err := client.GenerateText(ctx, "What is the capital of France? Answer in one word.")
	gt.NoError(t, err)
	gt.S(t, text).Contains("Paris")

	t.Log("response:", text)
}
