package cli

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestNewGeminiRequiresAPIKey(t *testing.T) {
	cfg := &config{geminiModel: "gemini-2.5-flash"}

	_, err := cfg.newGemini(context.Background())
	gt.Error(t, err)
}

func TestNewRepositoryRequiresProject(t *testing.T) {
	cfg := &config{database: "(default)"}

	_, err := cfg.newRepository(context.Background())
	gt.Error(t, err)
}

func TestNewRepositoryRequiresDatabase(t *testing.T) {
	cfg := &config{project: "some-project"}

	_, err := cfg.newRepository(context.Background())
	gt.Error(t, err)
}
