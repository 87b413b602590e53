// Package answer orchestrates answering a user's question from their
// uploaded document.
package answer

import (
	"context"
	"time"

	"github.com/bhanuteja449896/AskMyFile/pkg/adapter"
	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/bhanuteja449896/AskMyFile/pkg/repository"
	"github.com/bhanuteja449896/AskMyFile/pkg/service/session"
	"github.com/bhanuteja449896/AskMyFile/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultPromptBudget is the maximum number of document characters
// embedded in a generation request.
const DefaultPromptBudget = 4000

type Service struct {
	repo     repository.Repository
	sessions *session.Store
	gemini   adapter.Gemini
	budget   int
}

type Option func(*Service)

func WithPromptBudget(budget int) Option {
	return func(s *Service) {
		s.budget = budget
	}
}

func New(repo repository.Repository, sessions *session.Store, gemini adapter.Gemini, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		sessions: sessions,
		gemini:   gemini,
		budget:   DefaultPromptBudget,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type Input struct {
	User     model.UserID
	Profile  model.Profile
	Question string
	AskedAt  time.Time
}

// Output is the result of a handled question. NoDocument means the user
// has no active session and must upload a file first.
type Output struct {
	Text       string
	NoDocument bool
}

// Answer logs the question, then answers it from the user's current
// document. The question is logged even when no document is present and
// even when the backend later fails; a logging failure degrades to a
// warning and never blocks the answer.
func (s *Service) Answer(ctx context.Context, input Input) (*Output, error) {
	logger := logging.From(ctx)

	record := model.QuestionRecord{
		ID:       model.NewRecordID(),
		Question: input.Question,
		AskedAt:  input.AskedAt,
	}
	if err := s.repo.AppendQuestion(ctx, input.User, input.Profile, record); err != nil {
		logger.Warn("failed to log question", "error", err, "user", input.User)
	}

	doc, ok := s.sessions.Get(input.User)
	if !ok {
		return &Output{NoDocument: true}, nil
	}

	prompt := buildPrompt(doc.Text, input.Question, s.budget)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate answer", goerr.V("user", input.User))
	}

	return &Output{Text: text}, nil
}
