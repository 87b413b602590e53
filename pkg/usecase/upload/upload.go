// Package upload turns an uploaded file into the user's active document
// session.
package upload

import (
	"context"
	"time"

	"github.com/bhanuteja449896/AskMyFile/pkg/extract"
	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/bhanuteja449896/AskMyFile/pkg/service/session"
	"github.com/bhanuteja449896/AskMyFile/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type Service struct {
	sessions *session.Store
}

func New(sessions *session.Store) *Service {
	return &Service{sessions: sessions}
}

type Input struct {
	User       model.UserID
	FileName   string
	Data       []byte
	UploadedAt time.Time
}

type Output struct {
	Document *model.Document
}

// Upload extracts text from the file and replaces the user's session.
// Unsupported formats surface as extract.ErrUnsupportedFormat; the prior
// session, if any, is left untouched on failure.
func (s *Service) Upload(ctx context.Context, input Input) (*Output, error) {
	text, err := extract.Extract(input.Data, input.FileName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract document text",
			goerr.V("user", input.User), goerr.V("file", input.FileName))
	}

	doc := &model.Document{
		Owner:      input.User,
		FileName:   input.FileName,
		Text:       text,
		UploadedAt: input.UploadedAt,
	}
	s.sessions.Put(input.User, doc)

	logging.From(ctx).Info("document session replaced",
		"user", input.User, "file", input.FileName, "chars", len(text))

	return &Output{Document: doc}, nil
}
