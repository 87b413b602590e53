package repository

import (
	"context"

	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// ErrHistoryNotFound is returned when a user has no logged questions
var ErrHistoryNotFound = goerr.New("history not found")

// Repository defines the interface for question history persistence.
// Histories are append-only: there is no API to mutate or remove a
// prior record.
type Repository interface {
	// AppendQuestion upserts the history for the user: creates it if
	// absent, refreshes the denormalized profile, and appends the record.
	AppendQuestion(ctx context.Context, user model.UserID, profile model.Profile, record model.QuestionRecord) error

	// GetHistory retrieves one user's history
	GetHistory(ctx context.Context, user model.UserID) (*model.UserHistory, error)

	// ListHistories retrieves histories ordered by last update, newest first
	ListHistories(ctx context.Context, offset, limit int) ([]*model.UserHistory, error)
}
