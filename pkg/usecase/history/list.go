package history

import (
	"context"

	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/bhanuteja449896/AskMyFile/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// Get retrieves one user's question log
func Get(ctx context.Context, repo repository.Repository, user model.UserID) (*model.UserHistory, error) {
	history, err := repo.GetHistory(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get history", goerr.V("user", user))
	}
	return history, nil
}

// List retrieves question logs across users, newest first
func List(ctx context.Context, repo repository.Repository, offset, limit int) ([]*model.UserHistory, error) {
	histories, err := repo.ListHistories(ctx, offset, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list histories")
	}
	return histories, nil
}
