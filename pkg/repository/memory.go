package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements Repository in process memory. It backs the local
// chat command and tests; nothing survives a restart.
type Memory struct {
	mu        sync.Mutex
	histories map[model.UserID]*model.UserHistory
}

func NewMemory() *Memory {
	return &Memory{
		histories: make(map[model.UserID]*model.UserHistory),
	}
}

func (r *Memory) AppendQuestion(ctx context.Context, user model.UserID, profile model.Profile, record model.QuestionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, ok := r.histories[user]
	if !ok {
		history = &model.UserHistory{User: user}
		r.histories[user] = history
	}

	history.Profile = profile
	history.Prompts = append(history.Prompts, record)
	history.UpdatedAt = record.AskedAt

	return nil
}

func (r *Memory) GetHistory(ctx context.Context, user model.UserID) (*model.UserHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, ok := r.histories[user]
	if !ok {
		return nil, goerr.Wrap(ErrHistoryNotFound, "no questions logged", goerr.V("user", user))
	}

	return copyHistory(history), nil
}

func (r *Memory) ListHistories(ctx context.Context, offset, limit int) ([]*model.UserHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	histories := make([]*model.UserHistory, 0, len(r.histories))
	for _, history := range r.histories {
		histories = append(histories, copyHistory(history))
	}
	sort.Slice(histories, func(i, j int) bool {
		return histories[i].UpdatedAt.After(histories[j].UpdatedAt)
	})

	if offset >= len(histories) {
		return nil, nil
	}
	histories = histories[offset:]
	if limit > 0 && len(histories) > limit {
		histories = histories[:limit]
	}

	return histories, nil
}

func copyHistory(history *model.UserHistory) *model.UserHistory {
	copied := *history
	copied.Prompts = make([]model.QuestionRecord, len(history.Prompts))
	copy(copied.Prompts, history.Prompts)
	return &copied
}
