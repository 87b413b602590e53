package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const historyCollection = "histories"

// Firestore implements Repository with one document per user in the
// histories collection.
type Firestore struct {
	client *firestore.Client
}

// New creates a Firestore-backed repository
func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project", projectID), goerr.V("database", databaseID))
	}

	return &Firestore{client: client}, nil
}

// Close releases the underlying client
func (r *Firestore) Close() error {
	return r.client.Close()
}

// AppendQuestion runs a transaction so concurrent appends for the same
// user are serialized and appends for different users never conflict.
func (r *Firestore) AppendQuestion(ctx context.Context, user model.UserID, profile model.Profile, record model.QuestionRecord) error {
	doc := r.client.Collection(historyCollection).Doc(user.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		history := model.UserHistory{User: user}

		snap, err := tx.Get(doc)
		switch {
		case status.Code(err) == codes.NotFound:
			// First question from this user
		case err != nil:
			return goerr.Wrap(err, "failed to get history document")
		default:
			if err := snap.DataTo(&history); err != nil {
				return goerr.Wrap(err, "failed to decode history document")
			}
		}

		history.Profile = profile
		history.Prompts = append(history.Prompts, record)
		history.UpdatedAt = record.AskedAt

		return tx.Set(doc, &history)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to append question", goerr.V("user", user))
	}

	return nil
}

func (r *Firestore) GetHistory(ctx context.Context, user model.UserID) (*model.UserHistory, error) {
	snap, err := r.client.Collection(historyCollection).Doc(user.String()).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, goerr.Wrap(ErrHistoryNotFound, "no questions logged", goerr.V("user", user))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get history", goerr.V("user", user))
	}

	var history model.UserHistory
	if err := snap.DataTo(&history); err != nil {
		return nil, goerr.Wrap(err, "failed to decode history", goerr.V("user", user))
	}

	return &history, nil
}

func (r *Firestore) ListHistories(ctx context.Context, offset, limit int) ([]*model.UserHistory, error) {
	query := r.client.Collection(historyCollection).
		OrderBy("updated_at", firestore.Desc).
		Offset(offset).
		Limit(limit)

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list histories")
	}

	histories := make([]*model.UserHistory, 0, len(snaps))
	for _, snap := range snaps {
		var history model.UserHistory
		if err := snap.DataTo(&history); err != nil {
			return nil, goerr.Wrap(err, "failed to decode history", goerr.V("doc", snap.Ref.ID))
		}
		histories = append(histories, &history)
	}

	return histories, nil
}
