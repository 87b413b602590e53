package repository_test

import (
	"context"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/bhanuteja449896/AskMyFile/pkg/repository"
)

func setupFirestore(t *testing.T) *repository.Firestore {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	if projectID == "" || databaseID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID and TEST_FIRESTORE_DATABASE_ID must be set to run Firestore tests")
	}

	repo, err := repository.New(context.Background(), projectID, databaseID)
	gt.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func testUserID() model.UserID {
	// Random test user keeps runs independent without cleanup
	return model.UserID(rand.Int63())
}

func TestFirestoreAppendAndGet(t *testing.T) {
	repo := setupFirestore(t)
	ctx := context.Background()
	user := testUserID()

	record := newRecord("what is in the document?", time.Now().UTC().Truncate(time.Millisecond))
	err := repo.AppendQuestion(ctx, user, model.Profile{Username: "tester", DisplayName: "Test User"}, record)
	gt.NoError(t, err)

	history, err := repo.GetHistory(ctx, user)
	gt.NoError(t, err)
	gt.Equal(t, history.User, user)
	gt.Equal(t, history.Profile.Username, "tester")
	gt.A(t, history.Prompts).Length(1)
	gt.Equal(t, history.Prompts[0].Question, record.Question)
}

func TestFirestoreAppendIsAppendOnly(t *testing.T) {
	repo := setupFirestore(t)
	ctx := context.Background()
	user := testUserID()

	now := time.Now().UTC()
	questions := []string{"first?", "second?", "third?"}
	for i, q := range questions {
		err := repo.AppendQuestion(ctx, user, model.Profile{Username: "tester"},
			newRecord(q, now.Add(time.Duration(i)*time.Second)))
		gt.NoError(t, err)
	}

	history, err := repo.GetHistory(ctx, user)
	gt.NoError(t, err)
	gt.A(t, history.Prompts).Length(3)
	for i, q := range questions {
		gt.Equal(t, history.Prompts[i].Question, q)
	}
}

func TestFirestoreGetHistoryNotFound(t *testing.T) {
	repo := setupFirestore(t)

	_, err := repo.GetHistory(context.Background(), testUserID())
	gt.Error(t, err)
}

func TestFirestoreListHistories(t *testing.T) {
	repo := setupFirestore(t)
	ctx := context.Background()

	err := repo.AppendQuestion(ctx, testUserID(), model.Profile{}, newRecord("list me?", time.Now().UTC()))
	gt.NoError(t, err)

	histories, err := repo.ListHistories(ctx, 0, 10)
	gt.NoError(t, err)
	gt.A(t, histories).Longer(0)
}
