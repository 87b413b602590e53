package model

import (
	"time"

	"github.com/google/uuid"
)

type RecordID string

// NewRecordID generates a new unique RecordID
func NewRecordID() RecordID {
	return RecordID(uuid.New().String())
}

// QuestionRecord is a single logged question. Immutable once written.
type QuestionRecord struct {
	ID       RecordID  `firestore:"id" json:"id"`
	Question string    `firestore:"question" json:"question"`
	AskedAt  time.Time `firestore:"asked_at" json:"asked_at"`
}

// UserHistory is the append-only record of every question a user has
// asked, together with a denormalized copy of their profile refreshed
// on every append.
type UserHistory struct {
	User      UserID           `firestore:"user_id" json:"user_id"`
	Profile   Profile          `firestore:"profile" json:"profile"`
	Prompts   []QuestionRecord `firestore:"prompts" json:"prompts"`
	UpdatedAt time.Time        `firestore:"updated_at" json:"updated_at"`
}
