package model

import "strconv"

// UserID is the stable numeric identifier assigned by the chat platform.
// It is the primary key for both the session store and the history log.
type UserID int64

func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Profile holds best-effort display attributes of a user. It is
// informational only and never used as a key; any field may be stale
// or empty.
type Profile struct {
	Username    string `firestore:"username,omitempty" json:"username,omitempty"`
	DisplayName string `firestore:"display_name,omitempty" json:"display_name,omitempty"`
}
