package model

import "time"

// Document is the extracted text of a user's currently uploaded file.
// Exactly one per user at a time; a new upload replaces the old one.
// Documents live in memory only and vanish on process restart.
type Document struct {
	Owner      UserID
	FileName   string
	Text       string
	UploadedAt time.Time
}
