package upload_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bhanuteja449896/AskMyFile/pkg/extract"
	"github.com/bhanuteja449896/AskMyFile/pkg/service/session"
	"github.com/bhanuteja449896/AskMyFile/pkg/usecase/upload"
)

func TestUploadCreatesSession(t *testing.T) {
	sessions := session.NewStore()
	svc := upload.New(sessions)

	out, err := svc.Upload(context.Background(), upload.Input{
		User:       1,
		FileName:   "notes.txt",
		Data:       []byte("document body"),
		UploadedAt: time.Now(),
	})
	gt.NoError(t, err)
	gt.Equal(t, out.Document.Text, "document body")

	doc, ok := sessions.Get(1)
	gt.Equal(t, ok, true)
	gt.Equal(t, doc.Text, "document body")
	gt.Equal(t, doc.FileName, "notes.txt")
}

func TestUploadReplacesSession(t *testing.T) {
	sessions := session.NewStore()
	svc := upload.New(sessions)
	ctx := context.Background()

	_, err := svc.Upload(ctx, upload.Input{User: 1, FileName: "a.txt", Data: []byte("first"), UploadedAt: time.Now()})
	gt.NoError(t, err)
	_, err = svc.Upload(ctx, upload.Input{User: 1, FileName: "b.txt", Data: []byte("second"), UploadedAt: time.Now()})
	gt.NoError(t, err)

	doc, ok := sessions.Get(1)
	gt.Equal(t, ok, true)
	gt.Equal(t, doc.Text, "second")
	gt.Equal(t, doc.FileName, "b.txt")
}

func TestUploadUnsupportedFormat(t *testing.T) {
	sessions := session.NewStore()
	svc := upload.New(sessions)

	_, err := svc.Upload(context.Background(), upload.Input{
		User:       1,
		FileName:   "spreadsheet.xlsx",
		Data:       []byte("whatever"),
		UploadedAt: time.Now(),
	})
	gt.Error(t, err)
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}

	if _, ok := sessions.Get(1); ok {
		t.Error("failed upload must not create a session")
	}
}

func TestUploadFailureKeepsPriorSession(t *testing.T) {
	sessions := session.NewStore()
	svc := upload.New(sessions)
	ctx := context.Background()

	_, err := svc.Upload(ctx, upload.Input{User: 1, FileName: "a.txt", Data: []byte("kept"), UploadedAt: time.Now()})
	gt.NoError(t, err)

	_, err = svc.Upload(ctx, upload.Input{User: 1, FileName: "b.exe", Data: []byte("nope"), UploadedAt: time.Now()})
	gt.Error(t, err)

	doc, ok := sessions.Get(1)
	gt.Equal(t, ok, true)
	gt.Equal(t, doc.Text, "kept")
}
