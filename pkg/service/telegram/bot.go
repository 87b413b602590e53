// Package telegram adapts inbound Telegram updates to the upload and
// answer usecases.
package telegram

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bhanuteja449896/AskMyFile/pkg/extract"
	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/bhanuteja449896/AskMyFile/pkg/usecase/answer"
	"github.com/bhanuteja449896/AskMyFile/pkg/usecase/upload"
	"github.com/bhanuteja449896/AskMyFile/pkg/utils/logging"
)

const (
	replyGreeting    = "Send me a PDF and ask me anything from it!"
	replyUploaded    = "File uploaded! You can now ask questions.\nNote: your document is kept in memory only and is lost if the bot restarts."
	replyNoDocument  = "Please upload a file first."
	replyUnsupported = "Only PDF and plain text files are supported for now."
	replyFailure     = "Sorry, I could not produce an answer. Please try again."
)

type Bot struct {
	api      *tgbotapi.BotAPI
	uploads  *upload.Service
	answers  *answer.Service
	http     *http.Client
	genLimit time.Duration
}

type Option func(*Bot)

// WithGenerationTimeout bounds a single backend call so a hung request
// fails on its own instead of stalling the handling loop.
func WithGenerationTimeout(d time.Duration) Option {
	return func(b *Bot) {
		b.genLimit = d
	}
}

func New(token string, uploads *upload.Service, answers *answer.Service, opts ...Option) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create telegram bot api")
	}

	b := &Bot{
		api:      api,
		uploads:  uploads,
		answers:  answers,
		http:     &http.Client{Timeout: 60 * time.Second},
		genLimit: 90 * time.Second,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Run polls for updates until the context is canceled. Each update is
// handled in its own goroutine so one user's slow upload or generation
// never blocks another user's events.
func (b *Bot) Run(ctx context.Context) error {
	logger := logging.From(ctx)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := b.api.GetUpdatesChan(updateConfig)
	logger.Info("telegram bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	logger := logging.From(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic while handling update", "recover", r, "chat", msg.Chat.ID)
		}
	}()

	var reply string
	switch {
	case msg.IsCommand() && msg.Command() == "start":
		reply = replyGreeting
	case msg.Document != nil:
		reply = b.handleDocument(ctx, msg)
	case msg.Text != "":
		reply = b.handleQuestion(ctx, msg)
	default:
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		logger.Error("failed to send reply", "error", err, "chat", msg.Chat.ID)
	}
}

func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) string {
	logger := logging.From(ctx)

	data, err := b.downloadFile(ctx, msg.Document.FileID)
	if err != nil {
		logger.Error("failed to download document", "error", err, "user", msg.From.ID)
		return replyFailure
	}

	_, err = b.uploads.Upload(ctx, upload.Input{
		User:       model.UserID(msg.From.ID),
		FileName:   msg.Document.FileName,
		Data:       data,
		UploadedAt: msg.Time(),
	})
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		return replyUnsupported
	}
	if err != nil {
		logger.Error("failed to process document", "error", err, "user", msg.From.ID)
		return replyFailure
	}

	return replyUploaded
}

func (b *Bot) handleQuestion(ctx context.Context, msg *tgbotapi.Message) string {
	logger := logging.From(ctx)

	ctx, cancel := context.WithTimeout(ctx, b.genLimit)
	defer cancel()

	out, err := b.answers.Answer(ctx, answer.Input{
		User:     model.UserID(msg.From.ID),
		Profile:  profileOf(msg.From),
		Question: msg.Text,
		AskedAt:  msg.Time(),
	})
	if err != nil {
		logger.Error("failed to answer question", "error", err, "user", msg.From.ID)
		return replyFailure
	}
	if out.NoDocument {
		return replyNoDocument
	}

	return out.Text
}

// downloadFile materializes the uploaded file into memory. The bytes are
// released with the handling goroutine on every path, including
// extraction failure.
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve file", goerr.V("file_id", fileID))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request")
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download file", goerr.V("file_id", fileID))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected download status",
			goerr.V("file_id", fileID), goerr.V("status", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read file body", goerr.V("file_id", fileID))
	}

	return data, nil
}

func profileOf(user *tgbotapi.User) model.Profile {
	if user == nil {
		return model.Profile{}
	}
	return model.Profile{
		Username:    user.UserName,
		DisplayName: strings.TrimSpace(user.FirstName + " " + user.LastName),
	}
}
