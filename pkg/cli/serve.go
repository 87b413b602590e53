package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bhanuteja449896/AskMyFile/pkg/service/session"
	"github.com/bhanuteja449896/AskMyFile/pkg/service/telegram"
	"github.com/bhanuteja449896/AskMyFile/pkg/usecase/answer"
	"github.com/bhanuteja449896/AskMyFile/pkg/usecase/upload"
	"github.com/bhanuteja449896/AskMyFile/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		cfg  config
		addr string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Listen address for the liveness probe",
			Value:       ":8080",
			Sources:     cli.EnvVars("ASKMYFILE_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, telegramFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)
	flags = append(flags, repositoryFlags(&cfg)...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Run the Telegram bot and liveness probe",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.New(cfg.logLevel, os.Stdout)
			logging.SetDefault(logger)
			ctx = logging.With(ctx, logger)

			if cfg.telegramToken == "" {
				return goerr.New("telegram-token is required")
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			gemini, err := cfg.newGemini(ctx)
			if err != nil {
				return err
			}

			sessions := session.NewStore()
			answers := answer.New(repo, sessions, gemini,
				answer.WithPromptBudget(int(cfg.promptBudget)))
			uploads := upload.New(sessions)

			bot, err := telegram.New(cfg.telegramToken, uploads, answers)
			if err != nil {
				return err
			}

			srv := &http.Server{Addr: addr, Handler: newProbeRouter()}
			go func() {
				logger.Info("liveness probe listening", "addr", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("probe server failed", "error", err)
				}
			}()
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return goerr.Wrap(err, "bot stopped")
			}
			return nil
		},
	}
}

func newProbeRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return r
}
