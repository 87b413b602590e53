package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "askmyfile",
		Usage: "Document question-answering Telegram bot",
		Commands: []*cli.Command{
			serveCommand(),
			chatCommand(),
			historyCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
