package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/bhanuteja449896/AskMyFile/pkg/repository"
	"github.com/bhanuteja449896/AskMyFile/pkg/service/session"
	"github.com/bhanuteja449896/AskMyFile/pkg/usecase/answer"
	"github.com/bhanuteja449896/AskMyFile/pkg/usecase/upload"
	"github.com/bhanuteja449896/AskMyFile/pkg/utils/logging"
)

// localUser is the identity used by the terminal chat session
const localUser = model.UserID(1)

func chatCommand() *cli.Command {
	var (
		cfg  config
		file string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "Path to a document to ask questions about",
			Destination: &file,
			Required:    true,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:  "chat",
		Usage: "Ask questions about a local document from the terminal",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.New(cfg.logLevel, os.Stderr)
			logging.SetDefault(logger)
			ctx = logging.With(ctx, logger)

			gemini, err := cfg.newGemini(ctx)
			if err != nil {
				return err
			}

			sessions := session.NewStore()
			answers := answer.New(repository.NewMemory(), sessions, gemini,
				answer.WithPromptBudget(int(cfg.promptBudget)))
			uploads := upload.New(sessions)

			data, err := os.ReadFile(file)
			if err != nil {
				return goerr.Wrap(err, "failed to read document", goerr.V("file", file))
			}

			out, err := uploads.Upload(ctx, upload.Input{
				User:       localUser,
				FileName:   file,
				Data:       data,
				UploadedAt: time.Now(),
			})
			if err != nil {
				return goerr.Wrap(err, "failed to load document")
			}

			fmt.Fprintf(c.Root().Writer, "Loaded %s (%d chars). Type 'exit' to quit.\n",
				file, len(out.Document.Text))

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Fprintf(c.Root().Writer, "> ")
				if !scanner.Scan() {
					break
				}

				question := scanner.Text()
				if question == "exit" {
					break
				}
				if question == "" {
					continue
				}

				result, err := answers.Answer(ctx, answer.Input{
					User:     localUser,
					Question: question,
					AskedAt:  time.Now(),
				})
				if err != nil {
					return goerr.Wrap(err, "failed to answer question")
				}

				fmt.Fprintf(c.Root().Writer, "%s\n", result.Text)
			}

			return nil
		},
	}
}
