package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bhanuteja449896/AskMyFile/pkg/model"
	"github.com/bhanuteja449896/AskMyFile/pkg/usecase/history"
)

func historyCommand() *cli.Command {
	var (
		cfg    config
		userID int64
		limit  int64
	)

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "user",
			Aliases:     []string{"u"},
			Usage:       "User ID whose questions to show (omit to list all users)",
			Destination: &userID,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of users to list",
			Value:       20,
			Destination: &limit,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, repositoryFlags(&cfg)...)

	return &cli.Command{
		Name:  "history",
		Usage: "Show logged questions",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			if userID != 0 {
				h, err := history.Get(ctx, repo, model.UserID(userID))
				if err != nil {
					return err
				}
				printHistory(c, h)
				return nil
			}

			histories, err := history.List(ctx, repo, 0, int(limit))
			if err != nil {
				return err
			}
			if len(histories) == 0 {
				fmt.Fprintf(c.Root().Writer, "No questions logged\n")
				return nil
			}
			for _, h := range histories {
				printHistory(c, h)
			}
			return nil
		},
	}
}

func printHistory(c *cli.Command, h *model.UserHistory) {
	name := h.Profile.DisplayName
	if name == "" {
		name = h.Profile.Username
	}
	fmt.Fprintf(c.Root().Writer, "%s\t%s\t%d questions\n", h.User, name, len(h.Prompts))
	for _, p := range h.Prompts {
		fmt.Fprintf(c.Root().Writer, "  %s\t%s\n", p.AskedAt.Format("2006-01-02 15:04:05"), p.Question)
	}
}
