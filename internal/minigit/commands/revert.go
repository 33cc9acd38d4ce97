package commands

import (
	"context"
	"fmt"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("revert", func() minigit.Command { return &RevertCommand{} })
}

type RevertCommand struct{}

var _ minigit.Command = (*RevertCommand)(nil)

func (c *RevertCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	rest := args[1:]
	if len(rest) == 1 && (rest[0] == "-h" || rest[0] == "--help") {
		return c.Help(), nil
	}
	if len(rest) != 1 {
		return "", fmt.Errorf("usage: minigit revert <commit_id>")
	}

	rec, err := repo.Revert(rest[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[%s] %s\n", hashStyle.Render(shortID(rec.ID)), rec.Message), nil
}

func (c *RevertCommand) Help() string {
	return "usage: minigit revert <commit_id>\n\nRestore the snapshot of an earlier commit on this branch and record it as a new commit."
}
