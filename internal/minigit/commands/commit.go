package commands

import (
	"context"
	"fmt"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("commit", func() minigit.Command { return &CommitCommand{} })
}

type CommitCommand struct{}

var _ minigit.Command = (*CommitCommand)(nil)

func (c *CommitCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	var msg string
	for i := 1; i < len(args); i++ {
		switch {
		case args[i] == "-h" || args[i] == "--help":
			return c.Help(), nil
		case args[i] == "-m" && i+1 < len(args):
			msg = args[i+1]
			i++
		}
	}
	if msg == "" {
		return "", fmt.Errorf("usage: minigit commit -m \"<message>\"")
	}

	rec, err := repo.Commit(msg)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[%s] %s\n", hashStyle.Render(shortID(rec.ID)), msg), nil
}

func (c *CommitCommand) Help() string {
	return "usage: minigit commit -m \"<message>\"\n\nRecord the staged snapshot as a new commit on the current branch."
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
