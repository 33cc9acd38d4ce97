package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("init", func() minigit.Command { return &InitCommand{} })
}

type InitCommand struct{}

// Ensure InitCommand implements minigit.Command
var _ minigit.Command = (*InitCommand)(nil)

func (c *InitCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	err := repo.Init()
	if errors.Is(err, minigit.ErrAlreadyInitialised) {
		return "Repository already initialized.\n", nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Initialized empty MiniGit repository in %s/\n", repo.Layout().Root), nil
}

func (c *InitCommand) Help() string {
	return "usage: minigit init\n\nCreate an empty MiniGit repository in the current directory."
}
