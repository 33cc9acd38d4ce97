package commands

import (
	"context"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

// Version is the tool version reported by the version command.
const Version = "0.1.0"

func init() {
	minigit.RegisterCommand("version", func() minigit.Command { return &VersionCommand{} })
}

type VersionCommand struct{}

var _ minigit.Command = (*VersionCommand)(nil)

func (c *VersionCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	return "minigit version " + Version + "\n", nil
}

func (c *VersionCommand) Help() string {
	return "usage: minigit version\n\nPrint the minigit version."
}
