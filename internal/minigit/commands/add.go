package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("add", func() minigit.Command { return &AddCommand{} })
}

type AddCommand struct{}

var _ minigit.Command = (*AddCommand)(nil)

func (c *AddCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	var paths []string
	for _, arg := range args[1:] {
		switch arg {
		case "-h", "--help":
			return c.Help(), nil
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("usage: minigit add <file> [<file> ...]")
	}

	if err := repo.Add(paths); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added %s\n", strings.Join(paths, " ")), nil
}

func (c *AddCommand) Help() string {
	return "usage: minigit add <file> [<file> ...]\n\nStage file contents for the next commit."
}
