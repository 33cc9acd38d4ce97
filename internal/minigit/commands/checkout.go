package commands

import (
	"context"
	"fmt"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("checkout", func() minigit.Command { return &CheckoutCommand{} })
}

type CheckoutCommand struct{}

var _ minigit.Command = (*CheckoutCommand)(nil)

func (c *CheckoutCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	rest := args[1:]
	if len(rest) == 1 && (rest[0] == "-h" || rest[0] == "--help") {
		return c.Help(), nil
	}
	if len(rest) != 1 {
		return "", fmt.Errorf("usage: minigit checkout <branch>")
	}

	if err := repo.Checkout(rest[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Switched to branch %s\n", branchStyle.Render(rest[0])), nil
}

func (c *CheckoutCommand) Help() string {
	return "usage: minigit checkout <branch>\n\nSwitch to the named branch and restore its snapshot."
}
