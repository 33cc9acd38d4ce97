package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("branch", func() minigit.Command { return &BranchCommand{} })
}

type BranchCommand struct{}

var _ minigit.Command = (*BranchCommand)(nil)

func (c *BranchCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	rest := args[1:]
	if len(rest) == 1 && (rest[0] == "-h" || rest[0] == "--help") {
		return c.Help(), nil
	}

	if len(rest) == 0 {
		// List branches, current one starred
		branches, err := repo.Branches()
		if err != nil {
			return "", err
		}
		current, err := repo.CurrentBranch()
		if err != nil {
			return "", err
		}
		var sb strings.Builder
		for _, b := range branches {
			if b == current {
				fmt.Fprintf(&sb, "* %s\n", branchStyle.Render(b))
			} else {
				fmt.Fprintf(&sb, "  %s\n", b)
			}
		}
		return sb.String(), nil
	}

	name := rest[0]
	if strings.HasPrefix(name, "-") {
		return "", fmt.Errorf("unknown option: %s", name)
	}
	if err := repo.CreateBranch(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created branch %s\n", name), nil
}

func (c *BranchCommand) Help() string {
	return "usage: minigit branch [<name>]\n\nList branches, or create a new branch at the current tip."
}
