package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("merge", func() minigit.Command { return &MergeCommand{} })
}

type MergeCommand struct{}

// Ensure MergeCommand implements minigit.Command
var _ minigit.Command = (*MergeCommand)(nil)

func (c *MergeCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	rest := args[1:]
	if len(rest) == 1 && (rest[0] == "-h" || rest[0] == "--help") {
		return c.Help(), nil
	}
	if len(rest) != 1 {
		return "", fmt.Errorf("usage: minigit merge <branch>")
	}

	res, err := repo.Merge(rest[0])
	if errors.Is(err, minigit.ErrAlreadyUpToDate) {
		return "Already up to date.\n", nil
	}
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Merged branch %s into a new commit [%s]\n", branchStyle.Render(rest[0]), hashStyle.Render(shortID(res.Commit.ID)))
	if len(res.PotentialConflicts) > 0 {
		fmt.Fprintf(&sb, "Kept the current version of %s; review before committing further work\n",
			strings.Join(res.PotentialConflicts, ", "))
	}
	return sb.String(), nil
}

func (c *MergeCommand) Help() string {
	return "usage: minigit merge <branch>\n\nThree-way merge the named branch into the current one."
}
