package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("log", func() minigit.Command { return &LogCommand{} })
}

type LogCommand struct{}

// Ensure LogCommand implements minigit.Command
var _ minigit.Command = (*LogCommand)(nil)

type LogOptions struct {
	Oneline bool
}

func (c *LogCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	opts := &LogOptions{}
	for _, arg := range args[1:] {
		switch arg {
		case "--oneline":
			opts.Oneline = true
		case "-h", "--help":
			return c.Help(), nil
		}
	}

	entries, err := repo.History()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, e := range entries {
		if opts.Oneline {
			fmt.Fprintf(&sb, "%s %s\n", hashStyle.Render(shortID(e.NewCommitID)), firstLine(e.Message))
			continue
		}
		fmt.Fprintf(&sb, "commit %s\n", hashStyle.Render(e.NewCommitID))
		if e.Merge {
			fmt.Fprintf(&sb, "%s %s\n", mergeStyle.Render("Merge:"), shortID(e.OtherCommitID))
		}
		fmt.Fprintf(&sb, "Author: %s\nDate:   %s\n\n    %s\n\n", e.Author, e.Timestamp, e.Message)
	}
	return sb.String(), nil
}

func firstLine(s string) string {
	return strings.Split(s, "\n")[0]
}

func (c *LogCommand) Help() string {
	return "usage: minigit log [--oneline]\n\nShow the current branch's log, newest entry first."
}
