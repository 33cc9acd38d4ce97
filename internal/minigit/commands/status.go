package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("status", func() minigit.Command { return &StatusCommand{} })
}

type StatusCommand struct{}

// Ensure StatusCommand implements minigit.Command
var _ minigit.Command = (*StatusCommand)(nil)

func (c *StatusCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" {
			return c.Help(), nil
		}
	}

	st, err := repo.Status()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "On branch %s\n", branchStyle.Render(st.Branch))
	if st.Clean() && len(st.Untracked) == 0 {
		sb.WriteString("nothing to commit, working tree clean\n")
		return sb.String(), nil
	}
	writeSection(&sb, "Changes to be committed:", st.Staged, stagedStyle)
	writeSection(&sb, "Changes not staged for commit:", st.Modified, modifiedStyle)
	writeSection(&sb, "Untracked files:", st.Untracked, untrackedStyle)
	return sb.String(), nil
}

func writeSection(sb *strings.Builder, title string, files []string, style lipgloss.Style) {
	if len(files) == 0 {
		return
	}
	sb.WriteString(title + "\n")
	for _, f := range files {
		fmt.Fprintf(sb, "        %s\n", style.Render(f))
	}
}

func (c *StatusCommand) Help() string {
	return "usage: minigit status\n\nShow the current branch and the staged, modified and untracked files."
}
