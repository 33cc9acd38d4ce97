package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmrtdsii/minigit/internal/minigit"
)

func init() {
	minigit.RegisterCommand("help", func() minigit.Command { return &HelpCommand{} })
}

type HelpCommand struct{}

var _ minigit.Command = (*HelpCommand)(nil)

func (c *HelpCommand) Execute(ctx context.Context, repo *minigit.Repository, args []string) (string, error) {
	if len(args) > 1 {
		help, err := minigit.CommandHelp(args[1])
		if err != nil {
			return "", fmt.Errorf("no help for '%s'", args[1])
		}
		return help + "\n", nil
	}
	var sb strings.Builder
	sb.WriteString("usage: minigit <command> [arguments]\n\nCommands:\n")
	for _, name := range minigit.SupportedCommands() {
		fmt.Fprintf(&sb, "    %s\n", name)
	}
	return sb.String(), nil
}

func (c *HelpCommand) Help() string {
	return "usage: minigit help [command]\n\nShow usage for one command, or list all commands."
}
