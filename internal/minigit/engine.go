package minigit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Command defines the interface for all CLI commands.
type Command interface {
	Execute(ctx context.Context, repo *Repository, args []string) (string, error)
	Help() string
}

// CommandFactory allows creating new instances of commands.
type CommandFactory func() Command

var registry = make(map[string]CommandFactory)

// RegisterCommand registers a command factory under its name. Command
// packages call this from init().
func RegisterCommand(name string, factory CommandFactory) {
	registry[name] = factory
}

// Dispatch resolves and runs one command against the repository.
// args always starts with the command name (args[0] == name).
func Dispatch(ctx context.Context, repo *Repository, name string, args []string) (string, error) {
	factory, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("'%s' is not a recognized command. See 'minigit help'", name)
	}

	cmd := factory()
	start := time.Now()
	out, err := cmd.Execute(ctx, repo, args)
	repo.log.WithFields(logrus.Fields{
		"command":  name,
		"duration": time.Since(start),
		"err":      err,
	}).Debug("dispatch")
	return out, err
}

// SupportedCommands returns all registered command names, sorted.
func SupportedCommands() []string {
	cmds := make([]string, 0, len(registry))
	for k := range registry {
		cmds = append(cmds, k)
	}
	sort.Strings(cmds)
	return cmds
}

// CommandHelp returns the help string for a command.
func CommandHelp(name string) (string, error) {
	factory, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("command not found")
	}
	return factory().Help(), nil
}
