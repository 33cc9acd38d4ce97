package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"

	"github.com/kmrtdsii/minigit/internal/minigit"
	_ "github.com/kmrtdsii/minigit/internal/minigit/commands" // Register commands
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	// Global flags come before the command name.
	args := argv
	for len(args) > 0 {
		if args[0] == "-d" || args[0] == "--debug" {
			log.SetLevel(logrus.DebugLevel)
			args = args[1:]
			continue
		}
		break
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: minigit <command> [arguments]")
		return 1
	}

	repo := minigit.New(osfs.New("."), minigit.WithLogger(log))

	// Coarse lock against concurrent invocations. init has no
	// repository directory to lock yet.
	if repo.Initialized() {
		lock := flock.New(filepath.Join(minigit.RepoDirName, "LOCK"))
		if err := lock.Lock(); err != nil {
			fmt.Fprintf(os.Stderr, "minigit: cannot lock repository: %v\n", err)
			return 1
		}
		defer lock.Unlock()
	}

	out, err := minigit.Dispatch(context.Background(), repo, args[0], args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minigit: %v\n", err)
		return 1
	}
	fmt.Print(out)
	return 0
}
