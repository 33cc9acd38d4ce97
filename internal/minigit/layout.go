package minigit

import "path"

// RepoDirName is the hidden directory holding all repository state.
const RepoDirName = ".minigit"

// DefaultBranch is the branch HEAD points at after init.
const DefaultBranch = "master"

// Layout derives every on-disk location from the repository root.
// It is pure string manipulation; no method performs I/O.
type Layout struct {
	// Root is the repository directory relative to the working
	// directory, normally ".minigit".
	Root string
}

// DefaultLayout returns the layout anchored at ".minigit".
func DefaultLayout() Layout {
	return Layout{Root: RepoDirName}
}

// Head is the file holding the current branch name.
func (l Layout) Head() string { return path.Join(l.Root, "HEAD") }

// Index is the staging area document.
func (l Layout) Index() string { return path.Join(l.Root, "index.json") }

// ConfigFile is the optional repository configuration document.
func (l Layout) ConfigFile() string { return path.Join(l.Root, "config.json") }

// Lock is the coarse repository lock taken by the CLI.
func (l Layout) Lock() string { return path.Join(l.Root, "LOCK") }

// BranchesDir holds one ref file per branch.
func (l Layout) BranchesDir() string { return path.Join(l.Root, "refs", "heads") }

// Branch is the ref file for the named branch.
func (l Layout) Branch(name string) string { return path.Join(l.BranchesDir(), name) }

// CommitsDir holds one JSON record per commit.
func (l Layout) CommitsDir() string { return path.Join(l.Root, "objects", "commits") }

// Commit is the record file for the given commit id.
func (l Layout) Commit(id string) string { return path.Join(l.CommitsDir(), id) }

// BlobsDir holds the content-addressed file copies.
func (l Layout) BlobsDir() string { return path.Join(l.Root, "objects", "blobs") }

// Blob is the blob file for the given blob id.
func (l Layout) Blob(id string) string { return path.Join(l.BlobsDir(), id) }

// HeadLog is the log of HEAD movements.
func (l Layout) HeadLog() string { return path.Join(l.Root, "logs", "HEAD") }

// BranchLogsDir holds one log per branch.
func (l Layout) BranchLogsDir() string { return path.Join(l.Root, "logs", "refs", "heads") }

// BranchLog is the log file for the named branch.
func (l Layout) BranchLog(name string) string { return path.Join(l.BranchLogsDir(), name) }

// Dirs lists every directory init must create, parents first.
func (l Layout) Dirs() []string {
	return []string{
		l.Root,
		path.Join(l.Root, "refs"),
		l.BranchesDir(),
		path.Join(l.Root, "objects"),
		l.CommitsDir(),
		l.BlobsDir(),
		path.Join(l.Root, "logs"),
		path.Join(l.Root, "logs", "refs"),
		l.BranchLogsDir(),
	}
}
