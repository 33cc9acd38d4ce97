// Package minigit implements a content-addressed snapshot store with
// named branches, a staging area and log-based history, rooted at a
// hidden .minigit directory inside one working directory.
//
// The Repository type orchestrates four stores (objects, refs, logs,
// index) over a billy.Filesystem; the CLI hands it an osfs rooted at
// the working directory, tests hand it a memfs. Operations never print;
// they return results and sentinel errors (see errors.go) for the
// front-end to render.
package minigit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// DefaultAuthor is recorded on commits when no author is configured.
const DefaultAuthor = "Author"

// Repository is the engine facade. All operations are single-threaded
// and run to completion; the engine assumes exclusive access to the
// repository directory for the duration of a command.
type Repository struct {
	fs     billy.Filesystem
	layout Layout

	objects *ObjectStore
	refs    *RefStore
	logs    *LogStore
	index   *IndexStore

	author string
	now    func() time.Time
	log    logrus.FieldLogger
}

// Option configures a Repository.
type Option func(*Repository)

// WithAuthor overrides the commit author, taking precedence over the
// repository config file.
func WithAuthor(name string) Option {
	return func(r *Repository) { r.author = name }
}

// WithClock injects the wall clock used for commit timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithLogger injects the diagnostics logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Repository) { r.log = log }
}

// WithLayout overrides the on-disk layout.
func WithLayout(layout Layout) Option {
	return func(r *Repository) { r.layout = layout }
}

// New wires a Repository over the filesystem rooted at the working
// directory. The repository need not be initialised yet; every
// operation except Init checks for itself.
func New(fs billy.Filesystem, opts ...Option) *Repository {
	r := &Repository{
		fs:     fs,
		layout: DefaultLayout(),
		now:    time.Now,
		log:    logrus.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.objects = &ObjectStore{fs: fs, layout: r.layout}
	r.refs = &RefStore{fs: fs, layout: r.layout}
	r.logs = &LogStore{fs: fs, layout: r.layout}
	r.index = &IndexStore{fs: fs, layout: r.layout}
	return r
}

// Layout returns the repository's on-disk layout.
func (r *Repository) Layout() Layout { return r.layout }

// Initialized reports whether the repository directory exists.
func (r *Repository) Initialized() bool {
	_, err := r.fs.Stat(r.layout.Root)
	return err == nil
}

// Init creates the repository directory tree and points HEAD at
// master. No branch ref is created until the first commit. Directory
// creation is tolerant: a failing directory is reported but does not
// abort creation of the remaining ones.
func (r *Repository) Init() error {
	if r.Initialized() {
		return ErrAlreadyInitialised
	}

	var errs error
	for _, dir := range r.layout.Dirs() {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			r.log.WithField("dir", dir).WithError(err).Warn("init: mkdir failed")
			errs = multierr.Append(errs, fmt.Errorf("create %s: %w", dir, err))
		}
	}
	if err := r.refs.SetHead(DefaultBranch); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

// CurrentBranch returns the branch HEAD names.
func (r *Repository) CurrentBranch() (string, error) {
	if err := r.requireInitialized(); err != nil {
		return "", err
	}
	return r.refs.Head()
}

// Branches lists all branch refs, sorted by name.
func (r *Repository) Branches() ([]string, error) {
	if err := r.requireInitialized(); err != nil {
		return nil, err
	}
	return r.refs.Branches()
}

func (r *Repository) requireInitialized() error {
	if !r.Initialized() {
		return ErrNotInitialised
	}
	return nil
}

// requireClean refuses operations while staged or modified files exist.
func (r *Repository) requireClean() error {
	st, err := r.Status()
	if err != nil {
		return err
	}
	if len(st.Staged) > 0 || len(st.Modified) > 0 {
		return ErrDirtyWorktree
	}
	return nil
}

func (r *Repository) timestamp() string {
	return FormatTimestamp(r.now())
}

// repoConfig is the optional .minigit/config.json document.
type repoConfig struct {
	Author string `json:"author"`
}

// authorName resolves the commit author: the WithAuthor option wins,
// then the repository config file, then DefaultAuthor.
func (r *Repository) authorName() string {
	if r.author != "" {
		return r.author
	}
	if data, err := util.ReadFile(r.fs, r.layout.ConfigFile()); err == nil {
		var cfg repoConfig
		if err := json.Unmarshal(data, &cfg); err == nil && cfg.Author != "" {
			return cfg.Author
		}
	}
	return DefaultAuthor
}

// writeCommit persists a finished record and moves the current branch
// forward: record first, then the tip, then the log entries. The entry
// is appended to both logs/HEAD and the branch log.
func (r *Repository) writeCommit(branch string, rec CommitRecord, entry LogEntry) error {
	if err := r.objects.PutCommit(rec); err != nil {
		return err
	}
	if err := r.refs.SetTip(branch, rec.ID); err != nil {
		return err
	}
	if err := r.logs.Append(r.layout.HeadLog(), entry); err != nil {
		return err
	}
	return r.logs.Append(r.layout.BranchLog(branch), entry)
}
