package minigit

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Add stages the given working-directory files. A missing path is
// reported and the remaining paths are still processed; files whose
// staged content is unchanged are skipped. Blob copies complete before
// the index is rewritten, and the index is persisted exactly once.
func (r *Repository) Add(paths []string) error {
	if err := r.requireInitialized(); err != nil {
		return err
	}
	tracked, err := r.index.Load()
	if err != nil {
		return err
	}

	var errs error
	for _, p := range paths {
		fi, err := r.fs.Stat(p)
		if err != nil || fi.IsDir() {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p, ErrPathNotFound))
			continue
		}
		id, err := r.workingBlobID(p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if tracked[p] == id {
			continue
		}
		if _, err := r.objects.PutBlob(p); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		tracked[p] = id
		r.log.WithFields(logrus.Fields{"path": p, "blob": id}).Debug("staged")
	}

	if err := r.index.Save(tracked); err != nil {
		return multierr.Append(errs, err)
	}
	return errs
}
