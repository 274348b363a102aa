package confset

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/gopasspw/gopass/pkg/fsutil"
	"github.com/gopasspw/gopass/pkg/set"
)

// DefaultDirs are the candidate directories searched when a Locator is created
// without any. Order matters, the first match wins.
var DefaultDirs = []string{"/etc/default", "/etc/sysconfig"}

// Locator maps bare config file names to paths inside an ordered list of
// candidate directories.
//
// Every Locator owns its own copy of the candidate list, so tests can point
// one at a temporary directory without affecting any other Locator.
type Locator struct {
	dirs []string
}

// NewLocator creates a Locator searching the given directories in order.
// Without any directories DefaultDirs is used.
func NewLocator(dirs ...string) *Locator {
	if len(dirs) < 1 {
		dirs = DefaultDirs
	}

	return &Locator{
		dirs: slices.Clone(dirs),
	}
}

// Dirs returns a copy of the candidate directories.
func (l *Locator) Dirs() []string {
	return slices.Clone(l.dirs)
}

// String implements fmt.Stringer for debugging.
func (l *Locator) String() string {
	return fmt.Sprintf("Locator{Dirs: %v}", l.dirs)
}

// Resolve returns the first <dir>/<name> that is a regular file. A name that
// can not be found in any directory is not an error, the second return value
// is false then.
func (l *Locator) Resolve(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	for _, dir := range l.dirs {
		fn := filepath.Join(dir, name)
		if fsutil.IsFile(fn) {
			debug.V(2).Log("resolved %q to %s", name, fn)

			return fn, true
		}
	}

	debug.V(2).Log("%q not found in %v", name, l.dirs)

	return "", false
}

// WriteTarget returns the path a new document called name would be created at,
// i.e. inside the first candidate directory that exists. Directories are never
// created.
func (l *Locator) WriteTarget(name string) (string, error) {
	if fn, found := l.Resolve(name); found {
		return fn, nil
	}

	for _, dir := range l.dirs {
		if fsutil.IsDir(dir) {
			return filepath.Join(dir, name), nil
		}
	}

	return "", fmt.Errorf("no directory to create %q in (searched %v): %w", name, l.dirs, ErrNotFound)
}

// ListAvailable returns the names of all entries in all existing candidate
// directories. Entries are not filtered by type, callers need to handle
// non-files. The result is sorted and contains no duplicates.
func (l *Locator) ListAvailable() []string {
	names := make([]string, 0, 64)

	for _, dir := range l.dirs {
		if !fsutil.IsDir(dir) {
			debug.V(3).Log("skipping missing directory %s", dir)

			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			debug.Log("failed to list %s: %s", dir, err)

			continue
		}

		for _, e := range entries {
			names = append(names, e.Name())
		}
	}

	return set.Sorted(names)
}
