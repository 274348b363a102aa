package confset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/gopasspw/gopass/pkg/fsutil"
	"github.com/gopasspw/gopass/pkg/set"
)

var (
	// BackupSuffix is inserted between the original file name and the
	// timestamp of a backup copy.
	BackupSuffix = ".confset."
	// BackupTimeFormat is the (second resolution) timestamp layout of backups.
	BackupTimeFormat = "20060102150405"

	// newFileMode is used when a document is created from scratch.
	newFileMode os.FileMode = 0o644
)

// Setting is a single key=value entry of a document.
//
// Key is qualified with the document name, e.g. "grub.GRUB_TIMEOUT". Help holds
// the comment lines immediately preceding the entry, without the leading '#'.
type Setting struct {
	Key   string   `yaml:"key"`
	Value string   `yaml:"value"`
	Help  []string `yaml:"help,omitempty"`
}

// Document is a single flat key=value config file, e.g. /etc/default/grub.
//
// A Document is parsed once when it is loaded. Set writes to the file on disk
// but does not update the parsed settings, load the document again to observe
// the change.
//
// Typical Usage:
//
//	doc, err := Load("grub", NewLocator())
//	if err != nil { ... }
//	v, ok := doc.Get("grub.GRUB_TIMEOUT")
//	if err := doc.Set("GRUB_TIMEOUT", "5"); err != nil { ... }
type Document struct {
	name     string
	path     string
	loc      *Locator
	settings map[string]*Setting
	order    []string
}

// Load resolves name with the given locator and parses it. A missing file
// is not an error and yields an empty document. A file that exists but can
// not be read is.
func Load(name string, loc *Locator) (*Document, error) {
	if loc == nil {
		loc = NewLocator()
	}

	fn, found := loc.Resolve(name)
	if !found {
		d := newDocument(name)
		d.loc = loc

		return d, nil
	}

	fh, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadConfig, fn, err)
	}
	defer fh.Close() //nolint:errcheck

	d, err := parse(name, fh)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadConfig, fn, err)
	}
	d.path = fn
	d.loc = loc

	debug.V(1).Log("loaded %d settings from %s", len(d.order), fn)

	return d, nil
}

// Parse parses a document called name from r. It never fails, lines it
// does not understand are ignored. The returned document is not backed by
// a file, i.e. it can not be Set.
func Parse(name string, r io.Reader) *Document {
	d, err := parse(name, r)
	if err != nil {
		debug.Log("failed to read %q: %s", name, err)
	}

	return d
}

func newDocument(name string) *Document {
	return &Document{
		name:     name,
		settings: make(map[string]*Setting, 16),
		order:    make([]string, 0, 16),
	}
}

// parse implements a single pass, line oriented parser. Comment lines are
// collected as help for the next assignment. A blank line drops the collected
// comments, other unrecognized lines leave them alone. Duplicate keys keep
// their first position but the last value wins.
func parse(name string, r io.Reader) (*Document, error) {
	d := newDocument(name)

	var help []string
	err := eachLine(r, func(line string) {
		line = strings.TrimSpace(line)

		if line == "" {
			help = nil

			return
		}

		if strings.HasPrefix(line, "#") {
			if c := stripComment(line); c != "" {
				help = append(help, c)
			}

			return
		}

		k, v, found := splitLine(line)
		if !found {
			debug.V(3).Log("no valid KV-pair on line: %q", line)

			return
		}

		fKey := d.Key(k)
		if _, present := d.settings[fKey]; !present {
			d.order = append(d.order, fKey)
		}
		d.settings[fKey] = &Setting{
			Key:   fKey,
			Value: v,
			Help:  help,
		}
		help = nil
	})

	return d, err
}

// Name returns the bare document name, e.g. "grub".
func (d *Document) Name() string {
	return d.name
}

// Path returns the resolved path of the document or an empty string if the
// file did not exist when the document was loaded.
func (d *Document) Path() string {
	return d.path
}

// Exists is true if the document was loaded from a file.
func (d *Document) Exists() bool {
	return d.path != ""
}

// Len returns the number of distinct settings.
func (d *Document) Len() int {
	return len(d.order)
}

// Key qualifies a raw key with the document name.
func (d *Document) Key(raw string) string {
	return d.name + "." + raw
}

// Keys returns the qualified keys in the order they first appear in the file.
func (d *Document) Keys() []string {
	return slices.Clone(d.order)
}

// SortedKeys returns the qualified keys in lexicographic order.
func (d *Document) SortedKeys() []string {
	return set.Sorted(d.order)
}

// Get returns the value of a qualified key.
func (d *Document) Get(key string) (string, bool) {
	s, found := d.settings[key]
	if !found {
		return "", false
	}

	return s.Value, true
}

// Lookup returns a copy of the setting for a qualified key.
func (d *Document) Lookup(key string) (Setting, bool) {
	s, found := d.settings[key]
	if !found {
		return Setting{}, false
	}

	return s.clone(), true
}

// Settings returns copies of all settings in file order.
func (d *Document) Settings() []Setting {
	out := make([]Setting, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.settings[k].clone())
	}

	return out
}

func (s *Setting) clone() Setting {
	return Setting{
		Key:   s.Key,
		Value: s.Value,
		Help:  slices.Clone(s.Help),
	}
}

// MaxDisplayWidth returns the length of the longest key=value line among the
// given qualified keys, or among all settings if no keys are given. It is
// never less than one.
func (d *Document) MaxDisplayWidth(keys ...string) int {
	if len(keys) < 1 {
		keys = d.order
	}

	width := 1
	for _, k := range keys {
		s, found := d.settings[k]
		if !found {
			continue
		}
		width = max(width, len(s.Key)+len(s.Value)+1)
	}

	return width
}

// Set updates or adds a key in the backing file.
//
// Behavior:
//   - The current file is copied to <path>.confset.<YYYYMMDDHHMMSS> first. If
//     that fails nothing is written.
//   - Every non-comment line with the given key is replaced by key=value, all
//     other lines are kept as they are.
//   - If the key is not present it is appended, preceded by the help lines as
//     comments. Help is ignored when an existing key is updated.
//   - If the document does not exist yet it is created in the first existing
//     candidate directory. Otherwise ErrNotFound is returned.
//
// Set does not update the parsed settings of d.
func (d *Document) Set(key, value string, help ...string) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, "=\r\n") || strings.HasPrefix(key, "#") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w for %s: must be a single line", ErrInvalidValue, key)
	}

	fn, err := d.target()
	if err != nil {
		return err
	}

	mode := newFileMode
	lines := make([]string, 0, 128)
	if fi, err := os.Stat(fn); err == nil {
		mode = fi.Mode().Perm()

		if _, err := backup(fn, time.Now()); err != nil {
			return err
		}

		lines, err = readLines(fn)
		if err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w %s: %w", ErrReadConfig, fn, err)
	}

	lines = rewrite(lines, key, value, help)

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	debug.V(3).Log("writing config to %s: \n--------------\n%s\n--------------", fn, buf.String())

	if err := os.WriteFile(fn, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("%w to %s: %w", ErrWriteConfig, fn, err)
	}

	debug.V(1).Log("set %s=%s in %s", key, value, fn)

	return nil
}

// target is the file Set writes to.
func (d *Document) target() (string, error) {
	if d.path != "" {
		return d.path, nil
	}
	if d.loc == nil {
		return "", fmt.Errorf("document %q is not backed by a file: %w", d.name, ErrNotFound)
	}

	return d.loc.WriteTarget(d.name)
}

// rewrite replaces every assignment of key with key=value. If there is none
// the help lines and the assignment are appended.
func rewrite(lines []string, key, value string, help []string) []string {
	var updated bool
	for i, line := range lines {
		k, ok := rawKey(line)
		if !ok || k != key {
			continue
		}
		lines[i] = key + "=" + value
		updated = true
	}

	if updated {
		if len(help) > 0 {
			debug.V(2).Log("not rewriting existing comments for %s", key)
		}

		return lines
	}

	help = slices.Clone(help)
	trim(help)
	for _, h := range help {
		lines = append(lines, "# "+h)
	}

	return append(lines, key+"="+value)
}

// Backup copies the backing file to <path>.confset.<YYYYMMDDHHMMSS> and
// returns the name of the copy.
func (d *Document) Backup() (string, error) {
	if d.path == "" {
		return "", fmt.Errorf("document %q has no file to backup: %w", d.name, ErrNotFound)
	}

	return backup(d.path, time.Now())
}

// backup copies fn next to itself. Existing backups are never overwritten,
// a second backup within the same second gets a numeric suffix (.1, .2, ...).
func backup(fn string, now time.Time) (string, error) {
	base := fn + BackupSuffix + now.Format(BackupTimeFormat)
	bfn := base
	for i := 1; fsutil.IsFile(bfn); i++ {
		bfn = fmt.Sprintf("%s.%d", base, i)
	}

	if err := fsutil.CopyFile(fn, bfn); err != nil {
		return "", fmt.Errorf("%w %s to %s: %w", ErrBackup, fn, bfn, err)
	}

	debug.V(1).Log("backed up %s to %s", fn, bfn)

	return bfn, nil
}

func readLines(fn string) ([]string, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadConfig, fn, err)
	}
	defer fh.Close() //nolint:errcheck

	lines := make([]string, 0, 128)
	if err := eachLine(fh, func(line string) {
		lines = append(lines, line)
	}); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadConfig, fn, err)
	}

	return lines, nil
}
