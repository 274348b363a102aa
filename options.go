package confset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/gopasspw/gopass/pkg/appdir"
	"github.com/gopasspw/gopass/pkg/debug"
)

const (
	appName = "confset"
	// EnvSearchPath overrides the candidate directories. Separate multiple
	// directories with os.PathListSeparator.
	EnvSearchPath = "CONFSET_PATH"
)

// Options configure the confset tool itself. They are read from a TOML file:
//
//	search_path = ["/etc/default", "/etc/sysconfig"]
//	sort = true
//	info = false
type Options struct {
	SearchPath []string `toml:"search_path"`
	Sort       bool     `toml:"sort"`
	Info       bool     `toml:"info"`
}

// DefaultOptionsFile returns $XDG_CONFIG_HOME/confset/config.toml.
func DefaultOptionsFile() string {
	return filepath.Join(appdir.New(appName).UserConfig(), "config.toml")
}

// LoadOptions reads the options from fn or DefaultOptionsFile if fn is empty.
// A missing file is not an error. EnvSearchPath takes precedence over the
// search path from the file.
func LoadOptions(fn string) (Options, error) {
	o := Options{
		SearchPath: slices.Clone(DefaultDirs),
	}

	if fn == "" {
		fn = DefaultOptionsFile()
	}

	if _, err := toml.DecodeFile(fn, &o); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return o, fmt.Errorf("failed to load options from %s: %w", fn, err)
		}
		debug.V(1).Log("no options file at %s", fn)
	} else {
		debug.V(1).Log("loaded options from %s", fn)
	}

	if p := os.Getenv(EnvSearchPath); p != "" {
		debug.V(1).Log("search path from %s: %s", EnvSearchPath, p)
		o.SearchPath = filepath.SplitList(p)
	}

	trim(o.SearchPath)
	o.SearchPath = slices.DeleteFunc(o.SearchPath, func(s string) bool {
		return s == ""
	})

	return o, nil
}

// Locator returns a Locator for the configured search path.
func (o Options) Locator() *Locator {
	return NewLocator(o.SearchPath...)
}
