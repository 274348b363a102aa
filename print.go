package confset

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// helpSeparator separates a key=value column from its first help line.
const helpSeparator = " - "

// PrintOptions control how settings are printed.
type PrintOptions struct {
	// Filter selects a single qualified key. Empty or the document name
	// selects all settings.
	Filter string
	// Sort prints keys in lexicographic instead of file order.
	Sort bool
	// Width is the key=value column width. Zero uses the width of the
	// document itself, set it to align the columns of several documents.
	Width int
	// Info prints the help lines next to each setting.
	Info bool
}

// matches reports whether the qualified key is selected by filter.
func (d *Document) matches(filter, key string) bool {
	return filter == "" || filter == d.name || filter == key
}

// PrintSettings prints the settings to stdout.
func (d *Document) PrintSettings(opts PrintOptions) error {
	return d.Print(os.Stdout, opts)
}

// Print writes the selected settings to w, one key=value per line.
//
// Without Info settings with an empty value are skipped. With Info every
// selected setting is printed, the first help line separated by " - " after
// the padded key=value column and the remaining help lines aligned below it.
func (d *Document) Print(w io.Writer, opts PrintOptions) error {
	keys := d.order
	if opts.Sort {
		keys = d.SortedKeys()
	}

	width := opts.Width
	if width < 1 {
		width = d.MaxDisplayWidth()
	}
	indent := strings.Repeat(" ", width+len(helpSeparator))

	for _, k := range keys {
		if !d.matches(opts.Filter, k) {
			continue
		}

		s := d.settings[k]
		kv := s.Key + "=" + s.Value

		if !opts.Info || len(s.Help) < 1 {
			if !opts.Info && s.Value == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, kv); err != nil {
				return err
			}

			continue
		}

		if _, err := fmt.Fprintln(w, ljust(kv, width)+helpSeparator+s.Help[0]); err != nil {
			return err
		}
		for _, h := range s.Help[1:] {
			if _, err := fmt.Fprintln(w, indent+h); err != nil {
				return err
			}
		}
	}

	return nil
}

// ljust pads s with spaces to width bytes.
func ljust(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
