package confset

import (
	"io"
	"runtime"
	"slices"

	"github.com/gopasspw/gopass/pkg/debug"
	"golang.org/x/sync/errgroup"
)

// LoadAll loads every document the locator can list. Entries that are not
// files are skipped. A document that fails to load is logged and skipped,
// it does not prevent the others from loading. The result is sorted by name.
func LoadAll(loc *Locator) []*Document {
	if loc == nil {
		loc = NewLocator()
	}

	names := loc.ListAvailable()
	docs := make([]*Document, len(names))

	// documents are independent and only read, so parse them concurrently.
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		eg.Go(func() error {
			d, err := Load(name, loc)
			if err != nil {
				debug.Log("failed to load %q: %s", name, err)

				return nil
			}
			if !d.Exists() {
				debug.V(3).Log("skipping %q, not a file", name)

				return nil
			}
			docs[i] = d

			return nil
		})
	}
	_ = eg.Wait()

	return slices.DeleteFunc(docs, func(d *Document) bool {
		return d == nil
	})
}

// MaxDisplayWidth returns the widest key=value line across all documents.
func MaxDisplayWidth(docs []*Document) int {
	width := 1
	for _, d := range docs {
		width = max(width, d.MaxDisplayWidth())
	}

	return width
}

// PrintAll prints all documents with a common column width so the help
// columns line up across files.
func PrintAll(w io.Writer, docs []*Document, opts PrintOptions) error {
	if opts.Width < 1 {
		opts.Width = MaxDisplayWidth(docs)
	}

	for _, d := range docs {
		if err := d.Print(w, opts); err != nil {
			return err
		}
	}

	return nil
}
