package main

import (
	"fmt"

	"github.com/gopasspw/confset"
	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/urfave/cli/v2"
)

func run(c *cli.Context) error {
	if c.NArg() > 1 {
		return fmt.Errorf("%w: expected at most one argument, got %d", confset.ErrMalformedFilter, c.NArg())
	}

	f, err := confset.ParseFilter(c.Args().First())
	if err != nil {
		return err
	}

	opts, err := confset.LoadOptions(c.String("config"))
	if err != nil {
		return err
	}
	loc := opts.Locator()
	debug.Log("using %s for %+v", loc, f)

	docs, err := load(loc, f, c.StringSlice("comment"))
	if err != nil {
		return err
	}

	filter := f.Qualified()
	out := c.App.Writer

	if c.Bool("yaml") {
		return confset.WriteYAML(out, docs, filter)
	}

	po := confset.PrintOptions{
		Filter: filter,
		Sort:   c.Bool("sort") || opts.Sort,
		Info:   c.Bool("info") || opts.Info,
		Width:  confset.MaxDisplayWidth(docs),
	}

	if pattern := c.String("match"); pattern != "" {
		return printMatching(c, docs, po, pattern)
	}

	return confset.PrintAll(out, docs, po)
}

// load returns the documents selected by f. A write selector is applied
// first and the document is read again afterwards.
func load(loc *confset.Locator, f confset.Filter, comments []string) ([]*confset.Document, error) {
	if f.Name == "" {
		return confset.LoadAll(loc), nil
	}

	doc, err := confset.Load(f.Name, loc)
	if err != nil {
		return nil, err
	}

	if !f.IsWrite() {
		return []*confset.Document{doc}, nil
	}

	if err := doc.Set(f.Key, f.Value, comments...); err != nil {
		return nil, err
	}

	doc, err = confset.Load(f.Name, loc)
	if err != nil {
		return nil, err
	}

	return []*confset.Document{doc}, nil
}

func printMatching(c *cli.Context, docs []*confset.Document, po confset.PrintOptions, pattern string) error {
	for _, doc := range docs {
		keys := doc.Keys()
		if po.Sort {
			keys = doc.SortedKeys()
		}

		matching, err := confset.MatchKeys(pattern, keys)
		if err != nil {
			return err
		}

		for _, k := range matching {
			if po.Filter != "" && po.Filter != doc.Name() && po.Filter != k {
				continue
			}

			kpo := po
			kpo.Filter = k
			if err := doc.Print(c.App.Writer, kpo); err != nil {
				return err
			}
		}
	}

	return nil
}
