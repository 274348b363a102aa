package confset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes the settings selected by filter (see PrintOptions) of all
// documents as a YAML list. Unlike Print it includes empty values.
func WriteYAML(w io.Writer, docs []*Document, filter string) error {
	out := make([]Setting, 0, 64)
	for _, d := range docs {
		for _, s := range d.Settings() {
			if d.matches(filter, s.Key) {
				out = append(out, s)
			}
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	return enc.Close()
}
