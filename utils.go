package confset

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/gobwas/glob"
)

// globMatch matches s against a shell style pattern. Dots separate the document
// name from the key, so a single asterisk does not cross into the key.
func globMatch(pattern, s string) (bool, error) {
	g, err := glob.Compile(pattern, '.')
	if err != nil {
		return false, err
	}

	return g.Match(s), nil
}

// splitLine splits an assignment on the first '=' only. Everything after it,
// including further '=', belongs to the value. Both parts are trimmed.
func splitLine(line string) (key, value string, ok bool) { //nolint:nonamedreturns
	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	return strings.TrimSpace(k), strings.TrimSpace(v), true
}

// isComment reports whether the first non-whitespace character is '#'.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// stripComment removes the leading '#' characters and surrounding whitespace.
func stripComment(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}

// rawKey returns the key of an assignment line or false for comments and
// lines without '='.
func rawKey(line string) (string, bool) {
	if isComment(line) {
		return "", false
	}
	k, _, ok := splitLine(line)

	return k, ok
}

func trim(s []string) {
	for i, e := range s {
		s[i] = strings.TrimSpace(e)
	}
}

// eachLine calls fn for every line of r, without the line terminator.
// Unlike bufio.Scanner it does not limit the length of a line.
func eachLine(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			fn(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
