package confset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const printInput = `# the timeout
# in seconds
timeout=5
empty=
# first entry
default=0
`

func TestPrint(t *testing.T) {
	t.Parallel()

	d := Parse("grub", strings.NewReader(printInput))

	for _, tc := range []struct {
		name string
		opts PrintOptions
		out  string
	}{
		{
			name: "default",
			out:  "grub.timeout=5\ngrub.default=0\n",
		},
		{
			name: "sorted",
			opts: PrintOptions{Sort: true},
			out:  "grub.default=0\ngrub.timeout=5\n",
		},
		{
			name: "filter",
			opts: PrintOptions{Filter: "grub.default"},
			out:  "grub.default=0\n",
		},
		{
			name: "filter by document name",
			opts: PrintOptions{Filter: "grub"},
			out:  "grub.timeout=5\ngrub.default=0\n",
		},
		{
			name: "filter without match",
			opts: PrintOptions{Filter: "grub.nope"},
			out:  "",
		},
		{
			name: "empty values are hidden",
			opts: PrintOptions{Filter: "grub.empty"},
			out:  "",
		},
		{
			name: "info",
			opts: PrintOptions{Info: true},
			out: "grub.timeout=5 - the timeout\n" +
				"                 in seconds\n" +
				"grub.empty=\n" +
				"grub.default=0 - first entry\n",
		},
		{
			name: "info with width",
			opts: PrintOptions{Info: true, Width: 20, Filter: "grub.timeout"},
			out: "grub.timeout=5       - the timeout\n" +
				"                       in seconds\n",
		},
		{
			name: "info shows empty values",
			opts: PrintOptions{Info: true, Filter: "grub.empty"},
			out:  "grub.empty=\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			require.NoError(t, d.Print(buf, tc.opts))
			assert.Equal(t, tc.out, buf.String())
		})
	}
}

func TestPrintEmptyDocument(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	require.NoError(t, Parse("t", strings.NewReader("")).Print(buf, PrintOptions{Info: true}))
	assert.Empty(t, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestPrintWriteError(t *testing.T) {
	t.Parallel()

	d := Parse("grub", strings.NewReader(printInput))
	require.ErrorIs(t, d.Print(failWriter{}, PrintOptions{}), assert.AnError)
	require.ErrorIs(t, d.Print(failWriter{}, PrintOptions{Info: true}), assert.AnError)
}

func TestLjust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab  ", ljust("ab", 4))
	assert.Equal(t, "abcd", ljust("abcd", 2))
	assert.Equal(t, "", ljust("", 0))
}
