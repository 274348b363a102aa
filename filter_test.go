package confset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in        string
		want      Filter
		qualified string
	}{
		{in: "", want: Filter{}},
		{in: "test_name", want: Filter{Name: "test_name"}, qualified: "test_name"},
		{in: "test_name12345", want: Filter{Name: "test_name12345"}, qualified: "test_name12345"},
		{in: "test_name.test_attr", want: Filter{Name: "test_name", Key: "test_attr"}, qualified: "test_name.test_attr"},
		{in: "test_name._test_attr", want: Filter{Name: "test_name", Key: "_test_attr"}, qualified: "test_name._test_attr"},
		{in: "test_name.TEST_ATTR", want: Filter{Name: "test_name", Key: "TEST_ATTR"}, qualified: "test_name.TEST_ATTR"},
		{in: "nfs-common.NEED_IDMAPD", want: Filter{Name: "nfs-common", Key: "NEED_IDMAPD"}, qualified: "nfs-common.NEED_IDMAPD"},
		{
			in:        "test_name.test_attr=test_value",
			want:      Filter{Name: "test_name", Key: "test_attr", Value: "test_value", HasValue: true},
			qualified: "test_name.test_attr",
		},
		{
			in:        `test_name.test_attr="test value with space"`,
			want:      Filter{Name: "test_name", Key: "test_attr", Value: `"test value with space"`, HasValue: true},
			qualified: "test_name.test_attr",
		},
		{
			in:        `test_name.test_attr="special characters %#$&%#!% a=b"`,
			want:      Filter{Name: "test_name", Key: "test_attr", Value: `"special characters %#$&%#!% a=b"`, HasValue: true},
			qualified: "test_name.test_attr",
		},
		{
			in:        "test_name.test_attr=",
			want:      Filter{Name: "test_name", Key: "test_attr", HasValue: true},
			qualified: "test_name.test_attr",
		},
	} {
		f, err := ParseFilter(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, f, tc.in)
		assert.Equal(t, tc.qualified, f.Qualified(), tc.in)
		assert.Equal(t, tc.want.HasValue, f.IsWrite(), tc.in)
	}
}

func TestParseFilterMalformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		".test_attr",
		".test_attr=test_value",
		"=test_value",
		"test_name=test_value",
		"test_name.name.attr=test_value",
		"test_name.name.attr",
		"test name.test_attr=test_value",
		"test%name.test_attr=test_value",
		"test_name.test_attr = test_value",
		"test_name.",
		"test_name.=value",
	} {
		_, err := ParseFilter(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, ErrMalformedFilter, in)
	}
}

func TestMatchKeys(t *testing.T) {
	t.Parallel()

	keys := []string{"grub.GRUB_TIMEOUT", "grub.GRUB_DEFAULT", "grub.OTHER", "keyboard.XKBLAYOUT"}

	got, err := MatchKeys("grub.GRUB_*", keys)
	require.NoError(t, err)
	assert.Equal(t, []string{"grub.GRUB_TIMEOUT", "grub.GRUB_DEFAULT"}, got)

	got, err = MatchKeys("*.X*", keys)
	require.NoError(t, err)
	assert.Equal(t, []string{"keyboard.XKBLAYOUT"}, got)

	got, err = MatchKeys("grub*", keys)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = MatchKeys("grub.[", keys)
	require.Error(t, err)
}
