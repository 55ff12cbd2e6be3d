package diffcmd_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/giga"
	"github.com/fwojciec/giga/diffcmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   giga.Patch
	}{
		{"1c1,3", giga.Patch{Kind: giga.PatchModified, Start: 0, Count: 3}},
		{"2a3,4", giga.Patch{Kind: giga.PatchAdded, Start: 2, Count: 2}},
		{"5d6", giga.Patch{Kind: giga.PatchRemoved, Start: 5}},
		{"0a1,7", giga.Patch{Kind: giga.PatchAdded, Start: 0, Count: 7}},
		{"3c3", giga.Patch{Kind: giga.PatchModified, Start: 2, Count: 1}},
		{"4,6c4", giga.Patch{Kind: giga.PatchModified, Start: 3, Count: 1}},
		{"3,4d2", giga.Patch{Kind: giga.PatchRemoved, Start: 1}},
		{"1,2d0", giga.Patch{Kind: giga.PatchRemoved, Start: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()

			p, err := diffcmd.ParseHeader(tt.header)

			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	t.Run("rejects malformed headers", func(t *testing.T) {
		t.Parallel()

		for _, h := range []string{"1x2", "1c", "c1", "1,c2", "12", "1c2,", "1c2,1"} {
			_, err := diffcmd.ParseHeader(h)
			assert.Error(t, err, h)
		}
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("collects every header and skips content", func(t *testing.T) {
		t.Parallel()

		out := strings.Join([]string{
			"1c1,3",
			"< old",
			"---",
			"> new one",
			"> new two",
			"> new three",
			"5d6",
			"< gone",
			"7a9,10",
			"> added",
			"> added",
			`\ No newline at end of file`,
		}, "\n")

		diff, err := diffcmd.Parse(strings.NewReader(out))

		require.NoError(t, err)
		assert.Equal(t, giga.Diff{
			{Kind: giga.PatchModified, Start: 0, Count: 3},
			{Kind: giga.PatchRemoved, Start: 5},
			{Kind: giga.PatchAdded, Start: 8, Count: 2},
		}, diff)
	})

	t.Run("returns empty diff for identical inputs", func(t *testing.T) {
		t.Parallel()

		diff, err := diffcmd.Parse(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("reports the line of a malformed header", func(t *testing.T) {
		t.Parallel()

		_, err := diffcmd.Parse(strings.NewReader("1c1\n< a\n---\n> b\n2q3\n"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 5")
	})
}
