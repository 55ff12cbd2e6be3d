package giga_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/giga"
	"github.com/fwojciec/giga/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadContent(t *testing.T) {
	t.Parallel()

	t.Run("reads the committed content", func(t *testing.T) {
		t.Parallel()
		runner := &mock.GitRunner{
			FullNameFn: func(_ context.Context, path string) (string, error) {
				assert.Equal(t, "/repo/pkg/a.go", path)
				return "pkg/a.go", nil
			},
			ShowHeadFn: func(_ context.Context, dir, name string) ([]byte, error) {
				assert.Equal(t, "/repo/pkg", dir)
				assert.Equal(t, "pkg/a.go", name)
				return []byte("package pkg\n"), nil
			},
		}

		content, tracked, err := giga.HeadContent(context.Background(), runner, "/repo/pkg/a.go")

		require.NoError(t, err)
		assert.True(t, tracked)
		assert.Equal(t, "package pkg\n", string(content))
	})

	t.Run("untracked files have no content", func(t *testing.T) {
		t.Parallel()
		runner := &mock.GitRunner{
			FullNameFn: func(context.Context, string) (string, error) { return "", nil },
		}

		content, tracked, err := giga.HeadContent(context.Background(), runner, "/repo/new.go")

		require.NoError(t, err)
		assert.False(t, tracked)
		assert.Nil(t, content)
	})

	t.Run("propagates git errors", func(t *testing.T) {
		t.Parallel()
		runner := &mock.GitRunner{
			FullNameFn: func(context.Context, string) (string, error) { return "", giga.ErrNotRepository },
		}

		_, _, err := giga.HeadContent(context.Background(), runner, "/tmp/a.go")

		require.True(t, errors.Is(err, giga.ErrNotRepository))
	})
}

func TestLineCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, giga.LineCount(nil))
	assert.Equal(t, 2, giga.LineCount([]byte("a\n")))
	assert.Equal(t, 3, giga.LineCount([]byte("a\nb\nc")))
}
