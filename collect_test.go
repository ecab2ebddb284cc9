package zipstore

import (
	"context"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/zipstore/internal/testutils"
)

func TestCollectDir(t *testing.T) {
	t.Run("collects plain files in walk order with slash-separated names", func(t *testing.T) {
		root := testutils.WriteTree(t, map[string]string{
			"index.html":       "<html></html>",
			"src/app.js":       "console.log(1);",
			"src/lib/util.js":  "export const n = 1;",
			"assets/logo.text": "logo",
		})

		entries, err := CollectDir(context.Background(), root, 4)
		assert.NoError(t, err)

		wantNames := []string{"assets/logo.text", "index.html", "src/app.js", "src/lib/util.js"}
		assert.Equal(t, len(wantNames), len(entries))
		for i, name := range wantNames {
			assert.Equal(t, name, entries[i].Name)
			assert.False(t, entries[i].Modified.IsZero(), "expected %s to carry its modification time", name)
		}

		assert.Equal(t, []byte("<html></html>"), entries[1].Content)
		assert.Equal(t, []byte("console.log(1);"), entries[2].Content)
	})

	t.Run("does not emit directory entries", func(t *testing.T) {
		root := testutils.WriteTree(t, map[string]string{
			"a/b/c/deep.txt": "deep",
		})

		entries, err := CollectDir(context.Background(), root, 1)
		assert.NoError(t, err)

		assert.Equal(t, 1, len(entries))
		assert.Equal(t, "a/b/c/deep.txt", entries[0].Name)
	})

	t.Run("returns an error for a missing root", func(t *testing.T) {
		_, err := CollectDir(context.Background(), "testdata/does-not-exist", 1)
		assert.Error(t, err)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		root := testutils.WriteTree(t, map[string]string{
			"one.txt": "1",
			"two.txt": "2",
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := CollectDir(ctx, root, 1)
		assert.Error(t, err)
	})

	t.Run("honors cancellation during discovery, before any file is read", func(t *testing.T) {
		root := testutils.WriteTree(t, map[string]string{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := CollectDir(ctx, root, 1)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("collected entries archive cleanly end to end", func(t *testing.T) {
		root := testutils.WriteTree(t, map[string]string{
			"index.html": "<html></html>",
			"src/app.js": "console.log(1);",
		})

		entries, err := CollectDir(context.Background(), root, 2)
		assert.NoError(t, err)

		a := newTestArchiver(t)
		addEntries(t, a, entries)

		assert.NoError(t, Validate(a.Generate()))
	})
}
