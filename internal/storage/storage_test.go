package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Varun5711/mealcounter/internal/config"
)

// runConformance checks the behaviour every adapter must share.
func runConformance(t *testing.T, s Storage) {
	ctx := context.Background()

	t.Run("missing namespace", func(t *testing.T) {
		val, found, err := s.Get(ctx, "never-written")
		require.NoError(t, err)
		require.False(t, found)
		require.Nil(t, val)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "auth-storage", []byte(`{"token":"abc"}`)))

		val, found, err := s.Get(ctx, "auth-storage")
		require.NoError(t, err)
		require.True(t, found)
		require.JSONEq(t, `{"token":"abc"}`, string(val))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "meal-storage", []byte(`{"mealHistory":[]}`)))
		require.NoError(t, s.Set(ctx, "meal-storage", []byte(`{"mealHistory":[{"id":"1"}]}`)))

		val, _, err := s.Get(ctx, "meal-storage")
		require.NoError(t, err)
		require.JSONEq(t, `{"mealHistory":[{"id":"1"}]}`, string(val))
	})

	t.Run("namespaces are independent", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "a", []byte("1")))
		require.NoError(t, s.Set(ctx, "b", []byte("2")))
		require.NoError(t, s.Remove(ctx, "a"))

		_, found, err := s.Get(ctx, "a")
		require.NoError(t, err)
		require.False(t, found)

		val, found, err := s.Get(ctx, "b")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "2", string(val))
	})

	t.Run("remove missing is not an error", func(t *testing.T) {
		require.NoError(t, s.Remove(ctx, "nothing-here"))
	})

	t.Run("returned bytes are a copy", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "copy", []byte("abc")))
		val, _, err := s.Get(ctx, "copy")
		require.NoError(t, err)
		val[0] = 'z'

		again, _, err := s.Get(ctx, "copy")
		require.NoError(t, err)
		require.Equal(t, "abc", string(again))
	})

	t.Run("invalid namespace", func(t *testing.T) {
		for _, ns := range []string{"", "../escape", "with space", "..", "a/b"} {
			require.ErrorIs(t, s.Set(ctx, ns, []byte("x")), ErrInvalidNamespace, ns)
			_, _, err := s.Get(ctx, ns)
			require.ErrorIs(t, err, ErrInvalidNamespace, ns)
			require.ErrorIs(t, s.Remove(ctx, ns), ErrInvalidNamespace, ns)
		}
	})
}

func TestMemory(t *testing.T) {
	runConformance(t, NewMemory())
}

func TestFile(t *testing.T) {
	s, err := NewFile(filepath.Join(t.TempDir(), "nested", "dir"))
	require.NoError(t, err)
	runConformance(t, s)
}

func TestFile_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "meal-storage", []byte(`{"mealHistory":[]}`)))
	require.NoError(t, first.Close())

	second, err := NewFile(dir)
	require.NoError(t, err)
	val, found, err := second.Get(ctx, "meal-storage")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `{"mealHistory":[]}`, string(val))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	require.Equal(t, "meal-storage.json", entries[0].Name())
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	prefix := "mealcounter-test:" + t.Name() + ":"
	s := NewRedisWithClient(client, prefix, 8)
	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		s.Close()
	})

	runConformance(t, s)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}})
	require.NoError(t, err)
	require.IsType(t, &Memory{}, mem)

	file, err := Open(ctx, &config.Config{Storage: config.StorageConfig{Driver: config.StorageFile, Dir: t.TempDir()}})
	require.NoError(t, err)
	require.IsType(t, &File{}, file)

	_, err = Open(ctx, &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}})
	require.Error(t, err)
}
