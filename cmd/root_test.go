package cmd

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFileAt(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		dir := t.TempDir()
		filename := path.Join(dir, ".lendpool.yaml")
		require.Nil(t, os.WriteFile(filename, []byte("db:\n"), 0o600))

		assert.Equal(t, filename, configFileAt(dir))
	})

	t.Run("missing", func(t *testing.T) {
		assert.Empty(t, configFileAt(t.TempDir()))
	})

	t.Run("dir", func(t *testing.T) {
		dir := t.TempDir()
		require.Nil(t, os.Mkdir(path.Join(dir, ".lendpool.yaml"), 0o700))

		assert.Empty(t, configFileAt(dir))
	})

	t.Run("unreadable parent", func(t *testing.T) {
		assert.Empty(t, configFileAt(path.Join(t.TempDir(), "nope")))
	})
}
