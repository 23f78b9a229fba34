package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWrite_ConcatenatesFragments(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bundle.md")

	written, err := Write(out, []string{"# T\n", "body\n", "```\n"}, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, out, written)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# T\nbody\n```\n", string(data))
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bundle.md")
	require.NoError(t, os.WriteFile(out, []byte("a much longer previous bundle\n"), 0o644))

	_, err := Write(out, []string{"new\n"}, nil)

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWrite_ReturnsAbsolutePath(t *testing.T) {
	chdir(t, t.TempDir())

	written, err := Write("bundle.md", nil, nil)

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(written))
	assert.Equal(t, "bundle.md", filepath.Base(written))
}

func TestWrite_FailsWhenDirectoryMissing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "bundle.md")

	written, err := Write(out, []string{"x"}, nil)

	require.Error(t, err)
	assert.Empty(t, written)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
