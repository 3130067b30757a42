package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runforge/runkit/pkg/paths"
)

func TestFullRejectsEmptyPath(t *testing.T) {
	_, err := paths.Full("")
	require.Error(t, err)
}

func TestFullExpandsEnvironment(t *testing.T) {
	t.Setenv("RUNKIT_TEST_DIR", "datasets")
	got, err := paths.Full("/tmp/$RUNKIT_TEST_DIR/cifar10")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/datasets/cifar10", got)
}

func TestFullExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := paths.Full("~/experiments")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "experiments"), got)

	got, err = paths.Full("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)
}

func TestFullAbsolutizesRelativePaths(t *testing.T) {
	got, err := paths.Full("some/relative/dir")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "some/relative/dir"), got)
}

func TestEnsureCreatesDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b")
	got, err := paths.Ensure(target)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
