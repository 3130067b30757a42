package filesystem_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runforge/runkit/pkg/filesystem"
)

func TestCopyFromBilly(t *testing.T) {
	staging := memfs.New()
	require.NoError(t, util.WriteFile(staging, "/data/train.csv", []byte("a,b\n1,2\n"), 0644))
	require.NoError(t, util.WriteFile(staging, "/data/nested/meta.yaml", []byte("name: cifar10\n"), 0644))
	require.NoError(t, util.WriteFile(staging, "/README", []byte("hi"), 0644))

	fs := filesystem.New()
	require.NoError(t, filesystem.CopyFromBilly(staging, fs))

	content, err := fs.ReadFile("/data/train.csv")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))

	content, err = fs.ReadFile("/data/nested/meta.yaml")
	require.NoError(t, err)
	assert.Equal(t, "name: cifar10\n", string(content))

	assert.True(t, fs.Exists("/README"))
}

func TestIsAbs(t *testing.T) {
	fs := filesystem.New()
	assert.True(t, fs.IsAbs("/datasets/cifar10"))
	assert.False(t, fs.IsAbs("datasets/cifar10"))
}

func TestJoinAndDir(t *testing.T) {
	fs := filesystem.New()
	joined := fs.Join("datasets", "cifar10", "train.bin")
	assert.Equal(t, "datasets/cifar10/train.bin", joined)
	assert.Equal(t, "datasets/cifar10", fs.Dir(joined))
}
