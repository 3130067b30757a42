// Package filesystem wraps the kustomize kyaml filesystem abstraction so
// dataset staging, archive extraction and result tables can run against
// an in-memory filesystem in tests and the real disk in runners.
package filesystem

import (
	"io"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"sigs.k8s.io/kustomize/kyaml/filesys"
)

type FileSystem struct {
	Root      string
	Separator string
	filesys.FileSystem
}

// New returns an in-memory filesystem.
func New() *FileSystem {
	return &FileSystem{
		Root:       string(filepath.Separator),
		Separator:  string(filepath.Separator),
		FileSystem: filesys.MakeFsInMemory(),
	}
}

// NewOnDisk returns a filesystem backed by the host disk.
func NewOnDisk() *FileSystem {
	return &FileSystem{
		Root:       string(filepath.Separator),
		Separator:  string(filepath.Separator),
		FileSystem: filesys.MakeFsOnDisk(),
	}
}

func (f *FileSystem) SkipDir() error {
	return filepath.SkipDir
}

func (f *FileSystem) Dir(path string) string {
	return filepath.Dir(path)
}

func (f *FileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (f *FileSystem) IsAbs(path string) bool {
	cleanPath := filepath.Clean(path)
	return len(cleanPath) > 0 && string(cleanPath[0]) == f.Root
}

// CopyFromBilly recursively copies the contents of a billy filesystem
// (e.g. an in-memory staging area) into fileSystem.
func CopyFromBilly(origin billy.Filesystem, fileSystem *FileSystem) error {
	var copyRecursively func(currentPath string) error
	copyRecursively = func(currentPath string) error {
		files, err := origin.ReadDir(currentPath)
		if err != nil {
			return err
		}

		for _, file := range files {
			fileName := fileSystem.Join(currentPath, file.Name())
			if file.IsDir() {
				if innerErr := fileSystem.MkdirAll(fileName); innerErr != nil {
					return innerErr
				}
				if innerErr := copyRecursively(fileName); innerErr != nil {
					return innerErr
				}
				continue
			}

			src, innerErr := origin.Open(fileName)
			if innerErr != nil {
				return innerErr
			}

			dst, innerErr := fileSystem.Create(fileName)
			if innerErr != nil {
				return innerErr
			}

			if _, innerErr = io.Copy(dst, src); innerErr != nil {
				return innerErr
			}
			if innerErr = dst.Close(); innerErr != nil {
				return innerErr
			}
			if innerErr = src.Close(); innerErr != nil {
				return innerErr
			}
		}
		return nil
	}
	return copyRecursively("")
}
