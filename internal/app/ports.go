package app

import "io/fs"

// FileSystem is the port the scan and export use cases talk to.
type FileSystem interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
	MoveFile(src, dst string) error
	IsWritable(dir string) error
}

// ProgressFunc reports advisory progress: the name of the file just
// handled, how many files have been handled, and the total to handle.
// Correctness never depends on it being called.
type ProgressFunc func(name string, processed, total int)
