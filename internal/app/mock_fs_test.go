package app

import (
	"io/fs"
	"path/filepath"
	"time"
)

type mockEntry struct {
	path  string
	isDir bool
	size  int64
}

type fileOp struct {
	src string
	dst string
}

type mockFS struct {
	entries  []mockEntry // walk order
	statErr  map[string]error
	existing map[string]bool // destinations present before the run
	created  map[string]bool // destinations written during the run
	failOps  map[string]error
	writable error

	copies []fileOp
	moves  []fileOp
	mkdirs []string
}

func (m *mockFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	for _, entry := range m.entries {
		var mode fs.FileMode
		if entry.isDir {
			mode = fs.ModeDir
		}
		err := fn(entry.path, mockDirEntry{name: filepath.Base(entry.path), mode: mode}, nil)
		if err == fs.SkipDir {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	if err := m.statErr[path]; err != nil {
		return nil, err
	}
	for _, entry := range m.entries {
		if entry.path == path {
			return mockFileInfo{name: filepath.Base(path), size: entry.size, dir: entry.isDir}, nil
		}
	}
	return nil, fs.ErrNotExist
}

func (m *mockFS) Exists(path string) (bool, error) {
	return m.existing[path] || m.created[path], nil
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mkdirs = append(m.mkdirs, path)
	return nil
}

func (m *mockFS) CopyFile(src, dst string) error {
	if err := m.failOps[src]; err != nil {
		return err
	}
	if m.created == nil {
		m.created = make(map[string]bool)
	}
	m.created[dst] = true
	m.copies = append(m.copies, fileOp{src: src, dst: dst})
	return nil
}

func (m *mockFS) MoveFile(src, dst string) error {
	if err := m.failOps[src]; err != nil {
		return err
	}
	if m.created == nil {
		m.created = make(map[string]bool)
	}
	m.created[dst] = true
	m.moves = append(m.moves, fileOp{src: src, dst: dst})
	return nil
}

func (m *mockFS) IsWritable(dir string) error {
	return m.writable
}

type mockDirEntry struct {
	name string
	mode fs.FileMode
}

func (m mockDirEntry) Name() string               { return m.name }
func (m mockDirEntry) IsDir() bool                { return m.mode.IsDir() }
func (m mockDirEntry) Type() fs.FileMode          { return m.mode.Type() }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (m mockFileInfo) Name() string { return m.name }
func (m mockFileInfo) Size() int64  { return m.size }
func (m mockFileInfo) Mode() fs.FileMode {
	if m.dir {
		return fs.ModeDir
	}
	return 0
}
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.dir }
func (m mockFileInfo) Sys() interface{}   { return nil }
