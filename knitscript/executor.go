package knitscript

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OsExecutor reads and writes charts on the local file system.
// Relative paths are resolved against `BaseDir`.
type OsExecutor struct {
	BaseDir string
	Output  io.Writer
}

func NewOsExecutor(baseDir string, output io.Writer) OsExecutor {
	return OsExecutor{
		BaseDir: baseDir,
		Output:  output,
	}
}

func (self OsExecutor) resolve(path string) string {
	if filepath.IsAbs(path) || self.BaseDir == "" {
		return path
	}
	return filepath.Join(self.BaseDir, path)
}

func (self OsExecutor) Print(args ...string) {
	fmt.Fprintln(self.Output, strings.Join(args, " "))
}

func (self OsExecutor) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(self.resolve(path))
}

func (self OsExecutor) WriteFile(path string, content []byte) error {
	return os.WriteFile(self.resolve(path), content, 0644)
}

// MemoryExecutor keeps files and output in memory.
// It is used for tests and for running programs without touching the file system.
type MemoryExecutor struct {
	Files  map[string][]byte
	Output []string
}

func NewMemoryExecutor(files map[string]string) *MemoryExecutor {
	executor := &MemoryExecutor{
		Files:  make(map[string][]byte, len(files)),
		Output: make([]string, 0),
	}
	for name, content := range files {
		executor.Files[name] = []byte(content)
	}
	return executor
}

func (self *MemoryExecutor) Print(args ...string) {
	self.Output = append(self.Output, strings.Join(args, " "))
}

func (self *MemoryExecutor) ReadFile(path string) ([]byte, error) {
	content, found := self.Files[path]
	if !found {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return content, nil
}

func (self *MemoryExecutor) WriteFile(path string, content []byte) error {
	self.Files[path] = content
	return nil
}
