package interpreter

import (
	"fmt"
	"os"
)

type testExecutor struct {
	files  map[string][]byte
	output []string
}

func newTestExecutor(files map[string]string) *testExecutor {
	executor := &testExecutor{
		files:  make(map[string][]byte),
		output: make([]string, 0),
	}
	for name, content := range files {
		executor.files[name] = []byte(content)
	}
	return executor
}

func (self *testExecutor) Print(args ...string) {
	self.output = append(self.output, args...)
}

func (self *testExecutor) ReadFile(path string) ([]byte, error) {
	content, found := self.files[path]
	if !found {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

func (self *testExecutor) WriteFile(path string, content []byte) error {
	if path == "" {
		return fmt.Errorf("open: %w", os.ErrInvalid)
	}
	self.files[path] = content
	return nil
}
