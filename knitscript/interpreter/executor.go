package interpreter

// Executor provides every side effect a builtin may need.
// Hosts implement it to control where files are read from and where output goes.
type Executor interface {
	Print(args ...string)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte) error
}
