package output

import "fmt"

// Op names the stage of an image write that failed
type Op string

const (
	OpCreate   Op = "create"
	OpWrite    Op = "write"
	OpCompress Op = "compress"
	OpClose    Op = "close"
)

// WriteError reports a failed output write together with the file and stage involved
type WriteError struct {
	Op   Op
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
