package fsutil

import (
	"errors"
	"os"
)

// ErrIsDirectory is the cause recorded when the input path names a directory.
var ErrIsDirectory = errors.New("is a directory")

// OpenError reports an input path that could not be opened for reading.
type OpenError struct {
	Path string
	Err  error
}

// Error returns the user-facing message. The cause is left to Unwrap.
func (e *OpenError) Error() string {
	return "could not open file: " + e.Path
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// OpenInput opens path for sequential reading. Any failure, including a
// path that names a directory, is returned as an *OpenError. The caller
// owns the returned file and must close it.
func OpenInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		f.Close()
		return nil, &OpenError{Path: path, Err: ErrIsDirectory}
	}

	return f, nil
}

// Cause returns the underlying error of an *OpenError, or err itself.
func Cause(err error) error {
	var openErr *OpenError
	if errors.As(err, &openErr) && openErr.Err != nil {
		return openErr.Err
	}
	return err
}
