package devsettings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// FS is the file access used by Node.
// Tests can supply a fake implementation.
type FS interface {
	// ReadLine returns the first line of the file at path, without the line
	// terminator. ok is false if the file is missing, unreadable or empty.
	ReadLine(path string) (line string, ok bool)
	// WriteText replaces the contents of the existing file at path.
	WriteText(path, contents string) error
	// Exists reports whether a file exists at path.
	Exists(path string) bool
	// Writable reports whether the file at path exists and can be written by
	// the calling process.
	Writable(path string) bool
}

// ErrNoPath is returned when writing to an empty path.
var ErrNoPath = errors.New("no path")

// OS is the FS of the running system.
var OS FS = osFS{}

type osFS struct{}

func (osFS) ReadLine(path string) (line string, ok bool) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	line, err = bufio.NewReader(f).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		line = ""
		return
	}
	// A line ends at "\n", "\r" or "\r\n".
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	return line, true
}

// WriteText does not create path. A missing attribute means the driver is
// not loaded and creating a regular file in its place would hide that.
func (osFS) WriteText(path, contents string) (err error) {
	if path == "" {
		err = fmt.Errorf("failed to write %q: %w", contents, ErrNoPath)
		return
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		err = fmt.Errorf("failed to write %q to %v: %w", contents, path, err)
		return
	}
	if _, err = f.Write([]byte(contents)); err != nil {
		f.Close()
		err = fmt.Errorf("failed to write %q to %v: %w", contents, path, err)
		return
	}
	// sysfs reports a rejected value from close as well as from write.
	if err = f.Close(); err != nil {
		err = fmt.Errorf("failed to write %q to %v: %w", contents, path, err)
	}
	return
}

func (osFS) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func (fs osFS) Writable(path string) bool {
	return fs.Exists(path) && writable(path)
}
