package devsettings

import (
	"fmt"
	"strconv"

	"github.com/mkch/devsettings/dual"
)

// Node is a single sysfs attribute.
type Node struct {
	Path string
	FS   FS // The FS used to access Path. OS if nil.
}

// NewNode returns the Node of path on the running system.
func NewNode(path string) *Node {
	return &Node{Path: path, FS: OS}
}

func (n *Node) fs() FS {
	if n.FS == nil {
		return OS
	}
	return n.FS
}

// Exists reports whether the attribute is present.
// Settings of absent attributes should not be offered.
func (n *Node) Exists() bool {
	return n.fs().Exists(n.Path)
}

// Writable reports whether the attribute is present and can be written.
func (n *Node) Writable() bool {
	return n.fs().Writable(n.Path)
}

// Line returns the first line of the attribute.
func (n *Node) Line() (line string, ok bool) {
	return n.fs().ReadLine(n.Path)
}

// Value returns the first line of the attribute, or def if it can't be read.
func (n *Node) Value(def string) string {
	if line, ok := n.Line(); ok {
		return line
	}
	return def
}

// Bool returns false if the attribute reads "0" and true for any other
// value. def is returned if the attribute can't be read.
func (n *Node) Bool(def bool) bool {
	if line, ok := n.Line(); ok {
		return line != "0"
	}
	return def
}

// Dual returns the decoded value of a dual-value attribute, or def if the
// attribute can't be read. A value that can't be decoded is an error, never def.
func (n *Node) Dual(def int) (v int, err error) {
	line, ok := n.Line()
	if !ok {
		v = def
		return
	}
	v, err = dual.Decode(line)
	if err != nil {
		err = wrapNodeError(n, "get dual value", err)
	}
	return
}

// SetValue replaces the value of the attribute with s.
func (n *Node) SetValue(s string) (err error) {
	err = n.fs().WriteText(n.Path, s)
	if err != nil {
		err = wrapNodeError(n, "set value", err)
	}
	return
}

// SetBool writes "1" for true and "0" for false.
func (n *Node) SetBool(value bool) error {
	var s = "1"
	if !value {
		s = "0"
	}
	return n.SetValue(s)
}

// SetInt writes v in decimal.
func (n *Node) SetInt(v int) error {
	return n.SetValue(strconv.Itoa(v))
}

// SetDual writes v to both channels of a dual-value attribute.
// See dual.Encode for how negative values are written.
func (n *Node) SetDual(v int) (err error) {
	err = n.fs().WriteText(n.Path, dual.Encode(v))
	if err != nil {
		err = wrapNodeError(n, "set dual value", err)
	}
	return
}

func wrapNodeError(n *Node, action string, err error) error {
	return fmt.Errorf("failed to %v of %v: %w", action, n.Path, err)
}
