// devset reads and writes device settings exposed in sysfs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"syscall"

	"github.com/mkch/devsettings"
	"github.com/mkch/devsettings/resource"
)

type options struct {
	dual       bool
	boolean    bool
	stringsXML string
	format     string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(),
			`Usage: devset [options] command [args]
Commands:
  get PATH [DEFAULT]   Print the value of a sysfs attribute
  set PATH VALUE       Write the value of a sysfs attribute
  probe PATH...        Print whether attributes exist and are writable
  label LABEL...       Print the localized labels`)
		flag.PrintDefaults()
	}
	var opts options
	flag.BoolVar(&opts.dual, "dual", false, "Attribute holds a left and a right value")
	flag.BoolVar(&opts.boolean, "bool", false, "Attribute holds 0 or 1")
	flag.StringVar(&opts.stringsXML, "strings", "", "Android string resource `file` used by label")
	flag.StringVar(&opts.format, "format", "%s", "Resource name `format` used by label")
	flag.Parse()

	err := run(os.Stdout, devsettings.OS, opts, flag.Args())
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var errno syscall.Errno
		if errors.As(err, &errno) {
			os.Exit(int(errno))
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(w io.Writer, fs devsettings.FS, opts options, args []string) (err error) {
	if len(args) == 0 || opts.dual && opts.boolean {
		return errUsage
	}
	switch args[0] {
	case "get":
		return get(w, fs, opts, args[1:])
	case "set":
		return set(fs, opts, args[1:])
	case "probe":
		return probe(w, fs, args[1:])
	case "label":
		return label(w, opts, args[1:])
	}
	return errUsage
}

func get(w io.Writer, fs devsettings.FS, opts options, args []string) (err error) {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	node := &devsettings.Node{Path: args[0], FS: fs}
	def, hasDef := "", len(args) == 2
	if hasDef {
		def = args[1]
	}
	if !hasDef && !node.Exists() {
		return fmt.Errorf("%v: %w", node.Path, os.ErrNotExist)
	}

	switch {
	case opts.dual:
		var defInt int
		if hasDef {
			if defInt, err = strconv.Atoi(def); err != nil {
				return fmt.Errorf("invalid default: %w", err)
			}
		}
		var v int
		if v, err = node.Dual(defInt); err != nil {
			return
		}
		_, err = fmt.Fprintln(w, v)
	case opts.boolean:
		var defBool bool
		if hasDef {
			if defBool, err = strconv.ParseBool(def); err != nil {
				return fmt.Errorf("invalid default: %w", err)
			}
		}
		_, err = fmt.Fprintln(w, node.Bool(defBool))
	default:
		_, err = fmt.Fprintln(w, node.Value(def))
	}
	return
}

func set(fs devsettings.FS, opts options, args []string) (err error) {
	if len(args) != 2 {
		return errUsage
	}
	node := &devsettings.Node{Path: args[0], FS: fs}
	switch {
	case opts.dual:
		var v int
		if v, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
		return node.SetDual(v)
	case opts.boolean:
		var v bool
		if v, err = strconv.ParseBool(args[1]); err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
		return node.SetBool(v)
	}
	return node.SetValue(args[1])
}

func probe(w io.Writer, fs devsettings.FS, paths []string) (err error) {
	if len(paths) == 0 {
		return errUsage
	}
	for _, path := range paths {
		node := &devsettings.Node{Path: path, FS: fs}
		var flags = "absent"
		if node.Writable() {
			flags = "rw"
		} else if node.Exists() {
			flags = "ro"
		}
		if _, err = fmt.Fprintf(w, "%v\t%v\n", flags, path); err != nil {
			return
		}
	}
	return
}

func label(w io.Writer, opts options, labels []string) (err error) {
	if len(labels) == 0 {
		return errUsage
	}
	var res resource.Resources
	if opts.stringsXML != "" {
		if res, err = resource.LoadStringsFile(opts.stringsXML); err != nil {
			return
		}
	}
	for _, l := range labels {
		if _, err = fmt.Fprintln(w, resource.Localized(res, l, opts.format)); err != nil {
			return
		}
	}
	return
}
