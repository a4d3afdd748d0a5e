package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	. "github.com/mkch/asserting"
	"github.com/mkch/devsettings"
	"github.com/mkch/devsettings/dual"
	"github.com/mkch/devsettings/resource"
)

func writeFile(t testing.TB, path, content string) {
	t.Helper()
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGetSet(t1 *testing.T) {
	t := NewTB(t1)
	dir := t1.TempDir()
	gain := filepath.Join(dir, "gain")
	enable := filepath.Join(dir, "enable")
	writeFile(t1, gain, "254 254\n")
	writeFile(t1, enable, "0\n")

	var out bytes.Buffer
	t.AssertNoError(run(&out, devsettings.OS, options{dual: true}, []string{"get", gain}))
	t.AssertEqual(out.String(), "-2\n")

	t.AssertNoError(run(&out, devsettings.OS, options{dual: true}, []string{"set", gain, "5"}))
	buf, err := ioutil.ReadFile(gain)
	t.AssertNoError(err)
	t.AssertEqual(string(buf), "5 5")

	out.Reset()
	t.AssertNoError(run(&out, devsettings.OS, options{boolean: true}, []string{"get", enable}))
	t.AssertEqual(out.String(), "false\n")

	t.AssertNoError(run(&out, devsettings.OS, options{boolean: true}, []string{"set", enable, "true"}))
	out.Reset()
	t.AssertNoError(run(&out, devsettings.OS, options{}, []string{"get", enable}))
	t.AssertEqual(out.String(), "1\n")
}

func TestGetDefault(t1 *testing.T) {
	t := NewTB(t1)
	missing := filepath.Join(t1.TempDir(), "missing")

	var out bytes.Buffer
	t.AssertNoError(run(&out, devsettings.OS, options{dual: true}, []string{"get", missing, "-1"}))
	t.AssertEqual(out.String(), "-1\n")

	err := run(&out, devsettings.OS, options{}, []string{"get", missing})
	t.AssertTrue(errors.Is(err, os.ErrNotExist))
}

func TestGetMalformed(t1 *testing.T) {
	t := NewTB(t1)
	path := filepath.Join(t1.TempDir(), "gain")
	writeFile(t1, path, "abc 1\n")

	var out bytes.Buffer
	err := run(&out, devsettings.OS, options{dual: true}, []string{"get", path, "0"})
	t.AssertTrue(errors.Is(err, dual.ErrMalformed))
	t.AssertEqual(out.Len(), 0)
}

func TestProbe(t1 *testing.T) {
	t := NewTB(t1)
	dir := t1.TempDir()
	path := filepath.Join(dir, "enable")
	writeFile(t1, path, "1")
	missing := filepath.Join(dir, "missing")

	var out bytes.Buffer
	t.AssertNoError(run(&out, devsettings.OS, options{}, []string{"probe", path, missing}))
	t.AssertEqual(out.String(), "rw\t"+path+"\nabsent\t"+missing+"\n")
}

func TestLabel(t1 *testing.T) {
	t := NewTB(t1)
	old := resource.Logger
	resource.Logger = log.New(ioutil.Discard, "", 0)
	defer func() { resource.Logger = old }()

	path := filepath.Join(t1.TempDir(), "strings.xml")
	writeFile(t1, path, `<resources><string name="torch_title">Flashlight</string></resources>`)

	var out bytes.Buffer
	opts := options{stringsXML: path, format: "%s_title"}
	t.AssertNoError(run(&out, devsettings.OS, opts, []string{"label", "Torch", "Vibrator"}))
	t.AssertEqual(out.String(), "Flashlight\nVibrator\n")
}

func TestUsage(t1 *testing.T) {
	type testCase struct {
		name string
		opts options
		args []string
	}
	tests := []testCase{
		testCase{"no command", options{}, nil},
		testCase{"unknown command", options{}, []string{"list"}},
		testCase{"get without path", options{}, []string{"get"}},
		testCase{"set without value", options{}, []string{"set", "/sys/x"}},
		testCase{"dual and bool", options{dual: true, boolean: true}, []string{"get", "/sys/x"}},
		testCase{"probe without path", options{}, []string{"probe"}},
		testCase{"label without label", options{}, []string{"label"}},
	}
	for _, tt := range tests {
		t1.Run(tt.name, func(t1 *testing.T) {
			t := NewTB(t1)
			var out bytes.Buffer
			t.AssertTrue(errors.Is(run(&out, devsettings.OS, tt.opts, tt.args), errUsage))
		})
	}
}
