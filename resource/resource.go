// Package resource resolves the localized labels of device settings by
// resource name.
package resource

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Resources looks up string resources by name.
type Resources interface {
	Lookup(name string) (value string, ok bool)
}

// Logger reports names which have no resource.
var Logger = log.New(os.Stderr, "resource: ", log.LstdFlags)

// ResourceName derives the resource name of label: label is lowercased,
// spaces are replaced with underscores and the result is substituted into
// format, e.g. ResourceName("Vibrator Strength", "%s_title") returns
// "vibrator_strength_title".
// A format without a verb is returned as is, with "%%" unescaped.
func ResourceName(label, format string) string {
	name := strings.ReplaceAll(strings.ToLower(label), " ", "_")
	if !hasVerb(format) {
		return strings.ReplaceAll(format, "%%", "%")
	}
	return fmt.Sprintf(format, name)
}

// hasVerb reports whether format consumes an argument.
func hasVerb(format string) bool {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i++
			continue
		}
		return true
	}
	return false
}

// Localized returns the string resource named after label and format,
// or label itself if there is none. See ResourceName.
func Localized(res Resources, label, format string) string {
	return StringForName(res, ResourceName(label, format), label)
}

// StringForName returns the string resource called name, or def if there
// is none.
func StringForName(res Resources, name, def string) string {
	if res != nil {
		if v, ok := res.Lookup(name); ok {
			return v
		}
	}
	Logger.Printf("no resource found for %v", name)
	return def
}

// Table is a set of string resources keyed by name.
type Table map[string]string

// Lookup implements Resources.
func (t Table) Lookup(name string) (value string, ok bool) {
	value, ok = t[name]
	return
}

type stringsXML struct {
	XMLName xml.Name `xml:"resources"`
	Strings []struct {
		Name  string `xml:"name,attr"`
		Value string `xml:",chardata"`
	} `xml:"string"`
}

// LoadStrings parses an Android string resource file (res/values/strings.xml).
// Only <string> elements are read; plurals and arrays are ignored.
func LoadStrings(r io.Reader) (table Table, err error) {
	var doc stringsXML
	if err = xml.NewDecoder(r).Decode(&doc); err != nil {
		err = fmt.Errorf("failed to parse string resources: %w", err)
		return
	}
	table = make(Table, len(doc.Strings))
	for _, s := range doc.Strings {
		if s.Name == "" {
			continue
		}
		table[s.Name] = unescape(s.Value)
	}
	return
}

// LoadStringsFile parses the Android string resource file at path.
func LoadStringsFile(path string) (table Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("failed to load string resources: %w", err)
		return
	}
	defer f.Close()
	table, err = LoadStrings(f)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}
	return
}

// unescape applies the escapes of Android string resources.
// Values wrapped in double quotes are taken literally, without the quotes.
func unescape(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default: // \' \" \\ \@ \?
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
