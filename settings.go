package devsettings

// Shortcuts operating on the running system.

// WriteValue replaces the contents of the attribute at path with value.
func WriteValue(path, value string) error {
	return NewNode(path).SetValue(value)
}

// WriteValueDual writes value to both channels of the attribute at path.
func WriteValueDual(path string, value int) error {
	return NewNode(path).SetDual(value)
}

// FileExists reports whether the attribute at path is present.
func FileExists(path string) bool {
	return NewNode(path).Exists()
}

// FileWritable reports whether the attribute at path is present and writable.
func FileWritable(path string) bool {
	return NewNode(path).Writable()
}

// ReadLine returns the first line of the attribute at path.
func ReadLine(path string) (line string, ok bool) {
	return NewNode(path).Line()
}

// FileValue returns the value of the attribute at path, or def.
func FileValue(path, def string) string {
	return NewNode(path).Value(def)
}

// FileValueBool returns the boolean value of the attribute at path, or def.
func FileValueBool(path string, def bool) bool {
	return NewNode(path).Bool(def)
}

// FileValueDual returns the decoded dual value of the attribute at path, or def.
func FileValueDual(path string, def int) (int, error) {
	return NewNode(path).Dual(def)
}
