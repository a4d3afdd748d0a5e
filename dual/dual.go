/*
Package dual implements the dual-value text format of sysfs attributes which
expose a left and a right channel in one file, e.g. "3 3".

Devices driven by this package always set both channels to the same value,
so only the left channel is consulted when decoding.
*/
package dual

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WrapThreshold is the largest value Decode reports as positive.
// Drivers store negative values as value+256, so any left value above
// WrapThreshold is read back as a negative number.
const WrapThreshold = 20

// ErrMalformed is matched by every error returned from Decode.
var ErrMalformed = errors.New("malformed dual value")

// DecodeError records a failed Decode.
type DecodeError struct {
	Raw string // The text passed to Decode.
	Err error  // The reason the left value could not be parsed.
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode dual value %q: %v", e.Raw, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports ErrMalformed as a match, so callers need not unpack the error.
func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformed
}

// Encode returns v formatted for both channels: "<v> <v>".
// Negative values are written in their signed form and are not wrapped
// to a byte, although Decode expects drivers to report them wrapped.
func Encode(v int) string {
	s := strconv.Itoa(v)
	return s + " " + s
}

// Decode returns the value of the left channel of raw.
// The left channel is the text before the first space, or the whole of raw
// if there is none. It must be an unsigned decimal integer below 2^32.
func Decode(raw string) (v int, err error) {
	left := raw
	if i := strings.IndexByte(raw, ' '); i >= 0 {
		left = raw[:i]
	}
	// A single leading plus sign is accepted by the drivers' own tooling.
	if len(left) > 1 && left[0] == '+' {
		left = left[1:]
	}
	u, err := strconv.ParseUint(left, 10, 32)
	if err != nil {
		err = &DecodeError{Raw: raw, Err: err}
		return
	}
	// Values of 2^31 and above wrap to negative 32-bit integers first.
	v = int(int32(uint32(u)))
	if v > WrapThreshold {
		v -= 256
	}
	return
}
