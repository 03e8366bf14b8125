package tabcast

import (
	"fmt"
	"strconv"
	"strings"
)

// Counter values rotate through 1..999 and render zero-padded to at
// least three digits. The rotation keeps successive export filenames
// distinct without ever growing the suffix.

// PadCounter renders a counter value zero-padded to at least three
// digits. Unparsable or out-of-range values fall back to "001".
func PadCounter(s string) string {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 999 {
		n = 1
	}
	return fmt.Sprintf("%03d", n)
}

// NextCounter advances a counter value by one, wrapping from 999 back
// to 001.
func NextCounter(s string) string {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 999 {
		n = 0
	}
	n++
	if n > 999 {
		n = 1
	}
	return fmt.Sprintf("%03d", n)
}
