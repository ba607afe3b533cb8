package compact

import "errors"

// ErrMalformedEscape is returned when, with literal=false, a '#' character
// in the message is followed by anything other than '#', '0', '1', '2', or
// '3'.
var ErrMalformedEscape = errors.New("compact: malformed '#' escape sequence")
