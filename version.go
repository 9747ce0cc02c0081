package urischeme

import "fmt"

// Version identifies a protocol name/version pair.
//
// Members compare in declaration order, so plain ordering answers
// questions like "is this connection at least HTTP/1.1". The set is closed
// at compile time; versions are selected programmatically by negotiation
// logic, never parsed from arbitrary text. The zero value is not a valid
// version.
type Version int

const (
	VersionHTTP09 Version = iota + 1 // HTTP/0.9
	VersionHTTP10                    // HTTP/1.0
	VersionHTTP11                    // HTTP/1.1
	VersionHTTP2                     // HTTP/2.0
	VersionHTTP3                     // HTTP/3.0
	VersionRTSP10                    // RTSP/1.0
)

// DefaultVersion is assumed when no version has been negotiated.
const DefaultVersion = VersionHTTP11

// String returns the canonical display form of v, such as "HTTP/1.1".
// Values outside the defined set render a numeric placeholder.
func (v Version) String() string {
	switch v {
	case VersionHTTP09:
		return "HTTP/0.9"
	case VersionHTTP10:
		return "HTTP/1.0"
	case VersionHTTP11:
		return "HTTP/1.1"
	case VersionHTTP2:
		return "HTTP/2.0"
	case VersionHTTP3:
		return "HTTP/3.0"
	case VersionRTSP10:
		return "RTSP/1.0"
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// AtLeast reports whether v is w or a later member of the enumeration.
func (v Version) AtLeast(w Version) bool {
	return v >= w
}
