package urischeme

// schemeOctets describes every octet's role inside a URI scheme token.
//
// From the "Scheme" chapter of RFC3986
// See https://tools.ietf.org/html/rfc3986#section-3.1
//
// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
//
// A valid scheme character maps to itself, ':' maps to a sentinel of the
// same value so scanners recognize the delimiter with the same lookup, and
// every other octet maps to zero. The table is filled once at package
// initialization and is read-only afterwards, so any number of goroutines
// may consult it without synchronization.
var schemeOctets [256]byte

func init() {
	for c := 'a'; c <= 'z'; c++ {
		schemeOctets[c] = byte(c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		schemeOctets[c] = byte(c)
	}
	for c := '0'; c <= '9'; c++ {
		schemeOctets[c] = byte(c)
	}
	schemeOctets['+'] = '+'
	schemeOctets['-'] = '-'
	schemeOctets['.'] = '.'
	schemeOctets[':'] = ':'
}

// foldByte lowercases a single ASCII byte.
func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// strEqualFold is like strings.EqualFold restricted to ASCII folding,
// which is the only folding scheme comparison is defined over.
func strEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if foldByte(a[i]) != foldByte(b[i]) {
			return false
		}
	}
	return true
}
