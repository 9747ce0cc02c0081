package urischeme

// BoundKind classifies a ScanScheme result.
type BoundKind int

const (
	// BoundNone means no scheme prefix exists: the input is a relative
	// reference. This is a legitimate outcome, not an error.
	BoundNone BoundKind = iota

	// BoundKnown means a known protocol followed by "://" was matched.
	BoundKnown

	// BoundOther means a generic scheme followed by "://" was found.
	BoundOther
)

// SchemeBound locates and classifies the scheme prefix of a URI-like byte
// sequence. Len counts the scheme bytes only; the remainder of the URI
// starts at Len+3, past the "://" delimiter.
type SchemeBound struct {
	Kind  BoundKind
	Proto Protocol // set when Kind == BoundKnown
	Len   int      // scheme byte length; for BoundOther the token is data[:Len]
}

// ScanScheme determines whether data begins with <scheme> "://" and
// reports where the scheme ends.
//
// The known protocol spellings are tried first with case-insensitive
// literal comparisons, bypassing the general scan for the overwhelmingly
// common prefixes. The general scan walks data through the octet table
// until it meets ':': the next two bytes must then be exactly "//" or the
// search ends with BoundNone. An invalid octet before any ':' also ends
// the search with BoundNone. The scan never resumes past a rejected ':'
// to look for a later one; callers depend on that exact classification of
// schemeless inputs.
//
// The only error is ErrSchemeTooLong, when a scheme boundary past 64
// bytes is found.
func ScanScheme(data []byte) (SchemeBound, error) {
	if len(data) >= 7 {
		if foldPrefix(data, "http://") {
			return SchemeBound{Kind: BoundKnown, Proto: ProtocolHTTP, Len: 4}, nil
		}
		if foldPrefix(data, "rtsp://") {
			return SchemeBound{Kind: BoundKnown, Proto: ProtocolRTSP, Len: 4}, nil
		}
	}
	if len(data) >= 8 {
		if foldPrefix(data, "https://") {
			return SchemeBound{Kind: BoundKnown, Proto: ProtocolHTTPS, Len: 5}, nil
		}
		if foldPrefix(data, "rtsps://") {
			return SchemeBound{Kind: BoundKnown, Proto: ProtocolRTSPS, Len: 5}, nil
		}
	}

	// The shortest input carrying a scheme is "x://", four bytes, so
	// anything shorter cannot hold one.
	if len(data) > 3 {
		for i := 0; i < len(data); i++ {
			switch schemeOctets[data[i]] {
			case ':':
				if len(data) < i+3 {
					// Not enough data remaining.
					return SchemeBound{}, nil
				}
				if data[i+1] != '/' || data[i+2] != '/' {
					// A bare ':' is not a scheme delimiter.
					return SchemeBound{}, nil
				}
				if i > maxSchemeLen {
					return SchemeBound{}, ErrSchemeTooLong
				}
				return SchemeBound{Kind: BoundOther, Len: i}, nil
			case 0:
				return SchemeBound{}, nil
			}
		}
	}

	return SchemeBound{}, nil
}

// SchemeOfScan builds the Scheme a ScanScheme result identifies within
// uri. Grammar validation is not repeated: the scanner's octet
// classification already guarantees the prefix is valid scheme text.
//
// A generic token is a substring of uri and shares its storage; uri is
// never written through the token, so the sharing is safe for as long as
// any holder keeps either alive. Known spellings are canonicalized to the
// known protocol even here, preserving the constructor invariant.
//
// A BoundNone result carries no scheme to build, and the empty boundary a
// scan reports for inputs like "://x" denotes no token either; both fail
// with ErrInvalidScheme.
func SchemeOfScan(uri string, b SchemeBound) (Scheme, error) {
	switch b.Kind {
	case BoundKnown:
		return Scheme{proto: b.Proto}, nil
	case BoundOther:
		if b.Len <= 0 || b.Len > maxSchemeLen || b.Len > len(uri) {
			return Scheme{}, ErrInvalidScheme
		}
		s := uri[:b.Len]
		if p := foldProtocol(s); p != ProtocolNone {
			return Scheme{proto: p}, nil
		}
		return Scheme{other: s}, nil
	}
	return Scheme{}, ErrInvalidScheme
}

// SchemeOfScanBytes is SchemeOfScan for callers holding the URI as a byte
// slice they may reuse: generic token text is copied out of data.
func SchemeOfScanBytes(data []byte, b SchemeBound) (Scheme, error) {
	if b.Kind == BoundOther {
		if b.Len <= 0 || b.Len > maxSchemeLen || b.Len > len(data) {
			return Scheme{}, ErrInvalidScheme
		}
		return SchemeOfScan(string(data[:b.Len]), b)
	}
	return SchemeOfScan("", b)
}

// foldPrefix reports whether data begins with the lowercase ASCII string
// pre, folding case. len(data) must be at least len(pre).
func foldPrefix(data []byte, pre string) bool {
	for i := 0; i < len(pre); i++ {
		if foldByte(data[i]) != pre[i] {
			return false
		}
	}
	return true
}
