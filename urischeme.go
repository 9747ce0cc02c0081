// Package urischeme contains the scheme and version value types used by
// protocol-URI tooling.
//
// That is, this package first aim is to bring ability to validate
// standalone scheme tokens, to locate the scheme prefix of a complete
// URI-like byte sequence, and to carry the closed set of protocol/version
// tags negotiated elsewhere. Scheme grammar is described here
// https://tools.ietf.org/html/rfc3986#section-3.1
package urischeme

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// maxSchemeLen bounds scheme token length so downstream consumers can rely
// on small fixed buffers when folding or hashing token text.
const maxSchemeLen = 64

var (
	// ErrInvalidScheme reports input that is empty, contains an octet
	// outside the scheme character class, or contains a bare ':'.
	ErrInvalidScheme = errors.New("urischeme: invalid scheme")

	// ErrSchemeTooLong reports a scheme token longer than 64 bytes.
	ErrSchemeTooLong = errors.New("urischeme: scheme too long")
)

// Protocol identifies a member of the fixed known-protocol set. The set is
// closed at compile time; the zero value means no known protocol matched.
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolHTTP
	ProtocolHTTPS
	ProtocolRTSP
	ProtocolRTSPS
)

// String returns the canonical lowercase spelling of p.
func (p Protocol) String() string {
	switch p {
	case ProtocolHTTP:
		return "http"
	case ProtocolHTTPS:
		return "https"
	case ProtocolRTSP:
		return "rtsp"
	case ProtocolRTSPS:
		return "rtsps"
	}
	return fmt.Sprintf("Protocol(%d)", int(p))
}

// Len returns the byte length of the canonical spelling of p, which is
// what boundary consumers add to the "://" delimiter width when slicing
// the remainder of a URI. It returns 0 for ProtocolNone.
func (p Protocol) Len() int {
	switch p {
	case ProtocolHTTP, ProtocolRTSP:
		return 4
	case ProtocolHTTPS, ProtocolRTSPS:
		return 5
	}
	return 0
}

// Scheme represents the scheme component of a URI.
//
// A Scheme is immutable once constructed and may be shared or copied
// across goroutines freely. Known protocols are carried as a bare tag and
// copy without allocating; any other validated token keeps its original
// spelling for display while every comparison folds ASCII case.
//
// The zero Scheme means "no scheme". Constructors never produce it, so
// observing one outside this package indicates an uninitialized variable,
// not a parse result. Comparing schemes with == is case-sensitive on
// generic token text; use Equal instead.
type Scheme struct {
	proto Protocol
	other string
}

// Predeclared schemes for every known protocol.
var (
	HTTP  = Scheme{proto: ProtocolHTTP}
	HTTPS = Scheme{proto: ProtocolHTTPS}
	RTSP  = Scheme{proto: ProtocolRTSP}
	RTSPS = Scheme{proto: ProtocolRTSPS}
)

// ParseScheme validates s as a standalone scheme token.
//
// Canonical lowercase spellings of known protocols take a literal fast
// path. Any other input is checked against the scheme grammar: it must be
// 1 to 64 bytes of ALPHA / DIGIT / "+" / "-" / ".", with no ':', since the
// delimiter never belongs to the token itself. Inputs spelling a known
// protocol in different case pass the grammar and are then canonicalized
// to the known protocol, so no generic token ever coincides with a known
// spelling.
//
// A generic token shares s's storage; use ParseSchemeBytes when the input
// buffer must not be retained.
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "http":
		return HTTP, nil
	case "https":
		return HTTPS, nil
	case "rtsp":
		return RTSP, nil
	case "rtsps":
		return RTSPS, nil
	}
	if err := validateScheme(s); err != nil {
		return Scheme{}, err
	}
	if p := foldProtocol(s); p != ProtocolNone {
		return Scheme{proto: p}, nil
	}
	return Scheme{other: s}, nil
}

// ParseSchemeBytes validates b as a standalone scheme token. A generic
// token copies its text out of b, so the result never aliases the input.
func ParseSchemeBytes(b []byte) (Scheme, error) {
	// Known spellings resolve without copying b.
	switch {
	case string(b) == "http":
		return HTTP, nil
	case string(b) == "https":
		return HTTPS, nil
	case string(b) == "rtsp":
		return RTSP, nil
	case string(b) == "rtsps":
		return RTSPS, nil
	}
	return ParseScheme(string(b))
}

// validateScheme checks s against the scheme grammar using the octet
// table. It reports nothing about known protocols; callers canonicalize
// separately.
func validateScheme(s string) error {
	if len(s) > maxSchemeLen {
		return ErrSchemeTooLong
	}
	if len(s) == 0 {
		return ErrInvalidScheme
	}
	for i := 0; i < len(s); i++ {
		switch schemeOctets[s[i]] {
		case ':', 0:
			return ErrInvalidScheme
		}
	}
	return nil
}

// foldProtocol matches s against the known protocol spellings folding
// ASCII case. Constructors call it after grammar validation to keep the
// canonicalization invariant: a generic token never spells a known
// protocol.
func foldProtocol(s string) Protocol {
	switch len(s) {
	case 4:
		if strEqualFold(s, "http") {
			return ProtocolHTTP
		}
		if strEqualFold(s, "rtsp") {
			return ProtocolRTSP
		}
	case 5:
		if strEqualFold(s, "https") {
			return ProtocolHTTPS
		}
		if strEqualFold(s, "rtsps") {
			return ProtocolRTSPS
		}
	}
	return ProtocolNone
}

// String returns the canonical text of s: the fixed lowercase spelling for
// a known protocol, or the token text in its original case. The zero
// Scheme renders as the empty string.
func (s Scheme) String() string {
	if s.proto != ProtocolNone {
		return s.proto.String()
	}
	return s.other
}

// Protocol returns the known protocol tag, or ProtocolNone for a generic
// token.
func (s Scheme) Protocol() Protocol {
	return s.proto
}

// IsKnown reports whether s is one of the fixed known protocols.
func (s Scheme) IsKnown() bool {
	return s.proto != ProtocolNone
}

// Equal reports whether s and t name the same scheme, folding ASCII case.
// A known protocol never equals a generic token; constructors canonicalize
// known spellings, so equal text always lands in the same variant.
func (s Scheme) Equal(t Scheme) bool {
	if s.proto != ProtocolNone || t.proto != ProtocolNone {
		return s.proto == t.proto
	}
	return strEqualFold(s.other, t.other)
}

// EqualString reports whether s's canonical text equals t, folding ASCII
// case.
func (s Scheme) EqualString(t string) bool {
	return strEqualFold(s.String(), t)
}

// Hash returns a case-insensitive hash of s: any two schemes equal under
// Equal hash identically. A known protocol hashes a fixed per-member tag;
// a generic token hashes its length followed by its case-folded bytes, so
// different-length tokens sharing a folded prefix cannot collide trivially.
func (s Scheme) Hash() uint64 {
	var d xxhash.Digest
	d.Reset()
	if s.proto != ProtocolNone {
		tag := [1]byte{byte(s.proto)}
		d.Write(tag[:])
		return d.Sum64()
	}
	var buf [8 + maxSchemeLen]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(len(s.other)))
	n := 8
	for i := 0; i < len(s.other); i++ {
		buf[n] = foldByte(s.other[i])
		n++
	}
	d.Write(buf[:n])
	return d.Sum64()
}
