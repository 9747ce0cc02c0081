package urischeme

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleVersion() {
	fmt.Println(DefaultVersion, DefaultVersion.AtLeast(VersionHTTP10))
	// Output: HTTP/1.1 true
}

func TestVersionString(t *testing.T) {
	for _, test := range []struct {
		v   Version
		exp string
	}{
		{VersionHTTP09, "HTTP/0.9"},
		{VersionHTTP10, "HTTP/1.0"},
		{VersionHTTP11, "HTTP/1.1"},
		{VersionHTTP2, "HTTP/2.0"},
		{VersionHTTP3, "HTTP/3.0"},
		{VersionRTSP10, "RTSP/1.0"},
		{Version(0), "Version(0)"},
		{Version(42), "Version(42)"},
	} {
		assert.Equal(t, test.exp, test.v.String())
	}
}

func TestVersionOrder(t *testing.T) {
	ordered := []Version{
		VersionHTTP09,
		VersionHTTP10,
		VersionHTTP11,
		VersionHTTP2,
		VersionHTTP3,
		VersionRTSP10,
	}
	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i] > ordered[i-1], "%s > %s", ordered[i], ordered[i-1])
		assert.True(t, ordered[i].AtLeast(ordered[i-1]))
		assert.False(t, ordered[i-1].AtLeast(ordered[i]))
	}
	assert.True(t, VersionHTTP11.AtLeast(VersionHTTP11))
}

func TestDefaultVersion(t *testing.T) {
	assert.Equal(t, VersionHTTP11, DefaultVersion)
	assert.True(t, DefaultVersion.AtLeast(VersionHTTP09))
	assert.False(t, DefaultVersion.AtLeast(VersionHTTP2))
}
