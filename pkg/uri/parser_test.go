package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePortNumber(t *testing.T) {
	u := &URI{}
	require.NoError(t, u.Parse("http://www.example.com:8080/foo/bar"))

	assert.Equal(t, "www.example.com", u.Host())
	assert.True(t, u.HasPort())
	assert.Equal(t, uint16(8080), u.Port())
}

func TestParseNoPortNumber(t *testing.T) {
	u := &URI{}
	require.NoError(t, u.Parse("http://www.example.com/foo/bar"))

	assert.Equal(t, "www.example.com", u.Host())
	assert.False(t, u.HasPort())
}

func TestParseLargestPortNumber(t *testing.T) {
	u := &URI{}
	require.NoError(t, u.Parse("http://www.example.com:65535/foo/bar"))

	assert.True(t, u.HasPort())
	assert.Equal(t, uint16(65535), u.Port())
}

func TestParseBadPortNumbers(t *testing.T) {
	tests := []string{
		"http://www.example.com:spam/foo/bar",
		"http://www.example.com:8080spam/foo/bar",
		"http://www.example.com:65536/foo/bar",
		"http://www.example.com:-8080/foo/bar",
		"http://www.example.com:/foo/bar",
		"http://www.example.com: 8080/foo/bar",
	}

	u := &URI{}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			err := u.Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPort)
		})
	}
}

func TestParsePortZero(t *testing.T) {
	u := &URI{}
	require.NoError(t, u.Parse("//example.com:0"))

	assert.True(t, u.HasPort())
	assert.Equal(t, uint16(0), u.Port())
}

func TestParsePortWithoutScheme(t *testing.T) {
	u := &URI{}
	require.NoError(t, u.Parse("//example.com:8080/foo"))

	assert.Equal(t, "", u.Scheme())
	assert.Equal(t, "example.com", u.Host())
	assert.True(t, u.HasPort())
	assert.Equal(t, uint16(8080), u.Port())
}

func TestParseAuthorityEndsAtDelimiters(t *testing.T) {
	type parts struct {
		userInfo string
		host     string
		path     []string
		query    string
		fragment string
	}

	tests := map[string]parts{
		"http://www.example.com":          {host: "www.example.com"},
		"http://www.example.com?foo":      {host: "www.example.com", query: "foo"},
		"http://www.example.com#foo":      {host: "www.example.com", fragment: "foo"},
		"http://bob@www.example.com/spam": {userInfo: "bob", host: "www.example.com", path: []string{"", "spam"}},
	}

	u := &URI{}
	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			require.NoError(t, u.Parse(in))
			assert.Equal(t, expected.userInfo, u.UserInfo())
			assert.Equal(t, expected.host, u.Host())
			assert.Equal(t, expected.path, u.Path())
			assert.Equal(t, expected.query, u.Query())
			assert.Equal(t, expected.fragment, u.Fragment())
		})
	}
}
