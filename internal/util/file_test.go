package util

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionFor(t *testing.T) {
	cases := []struct {
		mime, filename, want string
	}{
		{"image/png", "a.jpg", "png"},
		{"image/jpeg", "", "jpeg"},
		{"image/svg+xml", "", "svg"},
		{"image/webp; charset=binary", "", "webp"},
		{"", "scan.JPG", "jpg"},
		{MimeOctetStream, "scan.heic", "heic"},
		{MimeOctetStream, "noext", "bin"},
		{"", "", "bin"},
		{"image/png/../../../escaped", "q.png", "png"},
		{"image/../x", "q.gif", "gif"},
		{"image/.%2e", "", "2e"},
		{"text/", "a.b/../c", "bin"},
		{"image/x-icon", "", "xicon"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ExtensionFor(c.mime, c.filename), "%s/%s", c.mime, c.filename)
	}
}

func TestGenerateStorageKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	key := GenerateStorageKey("problem", "png", now)

	assert.Regexp(t, regexp.MustCompile(`^problems/problem-1700000000123-[0-9a-f]{16}\.png$`), key)
	assert.NotEqual(t, key, GenerateStorageKey("problem", "png", now))
}

func TestDetectMimeType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	mime, err := DetectMimeType(bytes.NewReader(png))
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.True(t, IsImage(mime))

	mime, err = DetectMimeType(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.False(t, IsImage(mime))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	assert.Equal(t, "x", StringValue(StringPtr("x")))
	assert.Equal(t, "", StringValue(nil))
}
