package utils

import (
	"encoding/base64"
	"strings"
)

const defaultMimeType = "application/octet-stream"

// DataURL encodes data as a base64 data URL tagged with mimeType.
func DataURL(mimeType string, data []byte) string {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	var b strings.Builder
	b.Grow(len(mimeType) + 13 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}
